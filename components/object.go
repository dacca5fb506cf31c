package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv sensor rectangle. The rectangle
// only feeds trigger checks (kill zones); collision resolution uses hulls.
type ObjectData struct {
	*resolv.Object
}

var (
	Object = donburi.NewComponentType[ObjectData]()
	Space  = donburi.NewComponentType[resolv.Space]()
)
