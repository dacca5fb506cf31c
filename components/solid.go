package components

import "github.com/yohamta/donburi"

type Material int

const (
	MaterialStone Material = iota
	MaterialGrassy
)

func (m Material) String() string {
	switch m {
	case MaterialStone:
		return "stone"
	case MaterialGrassy:
		return "grassy"
	}
	return "unknown"
}

// SolidData marks static geometry other entities are resolved against.
type SolidData struct {
	TopFaceOnly bool
	Material    Material
}

var Solid = donburi.NewComponentType[SolidData]()
