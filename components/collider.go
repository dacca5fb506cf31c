package components

import "github.com/yohamta/donburi"

// ColliderData is a convex hull in local, unscaled, unrotated space. The
// vertices must be convex and wound like gamemath.SquareHull.
type ColliderData struct {
	Hull []Vector
}

var Collider = donburi.NewComponentType[ColliderData]()
