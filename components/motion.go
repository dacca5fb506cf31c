package components

import (
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/yohamta/donburi"
)

type Vector = gamemath.Vector

// MotionData places an entity in the world. The sign of Scale.X is the
// facing direction (negative faces left); its magnitude is the entity size.
// Read the size through Size so geometry never sees the sign.
type MotionData struct {
	Position Vector
	Angle    float64
	Scale    Vector
}

// Size returns the true width and height of the entity.
func (m *MotionData) Size() Vector {
	return gamemath.BoundingBox(m.Scale)
}

// Facing returns -1 when the entity faces left and 1 otherwise.
func (m *MotionData) Facing() float64 {
	if m.Scale.X < 0 {
		return -1
	}
	return 1
}

// SetFacing flips Scale.X to the sign of dir, keeping its magnitude.
func (m *MotionData) SetFacing(dir float64) {
	if dir == 0 {
		return
	}
	m.Scale.X = gamemath.Sign(dir) * m.Size().X
}

// Transform returns the sign-free placement used by the geometry kernel.
func (m *MotionData) Transform() gamemath.Transform {
	return gamemath.Transform{
		Position: m.Position,
		Angle:    m.Angle,
		Size:     m.Size(),
	}
}

var Motion = donburi.NewComponentType[MotionData]()
