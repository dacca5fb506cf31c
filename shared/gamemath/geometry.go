package gamemath

import "math"

// Transform is the placement of a hull in the world. Size must already be
// a magnitude; facing is never encoded here.
type Transform struct {
	Position Vector
	Angle    float64
	Size     Vector
}

// TransformPoint rotates p by the transform angle, scales it by the size and
// translates it to the transform position plus offset.
func TransformPoint(p Vector, t Transform, offset Vector) Vector {
	sin, cos := math.Sincos(t.Angle)
	r := Vector{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
	return Vector{
		X: math.Abs(t.Size.X)*r.X + t.Position.X + offset.X,
		Y: math.Abs(t.Size.Y)*r.Y + t.Position.Y + offset.Y,
	}
}

// TransformHull maps every vertex of a local hull into world space.
func TransformHull(hull []Vector, t Transform, offset Vector) []Vector {
	out := make([]Vector, len(hull))
	for i, p := range hull {
		out[i] = TransformPoint(p, t, offset)
	}
	return out
}

// BoundingBox returns the size of the proxy rectangle used for cheap
// rejection tests.
func BoundingBox(scale Vector) Vector {
	return scale.Abs()
}

// Hull winding: vertices are counter-clockwise in the numeric sense, i.e.
// the interior lies to the left of every edge when X grows right and Y grows
// down. Each hull is a unit shape centered on the origin.

// SquareHull is the unit box.
func SquareHull() []Vector {
	return []Vector{
		{X: -0.5, Y: -0.5},
		{X: 0.5, Y: -0.5},
		{X: 0.5, Y: 0.5},
		{X: -0.5, Y: 0.5},
	}
}

// SlopeHull returns a right triangle whose slanted face rises toward +X when
// direction > 0 and toward -X otherwise.
func SlopeHull(direction int) []Vector {
	if direction > 0 {
		return []Vector{
			{X: -0.5, Y: 0.5},
			{X: 0.5, Y: -0.5},
			{X: 0.5, Y: 0.5},
		}
	}
	return []Vector{
		{X: -0.5, Y: -0.5},
		{X: 0.5, Y: 0.5},
		{X: -0.5, Y: 0.5},
	}
}
