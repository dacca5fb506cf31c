package gamemath

import "math"

// Vector is a 2D vector in world units. Y grows downward.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Abs returns the component-wise magnitude.
func (v Vector) Abs() Vector {
	return Vector{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func Normalize(v Vector) Vector {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}
