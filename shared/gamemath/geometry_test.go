package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformPoint_ScaleSignIgnored(t *testing.T) {
	p := Vector{X: 0.5, Y: -0.5}
	right := Transform{Position: Vector{X: 10, Y: 20}, Size: Vector{X: 40, Y: 80}}
	left := Transform{Position: Vector{X: 10, Y: 20}, Size: Vector{X: -40, Y: 80}}

	assert.Equal(t, TransformPoint(p, right, Vector{}), TransformPoint(p, left, Vector{}))
	assert.Equal(t, Vector{X: 30, Y: -20}, TransformPoint(p, right, Vector{}))
}

func TestTransformPoint_Offset(t *testing.T) {
	tr := Transform{Position: Vector{X: 1, Y: 2}, Size: Vector{X: 2, Y: 2}}
	got := TransformPoint(Vector{X: 0.5, Y: 0.5}, tr, Vector{X: 0, Y: 3})
	assert.Equal(t, Vector{X: 2, Y: 6}, got)
}

func TestTransformPoint_Rotation(t *testing.T) {
	tr := Transform{Angle: math.Pi / 2, Size: Vector{X: 1, Y: 1}}
	got := TransformPoint(Vector{X: 1, Y: 0}, tr, Vector{})
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 1, got.Y, 1e-9)
}

func TestTransformHull_KeepsVertexOrder(t *testing.T) {
	tr := Transform{Position: Vector{X: 100, Y: 100}, Size: Vector{X: 10, Y: 20}}
	hull := TransformHull(SquareHull(), tr, Vector{})

	assert.Equal(t, []Vector{
		{X: 95, Y: 90},
		{X: 105, Y: 90},
		{X: 105, Y: 110},
		{X: 95, Y: 110},
	}, hull)
}

func TestBoundingBox(t *testing.T) {
	assert.Equal(t, Vector{X: 84, Y: 84}, BoundingBox(Vector{X: -84, Y: 84}))
}

func TestNormalize_ZeroLength(t *testing.T) {
	assert.Equal(t, Vector{}, Normalize(Vector{}))

	n := Normalize(Vector{X: 3, Y: 4})
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, Vector{X: 1, Y: -2}, Truncate(Vector{X: 1.9, Y: -2.7}))
}

func TestApproach(t *testing.T) {
	got := Approach(Vector{X: 0, Y: 10}, Vector{X: 100, Y: 0}, 0.25)
	assert.Equal(t, Vector{X: 25, Y: 7.5}, got)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.2))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))
}
