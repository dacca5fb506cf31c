package gamemath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x, y, w, h float64) Transform {
	return Transform{Position: Vector{X: x, Y: y}, Size: Vector{X: w, Y: h}}
}

func TestCollides_Overlapping(t *testing.T) {
	a := TransformHull(SquareHull(), box(0, 0, 10, 10), Vector{})
	b := TransformHull(SquareHull(), box(8, 0, 10, 10), Vector{})
	assert.True(t, Collides(a, b))
}

func TestCollides_Separated(t *testing.T) {
	a := TransformHull(SquareHull(), box(0, 0, 10, 10), Vector{})
	b := TransformHull(SquareHull(), box(10.5, 0, 10, 10), Vector{})
	assert.False(t, Collides(a, b))
}

func TestCollides_TouchingCounts(t *testing.T) {
	a := TransformHull(SquareHull(), box(0, 0, 10, 10), Vector{})
	edge := TransformHull(SquareHull(), box(10, 0, 10, 10), Vector{})
	corner := TransformHull(SquareHull(), box(10, 10, 10, 10), Vector{})

	assert.True(t, Collides(a, edge))
	assert.True(t, Collides(a, corner))
}

func TestCollides_Contained(t *testing.T) {
	outer := TransformHull(SquareHull(), box(0, 0, 100, 100), Vector{})
	inner := TransformHull(SquareHull(), box(5, -5, 10, 10), Vector{})

	assert.True(t, Collides(outer, inner))
	assert.True(t, Collides(inner, outer))
}

func TestCollides_EmptyHull(t *testing.T) {
	a := TransformHull(SquareHull(), box(0, 0, 10, 10), Vector{})
	assert.False(t, Collides(a, nil))
}

func TestCollides_Slope(t *testing.T) {
	ramp := box(0, 0, 100, 100)
	rampHull := TransformHull(SlopeHull(1), ramp, Vector{})

	// Above the slanted face near the low (left) end.
	above := TransformHull(SquareHull(), box(-30, -30, 10, 10), Vector{})
	assert.False(t, Collides(above, rampHull))

	// Same height near the high (right) end is inside the ramp.
	inside := TransformHull(SquareHull(), box(30, -30, 10, 10), Vector{})
	assert.True(t, Collides(inside, rampHull))

	mirrored := TransformHull(SlopeHull(-1), ramp, Vector{})
	assert.True(t, Collides(above, mirrored))
	assert.False(t, Collides(inside, mirrored))
}

func TestCollidesAt_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	hulls := [][]Vector{SquareHull(), SlopeHull(1), SlopeHull(-1)}

	for i := 0; i < 500; i++ {
		ha := hulls[rng.Intn(len(hulls))]
		hb := hulls[rng.Intn(len(hulls))]
		ta := box(rng.Float64()*60-30, rng.Float64()*60-30, 5+rng.Float64()*30, 5+rng.Float64()*30)
		tb := box(rng.Float64()*60-30, rng.Float64()*60-30, 5+rng.Float64()*30, 5+rng.Float64()*30)
		offset := Vector{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10}

		forward := CollidesAt(ha, ta, hb, tb, offset)
		backward := CollidesAt(hb, tb, ha, ta, offset.Scale(-1))
		require.Equal(t, forward, backward, "case %d", i)
	}
}

func TestCollides_MatchesAABBForRectangles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		// Integer coordinates exercise the touching boundary often.
		ax, ay := float64(rng.Intn(40)-20), float64(rng.Intn(40)-20)
		bx, by := float64(rng.Intn(40)-20), float64(rng.Intn(40)-20)
		aw, ah := float64(2*(1+rng.Intn(10))), float64(2*(1+rng.Intn(10)))
		bw, bh := float64(2*(1+rng.Intn(10))), float64(2*(1+rng.Intn(10)))

		a := TransformHull(SquareHull(), box(ax, ay, aw, ah), Vector{})
		b := TransformHull(SquareHull(), box(bx, by, bw, bh), Vector{})

		aabb := ax-aw/2 <= bx+bw/2 && ax+aw/2 >= bx-bw/2 &&
			ay-ah/2 <= by+bh/2 && ay+ah/2 >= by-bh/2

		require.Equal(t, aabb, Collides(a, b), "case %d", i)
	}
}
