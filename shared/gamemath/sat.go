package gamemath

// Collides reports whether two convex hulls overlap using the separating
// axis test on the edges of both hulls. Vertices that lie exactly on an
// edge line do not separate, so touching hulls collide.
//
// Both hulls must be convex and wound as described on SquareHull; other
// input gives an undefined answer.
func Collides(a, b []Vector) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return !hasSeparatingEdge(a, b) && !hasSeparatingEdge(b, a)
}

// hasSeparatingEdge reports whether some edge of hull puts every vertex of
// other strictly on its outer side.
func hasSeparatingEdge(hull, other []Vector) bool {
	for i := range hull {
		p1 := hull[i]
		p2 := hull[(i+1)%len(hull)]

		divides := true
		for _, v := range other {
			side := (p2.Y-p1.Y)*(v.X-p1.X) - (p2.X-p1.X)*(v.Y-p1.Y)
			if side <= 0 {
				divides = false
				break
			}
		}
		if divides {
			return true
		}
	}
	return false
}

// CollidesAt tests hull a, placed by ta and displaced by offset, against
// hull b placed by tb. Neither transform is modified.
func CollidesAt(a []Vector, ta Transform, b []Vector, tb Transform, offset Vector) bool {
	return Collides(TransformHull(a, ta, offset), TransformHull(b, tb, Vector{}))
}
