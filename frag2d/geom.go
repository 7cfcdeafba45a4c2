package frag2d

import "github.com/unixpickle/model3d/model2d"

// distanceToLine computes the signed distance from p to the line through
// linePoint with unit normal. Points at distance zero count as the negative
// side everywhere in this package.
func distanceToLine(p, normal, linePoint model2d.Coord) float64 {
	return normal.Dot(p.Sub(linePoint))
}

// lineIntersections computes the two points where the edges from v to each
// opposite vertex cross the cutting line. The caller guarantees that v and
// the opposite vertices are on different sides, so each edge crosses the
// line exactly once.
func lineIntersections(normal, linePoint, v model2d.Coord, opposite [2]model2d.Coord) [2]model2d.Coord {
	var res [2]model2d.Coord
	for i, o := range opposite {
		direction := o.Sub(v)
		t := -distanceToLine(v, normal, linePoint) / normal.Dot(direction)
		res[i] = v.Add(direction.Scale(t))
	}
	return res
}

// signedDoubleArea is the z component of the cross product of the triangle's
// edge vectors: positive for counter-clockwise winding, negative for
// clockwise, zero for collinear vertices.
func signedDoubleArea(v1, v2, v3 model2d.Coord) float64 {
	a := v2.Sub(v1)
	b := v3.Sub(v1)
	return a.X*b.Y - a.Y*b.X
}

func triangleArea(v1, v2, v3 model2d.Coord) float64 {
	res := 0.5 * signedDoubleArea(v1, v2, v3)
	if res < 0 {
		return -res
	}
	return res
}

// isCCW reports whether the triangle winds counter-clockwise. Collinear
// triangles count as counter-clockwise so that correcting the winding twice
// never flips a triangle back.
func isCCW(vertices []model2d.Coord, t [3]int) bool {
	return signedDoubleArea(vertices[t[0]], vertices[t[1]], vertices[t[2]]) >= 0
}

// ensureCCW swaps the triangle's second and third indices if it winds
// clockwise.
func ensureCCW(vertices []model2d.Coord, t *[3]int) {
	if !isCCW(vertices, *t) {
		t[1], t[2] = t[2], t[1]
	}
}
