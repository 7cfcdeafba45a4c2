package frag2d

import (
	"math"
	"math/rand"

	"github.com/unixpickle/model3d/model2d"
)

// RandomPolygonMesh creates an asteroid-like test mesh: a regular polygon
// with the given number of rim vertices at the given circumradius,
// fan-triangulated around a center vertex at the origin, with every rim
// vertex displaced by up to maxDrift along each axis.
//
// The drift must be small enough relative to the radius that the polygon
// stays star-shaped around the origin; the fan triangulation does not check
// for self-intersection.
func RandomPolygonMesh(r *rand.Rand, radius float64, numVertices int, maxDrift float64) *Mesh {
	if numVertices < 3 {
		panic("polygon requires at least three vertices")
	}
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	m := &Mesh{
		Vertices: make([]model2d.Coord, 0, numVertices+1),
	}
	m.Vertices = append(m.Vertices, model2d.Coord{})
	for i := 0; i < numVertices; i++ {
		theta := 2 * math.Pi * float64(i) / float64(numVertices)
		drift := model2d.XY(
			(r.Float64()*2-1)*maxDrift,
			(r.Float64()*2-1)*maxDrift,
		)
		m.Vertices = append(m.Vertices, model2d.XY(
			math.Cos(theta)*radius,
			math.Sin(theta)*radius,
		).Add(drift))
	}
	for i := 0; i < numVertices; i++ {
		t := [3]int{0, i + 1, (i+1)%numVertices + 1}
		ensureCCW(m.Vertices, &t)
		m.Triangles = append(m.Triangles, t)
	}
	return m
}
