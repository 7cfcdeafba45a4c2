package frag2d

import (
	"github.com/unixpickle/model3d/model2d"
	"golang.org/x/exp/slices"
)

// weldEpsilon is the distance below which two vertices are merged into one.
const weldEpsilon = 1e-8

// cleanupMesh turns one side's raw buffers into a finished mesh: it drops
// vertices no triangle references, welds near-duplicate vertices, recenters
// the result on its bounding-box center, and checks that what remains is a
// usable mesh. The returned offset is the center that was subtracted. The
// final return value is false if the side is empty or degenerate.
func cleanupMesh(vertices []model2d.Coord, triangles [][3]int) (*Mesh, model2d.Coord, bool) {
	vertices, triangles = removeUnusedVertices(vertices, triangles)
	vertices, triangles = weldVertices(vertices, triangles)
	// Welding can drop a collapsed triangle and orphan its vertices, so
	// unused vertices are removed once more.
	vertices, triangles = removeUnusedVertices(vertices, triangles)
	offset := recenterVertices(vertices)
	if !usableMesh(vertices, triangles) {
		return nil, model2d.Coord{}, false
	}
	return &Mesh{Vertices: vertices, Triangles: triangles}, offset, true
}

// removeUnusedVertices keeps only the vertices referenced by at least one
// triangle and remaps triangle indices accordingly.
func removeUnusedVertices(vertices []model2d.Coord, triangles [][3]int) ([]model2d.Coord, [][3]int) {
	used := make([]bool, len(vertices))
	for _, t := range triangles {
		for _, idx := range t {
			used[idx] = true
		}
	}

	oldToNew := make([]int, len(vertices))
	newVertices := make([]model2d.Coord, 0, len(vertices))
	for i, v := range vertices {
		if used[i] {
			oldToNew[i] = len(newVertices)
			newVertices = append(newVertices, v)
		} else {
			oldToNew[i] = -1
		}
	}

	newTriangles := make([][3]int, len(triangles))
	for i, t := range triangles {
		newTriangles[i] = [3]int{oldToNew[t[0]], oldToNew[t[1]], oldToNew[t[2]]}
	}
	return newVertices, newTriangles
}

// weldVertices merges vertices that are within weldEpsilon of an earlier
// vertex. Triangles whose indices collapse onto fewer than three distinct
// vertices are dropped.
func weldVertices(vertices []model2d.Coord, triangles [][3]int) ([]model2d.Coord, [][3]int) {
	remap := make([]int, len(vertices))
	unique := make([]model2d.Coord, 0, len(vertices))
	for i, v := range vertices {
		vertex := v
		existing := slices.IndexFunc(unique, func(u model2d.Coord) bool {
			return u.Dist(vertex) < weldEpsilon
		})
		if existing >= 0 {
			remap[i] = existing
		} else {
			remap[i] = len(unique)
			unique = append(unique, v)
		}
	}

	newTriangles := make([][3]int, 0, len(triangles))
	for _, t := range triangles {
		mapped := [3]int{remap[t[0]], remap[t[1]], remap[t[2]]}
		if mapped[0] == mapped[1] || mapped[1] == mapped[2] || mapped[0] == mapped[2] {
			continue
		}
		newTriangles = append(newTriangles, mapped)
	}
	return unique, newTriangles
}

// recenterVertices translates the vertices so that their bounding-box center
// (not their centroid) lands on the origin, and returns the center that was
// subtracted.
func recenterVertices(vertices []model2d.Coord) model2d.Coord {
	if len(vertices) == 0 {
		return model2d.Coord{}
	}
	min := vertices[0]
	max := vertices[0]
	for _, v := range vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	center := min.Add(max).Scale(0.5)
	for i, v := range vertices {
		vertices[i] = v.Sub(center)
	}
	return center
}

// usableMesh reports whether the cleaned buffers describe a real region: at
// least one vertex and one triangle, and not a degenerate fan where every
// index is the same vertex.
func usableMesh(vertices []model2d.Coord, triangles [][3]int) bool {
	if len(vertices) == 0 || len(triangles) == 0 {
		return false
	}
	first := triangles[0][0]
	for _, t := range triangles {
		for _, idx := range t {
			if idx != first {
				return true
			}
		}
	}
	return false
}
