package frag2d

import "github.com/unixpickle/model3d/model2d"

// BoundarySegments extracts the outline of the mesh as a model2d segment
// mesh: every edge that is used by exactly one triangle. Interior edges,
// which are shared by two triangles, are omitted. The result can be handed
// to model2d rendering helpers such as Rasterize.
func (m *Mesh) BoundarySegments() *model2d.Mesh {
	type edge [2]int
	counts := map[edge]int{}
	for _, t := range m.Triangles {
		for i := 0; i < 3; i++ {
			e := edge{t[i], t[(i+1)%3]}
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			counts[e]++
		}
	}
	res := model2d.NewMesh()
	for e, count := range counts {
		if count == 1 {
			res.Add(&model2d.Segment{m.Vertices[e[0]], m.Vertices[e[1]]})
		}
	}
	return res
}
