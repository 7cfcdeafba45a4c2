package frag2d

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// A sideBuffer accumulates the vertices and triangles routed to one side of
// a cut. It starts out with every input vertex; vertices that end up unused
// are removed by cleanup afterwards.
type sideBuffer struct {
	Vertices  []model2d.Coord
	Triangles [][3]int
}

func newSideBuffer(vertices []model2d.Coord) *sideBuffer {
	return &sideBuffer{
		Vertices: append([]model2d.Coord{}, vertices...),
	}
}

// Split cuts m along the line that runs through point in the given
// direction, producing up to two fragments: index 0 for the side at strictly
// positive signed distance from the line, index 1 for the other side. A side
// that the cut leaves empty, or whose remains have no usable area, is nil.
//
// The returned fragments are recentered; each fragment's Offset places it
// back in m's coordinate frame.
func Split(m *Mesh, direction, point model2d.Coord) ([2]*Fragment, error) {
	if err := m.Check(); err != nil {
		return [2]*Fragment{}, errors.Wrap(err, "split mesh")
	}
	if direction.Norm() == 0 {
		return [2]*Fragment{}, errors.New("split mesh: zero cut direction")
	}
	return splitMesh(m, direction, point), nil
}

// splitMesh implements Split for meshes that are already known to be
// structurally valid, which lets Shatter and Trim re-split their own output
// without re-validating it.
func splitMesh(m *Mesh, direction, point model2d.Coord) [2]*Fragment {
	normal := model2d.XY(-direction.Y, direction.X).Normalize()
	sides := [2]*sideBuffer{newSideBuffer(m.Vertices), newSideBuffer(m.Vertices)}

	for _, t := range m.Triangles {
		var a, b []int
		for _, idx := range t {
			if distanceToLine(m.Vertices[idx], normal, point) > 0 {
				a = append(a, idx)
			} else {
				b = append(b, idx)
			}
		}
		switch len(a) {
		case 3:
			sides[0].Triangles = append(sides[0].Triangles, [3]int{a[0], a[1], a[2]})
		case 0:
			sides[1].Triangles = append(sides[1].Triangles, [3]int{b[0], b[1], b[2]})
		case 1:
			clipTriangle(normal, point, m.Vertices, a[0], [2]int{b[0], b[1]}, sides[0], sides[1])
		case 2:
			clipTriangle(normal, point, m.Vertices, b[0], [2]int{a[0], a[1]}, sides[1], sides[0])
		default:
			panic("invalid split configuration")
		}
	}

	var res [2]*Fragment
	for i, side := range sides {
		if mesh, offset, ok := cleanupMesh(side.Vertices, side.Triangles); ok {
			res[i] = &Fragment{Mesh: mesh, Offset: offset}
		}
	}
	return res
}

// clipTriangle splits a triangle that straddles the cutting line, with one
// vertex on the minority side and two on the majority side. It synthesizes
// the two edge/line intersection points and emits one triangle into the
// minority buffer and two into the majority buffer, each corrected to CCW
// independently. This is the only place new vertices are created.
func clipTriangle(normal, point model2d.Coord, vertices []model2d.Coord, minority int,
	majority [2]int, minSide, majSide *sideBuffer) {
	inter := lineIntersections(normal, point, vertices[minority],
		[2]model2d.Coord{vertices[majority[0]], vertices[majority[1]]})

	minSide.Vertices = append(minSide.Vertices, inter[0], inter[1])
	i1 := len(minSide.Vertices) - 2
	i2 := len(minSide.Vertices) - 1
	minTri := [3]int{minority, i1, i2}
	ensureCCW(minSide.Vertices, &minTri)
	minSide.Triangles = append(minSide.Triangles, minTri)

	majSide.Vertices = append(majSide.Vertices, inter[0], inter[1])
	j1 := len(majSide.Vertices) - 2
	j2 := len(majSide.Vertices) - 1
	majTri1 := [3]int{majority[0], j2, j1}
	majTri2 := [3]int{majority[1], j2, majority[0]}
	ensureCCW(majSide.Vertices, &majTri1)
	ensureCCW(majSide.Vertices, &majTri2)
	majSide.Triangles = append(majSide.Triangles, majTri1, majTri2)
}
