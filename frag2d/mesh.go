package frag2d

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// A Mesh is a triangulated planar polygon region: an ordered list of 2D
// vertex positions and an ordered list of index triples into it.
type Mesh struct {
	Vertices  []model2d.Coord
	Triangles [][3]int
}

// A Fragment is a mesh produced by a cut, paired with the translation that
// was applied to recenter it. Adding Offset to every vertex recovers the
// fragment's position in the parent mesh's coordinate frame.
type Fragment struct {
	Mesh   *Mesh
	Offset model2d.Coord
}

// MeshFromFlat builds a mesh from a flat position buffer of (x, y, z)
// triples and a flat index buffer. The z components are ignored; they exist
// only so that rendering-oriented callers can pass their buffers directly.
func MeshFromFlat(positions []float32, indices []uint32) (*Mesh, error) {
	if len(positions)%3 != 0 {
		return nil, errors.New("mesh from flat: position count is not a multiple of 3")
	}
	if len(indices)%3 != 0 {
		return nil, errors.New("mesh from flat: index count is not a multiple of 3")
	}
	m := &Mesh{
		Vertices:  make([]model2d.Coord, 0, len(positions)/3),
		Triangles: make([][3]int, 0, len(indices)/3),
	}
	for i := 0; i < len(positions); i += 3 {
		m.Vertices = append(m.Vertices, model2d.XY(float64(positions[i]), float64(positions[i+1])))
	}
	for i := 0; i < len(indices); i += 3 {
		m.Triangles = append(m.Triangles, [3]int{int(indices[i]), int(indices[i+1]), int(indices[i+2])})
	}
	if err := m.Check(); err != nil {
		return nil, errors.Wrap(err, "mesh from flat")
	}
	return m, nil
}

// Flat returns the mesh as a flat (x, y, z) position buffer with z fixed at
// zero, and a flat index buffer, the inverse of MeshFromFlat.
func (m *Mesh) Flat() ([]float32, []uint32) {
	positions := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		positions = append(positions, float32(v.X), float32(v.Y), 0)
	}
	indices := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	return positions, indices
}

// Check verifies the structural invariants of the mesh: at least one vertex
// and one triangle, every index in range, and no triangle that repeats an
// index. It does not check geometric properties such as winding.
func (m *Mesh) Check() error {
	if len(m.Vertices) == 0 {
		return errors.New("mesh has no vertices")
	}
	if len(m.Triangles) == 0 {
		return errors.New("mesh has no triangles")
	}
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(m.Vertices) {
				return errors.Errorf("triangle %d: index %d out of range", i, idx)
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return errors.Errorf("triangle %d: repeated index", i)
		}
	}
	return nil
}

// Copy creates a deep copy of the mesh.
func (m *Mesh) Copy() *Mesh {
	return &Mesh{
		Vertices:  append([]model2d.Coord{}, m.Vertices...),
		Triangles: append([][3]int{}, m.Triangles...),
	}
}

// Area computes the total area of the mesh as the sum of the (unsigned)
// areas of its triangles.
func (m *Mesh) Area() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += triangleArea(m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]])
	}
	return total
}

// Min gets the component-wise minimum of all vertices.
func (m *Mesh) Min() model2d.Coord {
	res := m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		res = res.Min(v)
	}
	return res
}

// Max gets the component-wise maximum of all vertices.
func (m *Mesh) Max() model2d.Coord {
	res := m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		res = res.Max(v)
	}
	return res
}

// LongestAxis finds, by scanning all vertex pairs, the unit direction along
// which the mesh is widest. It panics if the mesh has fewer than two
// distinct vertices.
func (m *Mesh) LongestAxis() model2d.Coord {
	if len(m.Vertices) < 2 {
		panic("longest axis requires at least two vertices")
	}
	longest := 0.0
	var axis model2d.Coord
	for i, v1 := range m.Vertices {
		for _, v2 := range m.Vertices[i+1:] {
			if d := v1.Dist(v2); d > longest {
				longest = d
				axis = v2.Sub(v1)
			}
		}
	}
	if longest == 0 {
		panic("longest axis requires two distinct vertices")
	}
	return axis.Scale(1 / longest)
}
