package frag2d

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// WriteMesh serializes m in a 32-bit precision binary format: a vertex
// count, the vertex (x, y) pairs, a triangle count, and the index triples,
// all little-endian.
func WriteMesh(w io.Writer, m *Mesh) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Vertices))); err != nil {
		return errors.Wrap(err, "write mesh")
	}
	coords := make([]float32, 0, len(m.Vertices)*2)
	for _, v := range m.Vertices {
		coords = append(coords, float32(v.X), float32(v.Y))
	}
	if err := binary.Write(w, binary.LittleEndian, coords); err != nil {
		return errors.Wrap(err, "write mesh")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return errors.Wrap(err, "write mesh")
	}
	indices := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	if err := binary.Write(w, binary.LittleEndian, indices); err != nil {
		return errors.Wrap(err, "write mesh")
	}
	return nil
}

// ReadMesh reads the output written by WriteMesh.
func ReadMesh(r io.Reader) (*Mesh, error) {
	var numVertices uint32
	if err := binary.Read(r, binary.LittleEndian, &numVertices); err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	coords := make([]float32, numVertices*2)
	if err := binary.Read(r, binary.LittleEndian, coords); err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	var numTriangles uint32
	if err := binary.Read(r, binary.LittleEndian, &numTriangles); err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	indices := make([]uint32, numTriangles*3)
	if err := binary.Read(r, binary.LittleEndian, indices); err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}

	m := &Mesh{
		Vertices:  make([]model2d.Coord, 0, numVertices),
		Triangles: make([][3]int, 0, numTriangles),
	}
	for i := 0; i < len(coords); i += 2 {
		m.Vertices = append(m.Vertices, model2d.XY(float64(coords[i]), float64(coords[i+1])))
	}
	for i := 0; i < len(indices); i += 3 {
		m.Triangles = append(m.Triangles, [3]int{int(indices[i]), int(indices[i+1]), int(indices[i+2])})
	}
	if err := m.Check(); err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	return m, nil
}

// SaveMesh writes m to a file at path.
func SaveMesh(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save mesh")
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteMesh(w, m); err != nil {
		return errors.Wrap(err, "save mesh")
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "save mesh")
	}
	return nil
}

// LoadMesh reads a mesh from a file written by SaveMesh.
func LoadMesh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load mesh")
	}
	defer f.Close()
	return ReadMesh(bufio.NewReader(f))
}
