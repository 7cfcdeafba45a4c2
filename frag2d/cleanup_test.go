package frag2d

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model2d"
)

func TestRemoveUnusedVertices(t *testing.T) {
	vertices := []model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(5, 5), // unused
		model2d.XY(1, 0),
		model2d.XY(0, 1),
	}
	triangles := [][3]int{{0, 2, 3}}

	newVertices, newTriangles := removeUnusedVertices(vertices, triangles)
	if len(newVertices) != 3 {
		t.Fatalf("expected 3 vertices but got %d", len(newVertices))
	}
	if newTriangles[0] != [3]int{0, 1, 2} {
		t.Errorf("expected remapped triangle [0 1 2] but got %v", newTriangles[0])
	}
	if newVertices[1] != model2d.XY(1, 0) {
		t.Errorf("unexpected vertex order: %v", newVertices)
	}
}

func TestWeldVertices(t *testing.T) {
	vertices := []model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(1, 0),
		model2d.XY(0, 1),
		model2d.XY(1e-10, 0), // welds onto vertex 0
	}
	triangles := [][3]int{{0, 1, 2}, {3, 1, 2}}

	newVertices, newTriangles := weldVertices(vertices, triangles)
	if len(newVertices) != 3 {
		t.Fatalf("expected 3 vertices but got %d", len(newVertices))
	}
	if len(newTriangles) != 2 {
		t.Fatalf("expected 2 triangles but got %d", len(newTriangles))
	}
	if newTriangles[1] != [3]int{0, 1, 2} {
		t.Errorf("expected welded triangle [0 1 2] but got %v", newTriangles[1])
	}
}

func TestWeldDropsDegenerateTriangles(t *testing.T) {
	vertices := []model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(1e-10, 1e-10), // welds onto vertex 0
		model2d.XY(0, 1),
	}
	triangles := [][3]int{{0, 1, 2}}

	_, newTriangles := weldVertices(vertices, triangles)
	if len(newTriangles) != 0 {
		t.Fatalf("expected collapsed triangle to be dropped but got %v", newTriangles)
	}
}

func TestRecenterIdempotent(t *testing.T) {
	vertices := []model2d.Coord{
		model2d.XY(1, 1),
		model2d.XY(3, 2),
		model2d.XY(2, 5),
	}
	first := recenterVertices(vertices)
	if first.Dist(model2d.XY(2, 3)) > 1e-8 {
		t.Errorf("expected center (2, 3) but got %v", first)
	}
	second := recenterVertices(vertices)
	if second.Norm() > 1e-8 {
		t.Errorf("recentering a centered mesh moved it by %v", second)
	}
}

func TestCleanupRejectsDegenerate(t *testing.T) {
	vertices := []model2d.Coord{model2d.XY(0, 0), model2d.XY(1, 0)}

	if _, _, ok := cleanupMesh(vertices, nil); ok {
		t.Error("expected a mesh with no triangles to be rejected")
	}
	if _, _, ok := cleanupMesh(nil, nil); ok {
		t.Error("expected an empty mesh to be rejected")
	}

	// A sliver whose vertices weld together has no area left.
	sliver := []model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(1e-10, 0),
		model2d.XY(0, 1e-10),
	}
	if _, _, ok := cleanupMesh(sliver, [][3]int{{0, 1, 2}}); ok {
		t.Error("expected a fully-welded sliver to be rejected")
	}
}

func TestCleanupOffset(t *testing.T) {
	vertices := []model2d.Coord{
		model2d.XY(1, 2),
		model2d.XY(3, 2),
		model2d.XY(3, 4),
		model2d.XY(10, 10), // unused
	}
	triangles := [][3]int{{0, 1, 2}}

	mesh, offset, ok := cleanupMesh(vertices, triangles)
	if !ok {
		t.Fatal("expected a valid mesh")
	}
	if offset.Dist(model2d.XY(2, 3)) > 1e-8 {
		t.Errorf("expected offset (2, 3) but got %v", offset)
	}
	for i, v := range mesh.Vertices {
		orig := vertices[i]
		if v.Add(offset).Dist(orig) > 1e-8 {
			t.Errorf("vertex %d: %v + %v does not restore %v", i, v, offset, orig)
		}
	}
	if math.Abs(mesh.Area()-2) > 1e-8 {
		t.Errorf("expected area 2 but got %f", mesh.Area())
	}
}
