package frag2d

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomPolygonMesh(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	mesh := RandomPolygonMesh(r, 50, 14, 8)
	checkMeshIntegrity(t, mesh)

	if len(mesh.Vertices) != 15 {
		t.Fatalf("expected 15 vertices but got %d", len(mesh.Vertices))
	}
	if len(mesh.Triangles) != 14 {
		t.Fatalf("expected 14 triangles but got %d", len(mesh.Triangles))
	}

	// The jittered polygon should stay in the same ballpark as the
	// unjittered one, which has area close to a circle's.
	area := mesh.Area()
	circle := math.Pi * 50 * 50
	if area < circle*0.5 || area > circle*1.5 {
		t.Errorf("unexpected area %f for circumradius 50", area)
	}
}

func TestFlatRoundTrip(t *testing.T) {
	mesh := newSquare(1)
	positions, indices := mesh.Flat()
	if len(positions) != 12 || len(indices) != 6 {
		t.Fatalf("unexpected buffer sizes %d %d", len(positions), len(indices))
	}
	for i := 2; i < len(positions); i += 3 {
		if positions[i] != 0 {
			t.Fatal("z components should be zero")
		}
	}

	decoded, err := MeshFromFlat(positions, indices)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range decoded.Vertices {
		if v.Dist(mesh.Vertices[i]) > 1e-6 {
			t.Errorf("vertex %d: expected %v but got %v", i, mesh.Vertices[i], v)
		}
	}

	if _, err := MeshFromFlat(positions[:len(positions)-1], indices); err == nil {
		t.Error("expected error for misaligned position buffer")
	}
	if _, err := MeshFromFlat(positions, indices[:len(indices)-1]); err == nil {
		t.Error("expected error for misaligned index buffer")
	}
}
