package frag2d

import (
	"math"
	"math/rand"
	"testing"
)

func TestTrimSquare(t *testing.T) {
	square := newSquare(5)
	total := square.Area()

	main, shards, err := Trim(rand.New(rand.NewSource(3)), square)
	if err != nil {
		t.Fatal(err)
	}
	if main == nil {
		t.Fatal("expected a main mesh")
	}
	checkMeshIntegrity(t, main.Mesh)

	if len(shards) == 0 {
		t.Fatal("expected at least one shard from a square's corners")
	}
	if len(shards) > maxTrimCuts {
		t.Fatalf("expected at most %d shards but got %d", maxTrimCuts, len(shards))
	}

	sum := main.Mesh.Area()
	if sum >= total {
		t.Errorf("main mesh area %f should be below the original %f", sum, total)
	}
	for _, shard := range shards {
		checkMeshIntegrity(t, shard.Mesh)
		sum += shard.Mesh.Area()
	}
	if math.Abs(sum-total) > 1e-6 {
		t.Errorf("expected total area %f but got %f", total, sum)
	}
}

func TestTrimOffsets(t *testing.T) {
	square := newSquare(5)
	min := square.Min()
	max := square.Max()

	main, shards, err := Trim(rand.New(rand.NewSource(5)), square)
	if err != nil {
		t.Fatal(err)
	}
	fragments := append([]*Fragment{main}, shards...)
	for _, frag := range fragments {
		for _, v := range frag.Mesh.Vertices {
			world := v.Add(frag.Offset)
			if world.X < min.X-1e-6 || world.Y < min.Y-1e-6 ||
				world.X > max.X+1e-6 || world.Y > max.Y+1e-6 {
				t.Fatalf("trimmed vertex %v lands outside the original bounds", world)
			}
		}
	}
}

func TestTrimDeterministicWithSeed(t *testing.T) {
	run := func() (float64, int) {
		main, shards, err := Trim(rand.New(rand.NewSource(99)), newSquare(5))
		if err != nil {
			t.Fatal(err)
		}
		return main.Mesh.Area(), len(shards)
	}
	area1, count1 := run()
	area2, count2 := run()
	if area1 != area2 || count1 != count2 {
		t.Errorf("seeded trims differ: (%f, %d) vs (%f, %d)", area1, count1, area2, count2)
	}
}

func TestTrimDoesNotMutateInput(t *testing.T) {
	square := newSquare(5)
	original := square.Copy()
	if _, _, err := Trim(rand.New(rand.NewSource(1)), square); err != nil {
		t.Fatal(err)
	}
	for i, v := range square.Vertices {
		if v != original.Vertices[i] {
			t.Fatalf("input vertex %d changed from %v to %v", i, original.Vertices[i], v)
		}
	}
}

func TestTrimMalformedMesh(t *testing.T) {
	if _, _, err := Trim(nil, &Mesh{}); err == nil {
		t.Error("expected error for empty mesh")
	}
}
