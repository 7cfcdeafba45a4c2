package frag2d

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// maxTrimCuts bounds the number of corner cuts Trim attempts. Trimming is a
// fixed-effort heuristic, not a convergent rounding algorithm.
const maxTrimCuts = 5

// trimRadiusScale relates the chord radius to the radius of a circle with
// the mesh's area, leaving a little slack so cuts only graze the corners.
const trimRadiusScale = 1.05

// Trim rounds off the corners of m by slicing it along chords tangent to an
// inscribed circle, returning the remaining main body plus the small shards
// that were cut away. Offsets are expressed in m's coordinate frame.
//
// Candidate corners are sampled from r, so results vary between runs unless
// the caller seeds r explicitly. A nil r uses an unseeded source.
func Trim(r *rand.Rand, m *Mesh) (*Fragment, []*Fragment, error) {
	if err := m.Check(); err != nil {
		return nil, nil, errors.Wrap(err, "trim mesh")
	}
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	// Pick the corner candidates up front, in m's frame. Vertices at the
	// origin have no direction to project along and are skipped.
	var candidates []model2d.Coord
	for _, idx := range r.Perm(len(m.Vertices)) {
		if len(candidates) == maxTrimCuts {
			break
		}
		if v := m.Vertices[idx]; v.Norm() > 0 {
			candidates = append(candidates, v)
		}
	}

	main := m.Copy()
	var offset model2d.Coord
	var shards []*Fragment
	for _, candidate := range candidates {
		area := main.Area()
		radius := math.Sqrt(area/math.Pi) * trimRadiusScale

		// The candidate was recorded in the input frame; the main mesh
		// has since been recentered by the accumulated offset.
		local := candidate.Sub(offset)
		norm := local.Norm()
		if norm == 0 {
			continue
		}
		direction := local.Scale(1 / norm)
		chord := direction.Scale(radius)

		// Cut along the chord. The line normal inside splitMesh comes
		// out as -direction, so the candidate's side is positive when
		// the candidate sits inside the chord radius.
		halves := splitMesh(main, model2d.XY(-direction.Y, direction.X), chord)
		shardSide := 1
		if radius-norm > 0 {
			shardSide = 0
		}
		mainHalf := halves[1-shardSide]
		if mainHalf == nil {
			// The chord missed or consumed the whole mesh; keep the
			// current main body and try the next corner.
			continue
		}
		if shard := halves[shardSide]; shard != nil {
			shards = append(shards, &Fragment{
				Mesh:   shard.Mesh,
				Offset: offset.Add(shard.Offset),
			})
		}
		main = mainHalf.Mesh
		offset = offset.Add(mainHalf.Offset)
	}
	return &Fragment{Mesh: main, Offset: offset}, shards, nil
}
