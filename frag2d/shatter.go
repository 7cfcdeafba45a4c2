package frag2d

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// maxShatterDepth bounds how many times a fragment may be re-split before it
// is accepted as-is, even if it is still larger than the target area.
const maxShatterDepth = 3

type shatterItem struct {
	Mesh   *Mesh
	Offset model2d.Coord
	Depth  int
}

// Shatter recursively splits m perpendicular to its longest axis until every
// fragment has area at most maxArea or has been split maxShatterDepth times.
// Fragment offsets are expressed in m's coordinate frame.
//
// The area bound is best-effort: a fragment that still exceeds maxArea at
// the depth ceiling is returned rather than discarded.
func Shatter(m *Mesh, maxArea float64) ([]*Fragment, error) {
	if err := m.Check(); err != nil {
		return nil, errors.Wrap(err, "shatter mesh")
	}
	if maxArea <= 0 {
		return nil, errors.New("shatter mesh: max area must be positive")
	}

	// An explicit work list keeps the fan-out iterative, so the depth cap
	// is the only recursion bound that matters.
	queue := []shatterItem{{Mesh: m.Copy(), Depth: 0}}
	var fragments []*Fragment
	for len(queue) > 0 {
		item := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if item.Mesh.Area() <= maxArea || item.Depth > maxShatterDepth {
			fragments = append(fragments, &Fragment{Mesh: item.Mesh, Offset: item.Offset})
			continue
		}

		axis := item.Mesh.LongestAxis()
		halves := splitMesh(item.Mesh, model2d.XY(-axis.Y, axis.X), model2d.Coord{})
		if halves[0] == nil && halves[1] == nil {
			// The cut degenerated on both sides; keep the fragment
			// rather than lose its area.
			fragments = append(fragments, &Fragment{Mesh: item.Mesh, Offset: item.Offset})
			continue
		}
		for _, half := range halves {
			if half == nil {
				continue
			}
			queue = append(queue, shatterItem{
				Mesh:   half.Mesh,
				Offset: item.Offset.Add(half.Offset),
				Depth:  item.Depth + 1,
			})
		}
	}
	return fragments, nil
}
