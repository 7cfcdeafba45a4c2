package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/frag-2d/frag2d"
	"github.com/unixpickle/model3d/model2d"
)

func main() {
	var maxArea float64
	var scale float64
	flag.Float64Var(&maxArea, "max-area", 100, "target area per fragment")
	flag.Float64Var(&scale, "scale", 4, "pixels per unit in the rendering")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: shatter_mesh [flags] <input.bin> <output.png>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	mesh, err := frag2d.LoadMesh(inputPath)
	essentials.Must(err)
	log.Printf("Loaded mesh with area %f.", mesh.Area())

	log.Println("Shattering mesh...")
	fragments, err := frag2d.Shatter(mesh, maxArea)
	essentials.Must(err)
	log.Printf("Produced %d fragments.", len(fragments))

	log.Println("Rendering...")
	essentials.Must(model2d.Rasterize(outputPath, outlines(fragments), scale))
}

// outlines collects the boundary of every fragment, placed back at its
// position in the input mesh's frame, into one segment mesh.
func outlines(fragments []*frag2d.Fragment) *model2d.Mesh {
	res := model2d.NewMesh()
	for _, frag := range fragments {
		offset := frag.Offset
		frag.Mesh.BoundarySegments().Iterate(func(s *model2d.Segment) {
			res.Add(&model2d.Segment{s[0].Add(offset), s[1].Add(offset)})
		})
	}
	return res
}
