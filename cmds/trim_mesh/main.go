package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/frag-2d/frag2d"
	"github.com/unixpickle/model3d/model2d"
)

func main() {
	var seed int64
	var scale float64
	flag.Int64Var(&seed, "seed", 0, "random seed for corner selection")
	flag.Float64Var(&scale, "scale", 4, "pixels per unit in the rendering")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: trim_mesh [flags] <input.bin> <output.png>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	mesh, err := frag2d.LoadMesh(inputPath)
	essentials.Must(err)
	log.Printf("Loaded mesh with area %f.", mesh.Area())

	log.Println("Trimming mesh...")
	body, shards, err := frag2d.Trim(rand.New(rand.NewSource(seed)), mesh)
	essentials.Must(err)
	log.Printf("Main mesh area %f with %d shards.", body.Mesh.Area(), len(shards))

	log.Println("Rendering...")
	res := model2d.NewMesh()
	for _, frag := range append([]*frag2d.Fragment{body}, shards...) {
		offset := frag.Offset
		frag.Mesh.BoundarySegments().Iterate(func(s *model2d.Segment) {
			res.Add(&model2d.Segment{s[0].Add(offset), s[1].Add(offset)})
		})
	}
	essentials.Must(model2d.Rasterize(outputPath, res, scale))
}
