package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/frag-2d/frag2d"
)

func main() {
	var seed int64
	var radius float64
	var numVertices int
	var drift float64
	flag.Int64Var(&seed, "seed", 0, "random seed for the polygon shape")
	flag.Float64Var(&radius, "radius", 50, "polygon circumradius")
	flag.IntVar(&numVertices, "vertices", 14, "number of rim vertices")
	flag.Float64Var(&drift, "drift", 8, "maximum per-axis vertex displacement")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: gen_mesh [flags] <output.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputPath := args[0]

	log.Println("Generating mesh...")
	mesh := frag2d.RandomPolygonMesh(rand.New(rand.NewSource(seed)), radius, numVertices, drift)
	log.Printf("Generated %d vertices, %d triangles, area %f.",
		len(mesh.Vertices), len(mesh.Triangles), mesh.Area())
	essentials.Must(frag2d.SaveMesh(outputPath, mesh))
}
