package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/frag-2d/frag2d"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_info <input.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	mesh, err := frag2d.LoadMesh(inputPath)
	essentials.Must(err)

	fmt.Println("Vertices:", len(mesh.Vertices))
	fmt.Println("Triangles:", len(mesh.Triangles))
	fmt.Println("Area:", mesh.Area())
	fmt.Println("Bounds:", mesh.Min(), mesh.Max())
}
