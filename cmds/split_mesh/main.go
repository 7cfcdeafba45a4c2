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
	var dirX, dirY float64
	var pointX, pointY float64
	flag.Float64Var(&dirX, "dir-x", 0, "x component of the cut direction")
	flag.Float64Var(&dirY, "dir-y", 1, "y component of the cut direction")
	flag.Float64Var(&pointX, "point-x", 0, "x coordinate the cut passes through")
	flag.Float64Var(&pointY, "point-y", 0, "y coordinate the cut passes through")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: split_mesh [flags] <input.bin> <out_a.bin> <out_b.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outAPath, outBPath := args[0], args[1], args[2]

	mesh, err := frag2d.LoadMesh(inputPath)
	essentials.Must(err)
	log.Printf("Loaded mesh with area %f.", mesh.Area())

	halves, err := frag2d.Split(mesh, model2d.XY(dirX, dirY), model2d.XY(pointX, pointY))
	essentials.Must(err)

	for i, path := range []string{outAPath, outBPath} {
		half := halves[i]
		if half == nil {
			log.Printf("Side %d is empty; not writing %s.", i, path)
			continue
		}
		log.Printf("Side %d: area %f, offset %v.", i, half.Mesh.Area(), half.Offset)
		essentials.Must(frag2d.SaveMesh(path, half.Mesh))
	}
}
