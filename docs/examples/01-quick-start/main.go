package main

import (
	"fmt"
	"log"

	"github.com/opensatmap/tilegrid/pkg/tilegrid"
)

func main() {
	// Create a registry for the Sentinel-2 MGRS grid
	registry := tilegrid.NewSentinel2Registry()

	// Load a previously converted tile map
	if err := registry.ReadFile("S2_tilemap.dat"); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Tiles: %d\n", registry.Count())

	// Bounding box covering a set of tiles
	box, ok := registry.BoundingBox([]string{"31TGM", "32TGM"})
	if !ok {
		log.Fatal("none of the requested tiles are registered")
	}
	fmt.Printf("Coverage: x=%g y=%g w=%g h=%g\n", box.X, box.Y, box.W, box.H)
}
