package main

import (
	"fmt"
	"log"

	"github.com/opensatmap/tilegrid/pkg/tilegrid"
)

func main() {
	// Download the WRS-2 grid KML and build a Landsat-8 registry from it
	if err := tilegrid.FetchKML(tilegrid.Landsat8GridURL, "/tmp/wrs2.kml"); err != nil {
		log.Fatal(err)
	}

	registry := tilegrid.NewLandsat8Registry()
	if err := registry.IngestKMLFile("/tmp/wrs2.kml"); err != nil {
		log.Fatal(err)
	}

	// Tiles covering the Gulf of Lion
	aoi := tilegrid.Rect{X: 3.0, Y: 42.0, W: 3.0, H: 2.0}
	for _, code := range registry.IntersectingTiles(aoi) {
		rect, _ := registry.TileRect(code)
		fmt.Printf("%s x=%g y=%g w=%g h=%g\n", code, rect.X, rect.Y, rect.W, rect.H)
	}

	// Persist the registry for later runs
	if err := registry.Write("/tmp/L8_tilemap.dat"); err != nil {
		log.Fatal(err)
	}
}
