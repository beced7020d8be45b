package main

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/opensatmap/tilegrid/pkg/tilegrid"
)

func newRegistry() (*tilegrid.Registry, error) {
	switch mission {
	case "sentinel-2":
		return tilegrid.NewSentinel2Registry(), nil
	case "landsat-8":
		return tilegrid.NewLandsat8Registry(), nil
	default:
		return nil, fmt.Errorf("unknown mission %q (want sentinel-2 or landsat-8)", mission)
	}
}

func loadRegistry(path string) (*tilegrid.Registry, error) {
	registry, err := newRegistry()
	if err != nil {
		return nil, err
	}
	if err := registry.ReadFile(path); err != nil {
		return nil, err
	}
	logger.Debug("tile map loaded", "path", path, "tiles", registry.Count())
	return registry, nil
}

var convertCmd = &cobra.Command{
	Use:   "convert <grid.kml> <out.map>",
	Short: "Convert a mission grid KML to the tile map format",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newRegistry()
		if err != nil {
			return err
		}
		if err := registry.IngestKMLFile(args[0]); err != nil {
			return err
		}
		logger.Info("grid kml ingested", "mission", registry.Grid().Name(), "tiles", registry.Count())
		return registry.Write(args[1])
	},
}

var bboxGeoJSON bool

var bboxCmd = &cobra.Command{
	Use:   "bbox <tile.map> <code>...",
	Short: "Compute the bounding box of a set of tiles",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(args[0])
		if err != nil {
			return err
		}
		codes := args[1:]
		box, ok := registry.BoundingBox(codes)
		if !ok {
			return fmt.Errorf("none of the requested tiles are registered")
		}

		if bboxGeoJSON {
			feature := geojson.NewFeature(box.Bound().ToPolygon())
			feature.Properties["tiles"] = codes
			data, err := feature.MarshalJSON()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("x=%g,y=%g,w=%g,h=%g\n", box.X, box.Y, box.W, box.H)
		return nil
	},
}

var legacyCorners bool

var searchCmd = &cobra.Command{
	Use:   "search <tile.map> <ulx> <uly> <lrx> <lry>",
	Short: "List tiles intersecting an area of interest",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(args[0])
		if err != nil {
			return err
		}
		var corners [4]float64
		for i, arg := range args[1:] {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid corner coordinate %q: %w", arg, err)
			}
			corners[i] = v
		}
		conv := tilegrid.CornerNormalized
		if legacyCorners {
			conv = tilegrid.CornerLegacy
		}
		for _, code := range registry.IntersectingTilesCorners(corners[0], corners[1], corners[2], corners[3], conv) {
			fmt.Println(code)
		}
		return nil
	},
}

var fetchURL string

var fetchCmd = &cobra.Command{
	Use:   "fetch <out.kml>",
	Short: "Download the mission's published grid KML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := fetchURL
		if url == "" {
			switch mission {
			case "sentinel-2":
				url = tilegrid.Sentinel2GridURL
			case "landsat-8":
				url = tilegrid.Landsat8GridURL
			default:
				return fmt.Errorf("unknown mission %q (want sentinel-2 or landsat-8)", mission)
			}
		}
		logger.Info("downloading grid kml", "url", url)
		return tilegrid.FetchKML(url, args[0])
	},
}

func init() {
	bboxCmd.Flags().BoolVar(&bboxGeoJSON, "geojson", false,
		"emit the bounding box as a GeoJSON feature")
	searchCmd.Flags().BoolVar(&legacyCorners, "legacy-corners", false,
		"use the inherited corner-to-rectangle convention (see package docs)")
	fetchCmd.Flags().StringVar(&fetchURL, "url", "",
		"override the grid KML download URL")
}
