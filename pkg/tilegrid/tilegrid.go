// Package tilegrid provides an in-memory registry mapping satellite-imagery
// tile identifiers to their geographic bounding rectangles.
//
// A Registry is created for a specific mission grid (Sentinel-2 MGRS cells or
// Landsat-8 WRS-2 path/row cells) and populated either from the line-oriented
// tile map text format or by ingesting the mission's tiling grid KML. Once
// populated it answers two geometric queries: the bounding box covering a set
// of tiles, and the set of tiles intersecting an area of interest.
//
// Example:
//
//	registry := tilegrid.NewSentinel2Registry()
//	if err := registry.ReadFile("S2_tilemap.dat"); err != nil {
//	    log.Fatal(err)
//	}
//
//	box, ok := registry.BoundingBox([]string{"31TGM", "32TGM"})
//	if ok {
//	    fmt.Printf("coverage: %+v\n", box)
//	}
//
//	tiles := registry.IntersectingTiles(tilegrid.Rect{X: 2.0, Y: 40.0, W: 2.0, H: 1.0})
//	fmt.Printf("tiles over AOI: %v\n", tiles)
//
// A Registry is not safe for concurrent use; callers must serialize access.
package tilegrid

import (
	"io"
	"sort"
)

// Grid defines how a mission's tiling grid KML maps placemarks to tiles.
//
// Each supported mission provides one implementation. The grid is chosen when
// the registry is constructed and drives IngestKML / IngestKMLFile.
type Grid interface {
	// Name returns the mission grid name (e.g. "sentinel-2").
	Name() string

	// ExtractKML reads an entire KML stream and returns the tile entries it
	// describes. A malformed document fails with *ParseError and returns no
	// entries.
	ExtractKML(r io.Reader) (map[string]Rect, error)
}

// Registry maps tile identifiers to their bounding rectangles for one mission
// grid.
//
// The mapping is populated exclusively by Read/ReadFile and
// IngestKML/IngestKMLFile; there is no deletion. Iteration and serialization
// order is lexicographic by tile identifier.
type Registry struct {
	tiles map[string]Rect
	grid  Grid
}

// New creates an empty registry for the given mission grid.
func New(grid Grid) *Registry {
	return &Registry{
		tiles: make(map[string]Rect),
		grid:  grid,
	}
}

// NewSentinel2Registry creates an empty registry for the Sentinel-2 MGRS
// tiling grid.
func NewSentinel2Registry() *Registry {
	return New(Sentinel2Grid{})
}

// NewLandsat8Registry creates an empty registry for the Landsat-8 WRS-2
// path/row grid.
func NewLandsat8Registry() *Registry {
	return New(Landsat8Grid{})
}

// Grid returns the mission grid this registry was constructed for.
func (m *Registry) Grid() Grid {
	return m.grid
}

// Count returns the number of registered tiles.
func (m *Registry) Count() int {
	return len(m.tiles)
}

// TileNames returns all tile identifiers in lexicographic order.
//
// The result is a snapshot; mutating the registry afterwards does not affect
// a previously returned slice.
func (m *Registry) TileNames() []string {
	names := make([]string, 0, len(m.tiles))
	for name := range m.tiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TileRect returns the rectangle registered for the given tile identifier.
func (m *Registry) TileRect(code string) (Rect, bool) {
	r, ok := m.tiles[code]
	return r, ok
}

// insert applies the single insertion rule shared by every population path:
// a duplicate identifier silently overwrites the previous entry.
func (m *Registry) insert(entries map[string]Rect) {
	for code, rect := range entries {
		m.tiles[code] = rect
	}
}
