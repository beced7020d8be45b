package tilegrid

import "sort"

// CornerConvention selects how the four-corner form of an area-of-interest
// query derives a rectangle from its upper-left and lower-right corners.
//
// The convention this registry format was inherited with computes the extents
// as ulx-lrx and uly-lry, which for an upper-left/lower-right corner pair in
// longitude/latitude yields negative width and height — an empty rectangle
// that intersects no tile. That behavior is preserved verbatim under
// CornerLegacy for compatibility with data pipelines that depend on it;
// CornerNormalized is the geometrically intended form. Both are pinned by
// tests; new callers should use CornerNormalized.
type CornerConvention int

const (
	// CornerLegacy builds Rect{ulx, uly, ulx-lrx, uly-lry}.
	CornerLegacy CornerConvention = iota

	// CornerNormalized builds Rect{ulx, lry, lrx-ulx, uly-lry}: origin at the
	// minimum corner with positive extents.
	CornerNormalized
)

// CornerRect builds the query rectangle for the given corner pair under the
// given convention.
func CornerRect(ulx, uly, lrx, lry float64, conv CornerConvention) Rect {
	if conv == CornerNormalized {
		return Rect{X: ulx, Y: lry, W: lrx - ulx, H: uly - lry}
	}
	return Rect{X: ulx, Y: uly, W: ulx - lrx, H: uly - lry}
}

// BoundingBox computes the smallest rectangle containing every requested tile
// that is present in the registry.
//
// Identifiers not present are silently skipped. The second return value is
// false when codes is empty or none of the requested tiles are registered.
// A single matching tile returns exactly that tile's rectangle. The result is
// independent of the order of codes.
func (m *Registry) BoundingBox(codes []string) (Rect, bool) {
	var box Rect
	found := false
	for _, code := range codes {
		rect, ok := m.tiles[code]
		if !ok {
			continue
		}
		if !found {
			box = rect
			found = true
		} else {
			box = box.Union(rect)
		}
	}
	return box, found
}

// IntersectingTiles returns the identifiers of all tiles whose rectangle
// intersects the area of interest.
//
// The scan is linear over all registered tiles. The result is a set; it is
// returned sorted for determinism but callers must not rely on the order.
func (m *Registry) IntersectingTiles(aoi Rect) []string {
	var codes []string
	for code, rect := range m.tiles {
		if rect.Intersects(aoi) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// IntersectingTilesCorners is the four-corner form of IntersectingTiles,
// taking the upper-left and lower-right corners of the area of interest.
// See CornerConvention for the two supported corner-to-rectangle derivations.
func (m *Registry) IntersectingTilesCorners(ulx, uly, lrx, lry float64, conv CornerConvention) []string {
	return m.IntersectingTiles(CornerRect(ulx, uly, lrx, lry, conv))
}
