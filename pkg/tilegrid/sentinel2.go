package tilegrid

import (
	"io"
	"regexp"
	"strings"

	"github.com/opensatmap/tilegrid/internal/kml"
)

// mgrsTile matches Sentinel-2 grid cell codes: UTM zone plus three-letter
// MGRS square (e.g. "31TGM", "7VEG").
var mgrsTile = regexp.MustCompile(`^[0-9]{1,2}[A-Z]{3}$`)

// Sentinel2Grid extracts tiles from the Sentinel-2 tiling grid KML
// (the S2 GIP_TILPAR product). Each placemark is named by its MGRS grid cell
// and bounded by the envelope of its polygon geometry.
type Sentinel2Grid struct{}

func (Sentinel2Grid) Name() string { return "sentinel-2" }

func (Sentinel2Grid) ExtractKML(r io.Reader) (map[string]Rect, error) {
	doc, err := kml.Parse(r)
	if err != nil {
		return nil, &ParseError{Reason: "malformed sentinel-2 grid kml", Err: err}
	}

	tiles := make(map[string]Rect)
	for _, pm := range doc.AllPlacemarks() {
		name := strings.TrimSpace(pm.Name)
		if !mgrsTile.MatchString(name) {
			continue
		}
		env, ok, err := pm.Envelope()
		if err != nil {
			return nil, &ParseError{Field: name, Reason: "invalid placemark geometry", Err: err}
		}
		if !ok {
			continue
		}
		tiles[name] = envelopeRect(env)
	}
	return tiles, nil
}

// envelopeRect converts a geographic envelope to a Rect with the origin at
// the minimum corner and positive extents.
func envelopeRect(env kml.Envelope) Rect {
	return Rect{
		X: env.MinLon,
		Y: env.MinLat,
		W: env.MaxLon - env.MinLon,
		H: env.MaxLat - env.MinLat,
	}
}
