package tilegrid

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opensatmap/tilegrid/internal/kml"
)

// Landsat8Grid extracts tiles from the Landsat WRS-2 world bounds KML.
//
// Tiles are identified by path and row, read from the placemark's PATH and
// ROW extended data fields, or from a "path_row" placemark name when the
// extended data is absent. Identifiers are rendered as zero-padded
// path+row (e.g. path 189, row 34 is "189034"), matching the naming used in
// Landsat-8 product identifiers.
type Landsat8Grid struct{}

func (Landsat8Grid) Name() string { return "landsat-8" }

func (Landsat8Grid) ExtractKML(r io.Reader) (map[string]Rect, error) {
	doc, err := kml.Parse(r)
	if err != nil {
		return nil, &ParseError{Reason: "malformed wrs-2 grid kml", Err: err}
	}

	tiles := make(map[string]Rect)
	for _, pm := range doc.AllPlacemarks() {
		code, ok, err := wrsTileCode(pm)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		env, ok, err := pm.Envelope()
		if err != nil {
			return nil, &ParseError{Field: code, Reason: "invalid placemark geometry", Err: err}
		}
		if !ok {
			continue
		}
		tiles[code] = envelopeRect(env)
	}
	return tiles, nil
}

// wrsTileCode derives the path/row identifier for a placemark. Placemarks
// carrying neither PATH/ROW data nor a path_row name are skipped, not an
// error; the WRS KML interleaves annotation placemarks with the grid cells.
func wrsTileCode(pm kml.Placemark) (string, bool, error) {
	pathValue, pathOK := pm.DataValue("PATH")
	rowValue, rowOK := pm.DataValue("ROW")

	if !pathOK || !rowOK {
		// Name fallback: anything that is not a plain "path_row" pair is an
		// annotation placemark, skipped rather than rejected.
		parts := strings.Split(strings.TrimSpace(pm.Name), "_")
		if len(parts) != 2 {
			return "", false, nil
		}
		path, err1 := strconv.Atoi(parts[0])
		row, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return "", false, nil
		}
		return fmt.Sprintf("%03d%03d", path, row), true, nil
	}

	path, err := strconv.Atoi(pathValue)
	if err != nil {
		return "", false, &ParseError{Field: pathValue, Reason: "invalid wrs path", Err: err}
	}
	row, err := strconv.Atoi(rowValue)
	if err != nil {
		return "", false, &ParseError{Field: rowValue, Reason: "invalid wrs row", Err: err}
	}

	return fmt.Sprintf("%03d%03d", path, row), true, nil
}
