// Package kml decodes the subset of KML used by mission tiling grid files:
// placemark names, extended data, and polygon outer rings. It makes no
// attempt to be a general KML implementation.
package kml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Document is the root of a parsed KML file.
type Document struct {
	XMLName    xml.Name    `xml:"kml"`
	Folders    []Folder    `xml:"Document>Folder"`
	Placemarks []Placemark `xml:"Document>Placemark"`
}

// Folder groups placemarks; folders may nest arbitrarily.
type Folder struct {
	Name       string      `xml:"name"`
	Folders    []Folder    `xml:"Folder"`
	Placemarks []Placemark `xml:"Placemark"`
}

// Placemark is a single named feature with optional extended data and
// polygon geometry. Both bare polygons and MultiGeometry members are kept.
type Placemark struct {
	Name       string       `xml:"name"`
	Data       []Data       `xml:"ExtendedData>Data"`
	SchemaData []SimpleData `xml:"ExtendedData>SchemaData>SimpleData"`
	Polygons   []Polygon    `xml:"Polygon"`
	MultiPolys []Polygon    `xml:"MultiGeometry>Polygon"`
}

// Data is a name/value pair from an ExtendedData block.
type Data struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

// SimpleData is a name/value pair from a SchemaData block.
type SimpleData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Polygon holds the raw coordinate string of the polygon's outer ring.
type Polygon struct {
	OuterRing string `xml:"outerBoundaryIs>LinearRing>coordinates"`
}

// Envelope is the axis-aligned extent of a placemark's geometry.
type Envelope struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// Parse decodes a KML document from the stream.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse kml: %w", err)
	}
	return &doc, nil
}

// AllPlacemarks returns every placemark in the document, walking nested
// folders depth-first.
func (d *Document) AllPlacemarks() []Placemark {
	var placemarks []Placemark
	placemarks = append(placemarks, d.Placemarks...)
	for _, folder := range d.Folders {
		placemarks = appendFolder(placemarks, folder)
	}
	return placemarks
}

func appendFolder(placemarks []Placemark, folder Folder) []Placemark {
	placemarks = append(placemarks, folder.Placemarks...)
	for _, sub := range folder.Folders {
		placemarks = appendFolder(placemarks, sub)
	}
	return placemarks
}

// DataValue looks up an extended data value by name, checking Data entries
// first, then SchemaData.
func (p *Placemark) DataValue(name string) (string, bool) {
	for _, d := range p.Data {
		if d.Name == name {
			return strings.TrimSpace(d.Value), true
		}
	}
	for _, d := range p.SchemaData {
		if d.Name == name {
			return strings.TrimSpace(d.Value), true
		}
	}
	return "", false
}

// Envelope computes the extent over all polygon outer rings of the placemark.
// The second return value is false when the placemark carries no coordinates.
//
// Ring coordinates are whitespace-separated lon,lat or lon,lat,alt tuples
// per the KML coordinate grammar.
func (p *Placemark) Envelope() (Envelope, bool, error) {
	var env Envelope
	found := false

	rings := make([]Polygon, 0, len(p.Polygons)+len(p.MultiPolys))
	rings = append(rings, p.Polygons...)
	rings = append(rings, p.MultiPolys...)

	for _, ring := range rings {
		for _, tuple := range strings.Fields(ring.OuterRing) {
			parts := strings.Split(tuple, ",")
			if len(parts) < 2 {
				return Envelope{}, false, fmt.Errorf("malformed coordinate tuple %q", tuple)
			}
			lon, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Envelope{}, false, fmt.Errorf("malformed longitude in %q: %w", tuple, err)
			}
			lat, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Envelope{}, false, fmt.Errorf("malformed latitude in %q: %w", tuple, err)
			}

			if !found {
				env = Envelope{MinLon: lon, MaxLon: lon, MinLat: lat, MaxLat: lat}
				found = true
				continue
			}
			if lon < env.MinLon {
				env.MinLon = lon
			}
			if lon > env.MaxLon {
				env.MaxLon = lon
			}
			if lat < env.MinLat {
				env.MinLat = lat
			}
			if lat > env.MaxLat {
				env.MaxLat = lat
			}
		}
	}

	return env, found, nil
}
