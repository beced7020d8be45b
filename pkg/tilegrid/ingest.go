package tilegrid

import (
	"fmt"
	"io"
	"os"
)

// IngestKML populates the registry from a mission tiling grid KML stream,
// using the extraction rule of the grid this registry was constructed for.
//
// Duplicate identifiers follow the same last-one-wins rule as Read. On a
// malformed document the registry keeps its pre-call contents: extracted
// entries are merged only after the whole stream parsed cleanly.
func (m *Registry) IngestKML(r io.Reader) error {
	staged, err := m.grid.ExtractKML(r)
	if err != nil {
		return err
	}
	m.insert(staged)
	return nil
}

// IngestKMLFile ingests a grid KML file. A path that does not exist is not an
// error; the registry is left unchanged. The file is closed on all exit
// paths.
func (m *Registry) IngestKMLFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open grid kml: %w", err)
	}
	defer f.Close()

	return m.IngestKML(f)
}
