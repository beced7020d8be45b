package tilegrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read populates the registry from the line-oriented tile map format.
//
// Each line holds one tile: the tile identifier, a single space, then four
// comma-separated fields x=,y=,w=,h= in that fixed order. A duplicate
// identifier overwrites the previous entry (last line wins).
//
// The first malformed line aborts the read with *ParseError identifying the
// line and field; on any error the registry keeps its pre-call contents.
// Entries read from the stream are merged into the registry only after the
// whole stream parsed cleanly.
func (m *Registry) Read(r io.Reader) error {
	staged := make(map[string]Rect)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		code, rect, err := parseLine(scanner.Text(), lineNo)
		if err != nil {
			return err
		}
		staged[code] = rect
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read tile map: %w", err)
	}

	m.insert(staged)
	return nil
}

// ReadFile opens the given tile map file, reads it via Read, and closes it on
// all exit paths.
func (m *Registry) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tile map: %w", err)
	}
	defer f.Close()

	return m.Read(f)
}

// parseLine decodes one tile map line.
//
// The identifier is everything before the first space; the remainder is split
// on commas into exactly four fields whose numeric value starts after the
// two-character key prefix. Splitting on the first space (rather than
// stripping the identifier wherever it occurs in the line) means an
// identifier recurring inside the numeric fields cannot corrupt them.
func parseLine(line string, lineNo int) (string, Rect, error) {
	code, rest, found := strings.Cut(line, " ")
	if !found || code == "" {
		return "", Rect{}, &ParseError{Line: lineNo, Reason: "missing space after tile identifier"}
	}

	fields := strings.Split(strings.TrimSpace(rest), ",")
	if len(fields) != 4 {
		return "", Rect{}, &ParseError{
			Line:   lineNo,
			Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields)),
		}
	}

	var values [4]float64
	for i, field := range fields {
		if len(field) < 2 {
			return "", Rect{}, &ParseError{Line: lineNo, Field: field, Reason: "field too short"}
		}
		v, err := strconv.ParseFloat(field[2:], 64)
		if err != nil {
			return "", Rect{}, &ParseError{Line: lineNo, Field: field, Reason: "invalid numeric value", Err: err}
		}
		values[i] = v
	}

	return code, Rect{X: values[0], Y: values[1], W: values[2], H: values[3]}, nil
}

// Write serializes the registry to the given path, creating or truncating the
// file. Tiles are written in lexicographic identifier order, one line per
// tile, and each line is flushed independently. The file is closed on all
// exit paths.
//
// Float values are rendered in their shortest round-trip representation, so
// Read ∘ Write ∘ Read is bit-for-bit stable.
func (m *Registry) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create tile map: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, code := range m.TileNames() {
		rect := m.tiles[code]
		_, err := fmt.Fprintf(w, "%s x=%s,y=%s,w=%s,h=%s\n", code,
			formatFloat(rect.X), formatFloat(rect.Y), formatFloat(rect.W), formatFloat(rect.H))
		if err == nil {
			err = w.Flush()
		}
		if err != nil {
			f.Close()
			return fmt.Errorf("write tile map: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close tile map: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
