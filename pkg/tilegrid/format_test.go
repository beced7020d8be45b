package tilegrid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const scenarioMap = "31TGM x=2.0,y=40.0,w=1.0,h=1.0\n32TGM x=3.0,y=40.0,w=1.0,h=1.0\n"

func TestReadScenario(t *testing.T) {
	registry := NewSentinel2Registry()
	require.NoError(t, registry.Read(strings.NewReader(scenarioMap)))

	require.Equal(t, 2, registry.Count())
	require.Equal(t, []string{"31TGM", "32TGM"}, registry.TileNames())

	rect, ok := registry.TileRect("31TGM")
	require.True(t, ok)
	require.Equal(t, Rect{X: 2.0, Y: 40.0, W: 1.0, H: 1.0}, rect)
}

func TestReadDuplicateLastWins(t *testing.T) {
	input := "31TGM x=2.0,y=40.0,w=1.0,h=1.0\n31TGM x=9.0,y=50.0,w=2.0,h=2.0\n"

	registry := NewSentinel2Registry()
	require.NoError(t, registry.Read(strings.NewReader(input)))

	require.Equal(t, 1, registry.Count())
	rect, ok := registry.TileRect("31TGM")
	require.True(t, ok)
	require.Equal(t, Rect{X: 9.0, Y: 50.0, W: 2.0, H: 2.0}, rect)
}

// The identifier is stripped by splitting on the first space, not by global
// substring replacement. An identifier whose text recurs inside the numeric
// fields must therefore parse cleanly.
func TestReadIdentifierEmbeddedInValues(t *testing.T) {
	input := "40 x=2.40,y=40.0,w=1.0,h=1.0\n"

	registry := NewSentinel2Registry()
	require.NoError(t, registry.Read(strings.NewReader(input)))

	rect, ok := registry.TileRect("40")
	require.True(t, ok)
	require.Equal(t, Rect{X: 2.40, Y: 40.0, W: 1.0, H: 1.0}, rect)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{
			name:     "missing space",
			input:    "31TGM\n",
			wantLine: 1,
		},
		{
			name:     "missing h field",
			input:    "31TGM x=2.0,y=40.0,w=1.0\n",
			wantLine: 1,
		},
		{
			name:     "too many fields",
			input:    "31TGM x=2.0,y=40.0,w=1.0,h=1.0,z=0.0\n",
			wantLine: 1,
		},
		{
			name:     "unparsable number",
			input:    "31TGM x=2.0,y=forty,w=1.0,h=1.0\n",
			wantLine: 1,
		},
		{
			name:     "error on second line",
			input:    "31TGM x=2.0,y=40.0,w=1.0,h=1.0\n32TGM x=3.0\n",
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewSentinel2Registry()
			require.NoError(t, registry.Read(strings.NewReader(scenarioMap)))

			err := registry.Read(strings.NewReader(tt.input))

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tt.wantLine, parseErr.Line)

			// Abort-on-first-error rolls the registry back to its pre-call
			// contents, even when earlier lines of the failing stream were valid.
			require.Equal(t, 2, registry.Count())
			require.Equal(t, []string{"31TGM", "32TGM"}, registry.TileNames())
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk unplugged")
}

func TestReadStreamError(t *testing.T) {
	registry := NewSentinel2Registry()

	err := registry.Read(failingReader{})
	require.Error(t, err)
	require.ErrorContains(t, err, "read tile map")
	require.Equal(t, 0, registry.Count())
}

func TestReadFileMissing(t *testing.T) {
	registry := NewSentinel2Registry()

	err := registry.ReadFile(filepath.Join(t.TempDir(), "missing.map"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteReadRoundTrip(t *testing.T) {
	registry := NewSentinel2Registry()
	require.NoError(t, registry.Read(strings.NewReader(scenarioMap)))

	path := filepath.Join(t.TempDir(), "tiles.map")
	require.NoError(t, registry.Write(path))

	reread := NewSentinel2Registry()
	require.NoError(t, reread.ReadFile(path))

	require.Equal(t, registry.Count(), reread.Count())
	for _, code := range registry.TileNames() {
		want, _ := registry.TileRect(code)
		got, ok := reread.TileRect(code)
		require.True(t, ok, "tile %s missing after round trip", code)
		require.Equal(t, want, got, "tile %s changed after round trip", code)
	}
}

func TestWriteSortedOrder(t *testing.T) {
	// Insertion order in the source must not leak into the output.
	input := "32TGM x=3.0,y=40.0,w=1.0,h=1.0\n31TGM x=2.0,y=40.0,w=1.0,h=1.0\n"

	registry := NewSentinel2Registry()
	require.NoError(t, registry.Read(strings.NewReader(input)))

	path := filepath.Join(t.TempDir(), "tiles.map")
	require.NoError(t, registry.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "31TGM x=2,y=40,w=1,h=1\n32TGM x=3,y=40,w=1,h=1\n", string(data))
}

func TestWriteOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.map")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	registry := NewSentinel2Registry()
	require.NoError(t, registry.Read(strings.NewReader(scenarioMap)))
	require.NoError(t, registry.Write(path))

	reread := NewSentinel2Registry()
	require.NoError(t, reread.ReadFile(path))
	require.Equal(t, 2, reread.Count())
}

// Any registry is stable through write followed by read: the serialization
// uses shortest round-trip float formatting, so values survive bit-for-bit.
func TestPropertyRoundTripStable(t *testing.T) {
	dir := t.TempDir()

	rapid.Check(t, func(rt *rapid.T) {
		codes := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[0-9]{1,2}[A-Z]{3}`), 1, 30, rapid.ID[string],
		).Draw(rt, "codes")

		var lines strings.Builder
		want := make(map[string]Rect, len(codes))
		for i, code := range codes {
			rect := Rect{
				X: rapid.Float64Range(-180, 180).Draw(rt, fmt.Sprintf("x%d", i)),
				Y: rapid.Float64Range(-90, 90).Draw(rt, fmt.Sprintf("y%d", i)),
				W: rapid.Float64Range(-10, 10).Draw(rt, fmt.Sprintf("w%d", i)),
				H: rapid.Float64Range(-10, 10).Draw(rt, fmt.Sprintf("h%d", i)),
			}
			want[code] = rect
			fmt.Fprintf(&lines, "%s x=%s,y=%s,w=%s,h=%s\n", code,
				formatFloat(rect.X), formatFloat(rect.Y), formatFloat(rect.W), formatFloat(rect.H))
		}

		registry := NewSentinel2Registry()
		require.NoError(rt, registry.Read(strings.NewReader(lines.String())))

		path := filepath.Join(dir, "roundtrip.map")
		require.NoError(rt, registry.Write(path))

		reread := NewSentinel2Registry()
		require.NoError(rt, reread.ReadFile(path))

		require.Equal(rt, len(want), reread.Count())
		for code, rect := range want {
			got, ok := reread.TileRect(code)
			require.True(rt, ok)
			require.Equal(rt, rect, got)
		}
	})
}
