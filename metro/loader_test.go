// SPDX-License-Identifier: MIT

package metro_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroline/metro"
)

func loadTestdata(t *testing.T, name string, opts ...metro.Option) *metro.Network {
	t.Helper()

	n, err := metro.LoadFile(filepath.Join("testdata", name), opts...)
	require.NoError(t, err)

	return n
}

func TestLoad_TwoLines(t *testing.T) {
	n := loadTestdata(t, "two_lines.txt")

	stations, connections := n.Counts()
	assert.Equal(t, 9, stations)
	assert.Equal(t, 16, connections)

	s, err := n.Station(1)
	require.NoError(t, err)
	assert.Equal(t, metro.Station{Key: 1, Name: "Porte Nord"}, s)
}

func TestLoad_LenientInput(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := loadTestdata(t, "messy.txt", metro.WithLogger(logger))

	stations, connections := n.Counts()
	assert.Equal(t, 3, stations)
	assert.Equal(t, 3, connections)

	declaredStations, declaredConnections := n.Declared()
	assert.Equal(t, 5, declaredStations)
	assert.Equal(t, 9, declaredConnections)

	first, err := n.Station(1)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", first.Name, "first occurrence of a key wins")

	spaced, err := n.Station(2)
	require.NoError(t, err)
	assert.Equal(t, "Bravo Square", spaced.Name)

	r, err := n.ShortestPath(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), r.Time, "duplicate connection is skipped, first weight kept")

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "header counts differ from content")
	assert.Contains(t, logs.String(), "duplicate_stations=1")
	assert.Contains(t, logs.String(), "duplicate_connections=1")
}

func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  string
	}{
		{"empty", "", "line 0"},
		{"header one count", "3\n", "line 1"},
		{"header not integer", "a b\n", "line 1"},
		{"station key not integer", "1 0\nx Name\n$\n", "line 2"},
		{"station without name", "1 0\n0001\n$\n", "line 2"},
		{"missing terminator", "1 0\n0001 Alpha\n", "line 2"},
		{"short connection", "2 1\n1 A\n2 B\n$\n1 2\n", "line 5"},
		{"weight not integer", "2 1\n1 A\n2 B\n$\n1 2 fast\n", "line 5"},
		{"unknown origin", "2 1\n1 A\n2 B\n$\n3 2 4\n", "line 5"},
		{"unknown dest", "2 1\n1 A\n2 B\n$\n\n1 7 4\n", "line 6"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := metro.Load(strings.NewReader(tc.input))
			require.ErrorIs(t, err, metro.ErrMalformedInput)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestLoad_EmptyConnectionSection(t *testing.T) {
	n, err := metro.Load(strings.NewReader("1 0\n0001 Alone\n$\n"))
	require.NoError(t, err)

	stations, connections := n.Counts()
	assert.Equal(t, 1, stations)
	assert.Zero(t, connections)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := metro.LoadFile(filepath.Join("testdata", "does-not-exist.txt"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, metro.ErrMalformedInput)
}
