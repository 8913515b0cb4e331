// SPDX-License-Identifier: MIT

// Package render prints query results in the formats the CLI offers.
package render

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/metroline/metro"
)

// Output formats accepted by New.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatPretty = "pretty"
)

// ErrUnknownFormat indicates a format name New does not know.
var ErrUnknownFormat = errors.New("render: unknown format")

// Formats lists the accepted format names.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatPretty}
}

// Valid reports whether format is one of Formats.
func Valid(format string) bool {
	return slices.Contains(Formats(), format)
}

// Stats summarizes a loaded network against its header.
type Stats struct {
	Stations            int `json:"stations" yaml:"stations"`
	Connections         int `json:"connections" yaml:"connections"`
	DeclaredStations    int `json:"declared_stations" yaml:"declared_stations"`
	DeclaredConnections int `json:"declared_connections" yaml:"declared_connections"`
	LineChanges         int `json:"line_changes" yaml:"line_changes"`
}

// Renderer writes one query result.
type Renderer interface {
	// Line writes the stations of one line, start first.
	Line(stations []metro.Station) error

	// Route writes a shortest path and its time.
	Route(r *metro.Route) error

	// NoPath writes the answer for an unreachable destination.
	NoPath(from, to int) error

	// Stats writes network counts.
	Stats(s Stats) error
}

// New returns the Renderer for format writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case FormatText:
		return &textRenderer{w: w}, nil
	case FormatJSON:
		return &jsonRenderer{w: w}, nil
	case FormatYAML:
		return &yamlRenderer{w: w}, nil
	case FormatPretty:
		return newPrettyRenderer(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Documents shared by the structured encoders.
type (
	lineDoc struct {
		Line []metro.Station `json:"line" yaml:"line"`
	}

	noPathDoc struct {
		From      int  `json:"from" yaml:"from"`
		To        int  `json:"to" yaml:"to"`
		Reachable bool `json:"reachable" yaml:"reachable"`
	}
)
