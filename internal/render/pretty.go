// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/metroline/metro"
)

var (
	colorAccent = lipgloss.Color("#874BFD")
	colorKey    = lipgloss.Color("#00FF99")
	colorSub    = lipgloss.Color("#64748B")
	colorWarn   = lipgloss.Color("#F59E0B")
)

// prettyRenderer styles output for a terminal. Styles come from a renderer
// bound to w, so colors are dropped when w is not a TTY.
type prettyRenderer struct {
	w io.Writer

	title lipgloss.Style
	key   lipgloss.Style
	name  lipgloss.Style
	label lipgloss.Style
	warn  lipgloss.Style
}

func newPrettyRenderer(w io.Writer) *prettyRenderer {
	lr := lipgloss.NewRenderer(w)

	return &prettyRenderer{
		w: w,
		title: lr.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			MarginBottom(1),
		key: lr.NewStyle().
			Foreground(colorKey).
			Width(6).
			Align(lipgloss.Right).
			MarginRight(2),
		name:  lr.NewStyle(),
		label: lr.NewStyle().Foreground(colorSub).Width(14),
		warn:  lr.NewStyle().Foreground(colorWarn).Bold(true),
	}
}

func (r *prettyRenderer) stationRows(stations []metro.Station) []string {
	rows := make([]string, len(stations))
	for i, s := range stations {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			r.key.Render(strconv.Itoa(s.Key)),
			r.name.Render(s.Name),
		)
	}

	return rows
}

func (r *prettyRenderer) print(blocks ...string) error {
	_, err := fmt.Fprintln(r.w, lipgloss.JoinVertical(lipgloss.Left, blocks...))

	return err
}

func (r *prettyRenderer) Line(stations []metro.Station) error {
	head := r.title.Render(fmt.Sprintf("Line · %d stations", len(stations)))

	return r.print(append([]string{head}, r.stationRows(stations)...)...)
}

func (r *prettyRenderer) Route(route *metro.Route) error {
	head := r.title.Render(fmt.Sprintf("Route · %d min · %d stops", route.Time, len(route.Stations)))

	return r.print(append([]string{head}, r.stationRows(route.Stations)...)...)
}

func (r *prettyRenderer) NoPath(from, to int) error {
	return r.print(r.warn.Render(fmt.Sprintf("No path from %d to %d", from, to)))
}

func (r *prettyRenderer) Stats(s Stats) error {
	row := func(label string, actual, declared int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			r.label.Render(label),
			r.name.Render(fmt.Sprintf("%d (declared %d)", actual, declared)),
		)
	}

	return r.print(
		r.title.Render("Network"),
		row("stations", s.Stations, s.DeclaredStations),
		row("connections", s.Connections, s.DeclaredConnections),
		lipgloss.JoinHorizontal(lipgloss.Top, r.label.Render("line changes"), r.name.Render(strconv.Itoa(s.LineChanges))),
	)
}
