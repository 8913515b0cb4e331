// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/metroline/metro"
)

// textRenderer reproduces the classic console output: keys separated and
// followed by a single space.
type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) Line(stations []metro.Station) error {
	bw := bufio.NewWriter(r.w)
	bw.WriteString("Line: ")
	writeKeys(bw, stations)
	bw.WriteString("\n")

	return bw.Flush()
}

func (r *textRenderer) Route(route *metro.Route) error {
	bw := bufio.NewWriter(r.w)
	fmt.Fprintf(bw, "Time = %d\n", route.Time)
	bw.WriteString("Path : ")
	writeKeys(bw, route.Stations)
	bw.WriteString("\n")

	return bw.Flush()
}

func (r *textRenderer) NoPath(from, to int) error {
	_, err := fmt.Fprintf(r.w, "No path from %d to %d\n", from, to)

	return err
}

func (r *textRenderer) Stats(s Stats) error {
	_, err := fmt.Fprintf(r.w,
		"stations: %d (declared %d)\nconnections: %d (declared %d)\nline changes: %d\n",
		s.Stations, s.DeclaredStations, s.Connections, s.DeclaredConnections, s.LineChanges)

	return err
}

func writeKeys(bw *bufio.Writer, stations []metro.Station) {
	for _, s := range stations {
		fmt.Fprintf(bw, "%d ", s.Key)
	}
}
