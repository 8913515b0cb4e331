// SPDX-License-Identifier: MIT

package metro

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTo serializes the network in the format Load reads. The header
// carries the actual counts, so loading the output and calling Counts
// returns the same numbers as Counts on n.
func (n *Network) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	stations, connections := n.Counts()
	fmt.Fprintf(bw, "%d %d\n", stations, connections)

	for _, h := range n.g.Vertices() {
		v, err := n.g.Vertex(h)
		if err != nil {
			return cw.n, fmt.Errorf("metro: write: %w", err)
		}
		fmt.Fprintf(bw, "%04d %s\n", v.Key, v.Name)
	}
	bw.WriteString("$\n")

	for _, h := range n.g.Edges() {
		e, err := n.g.Edge(h)
		if err != nil {
			return cw.n, fmt.Errorf("metro: write: %w", err)
		}
		o, err := n.g.Vertex(e.Origin)
		if err != nil {
			return cw.n, fmt.Errorf("metro: write: %w", err)
		}
		d, err := n.g.Vertex(e.Dest)
		if err != nil {
			return cw.n, fmt.Errorf("metro: write: %w", err)
		}
		fmt.Fprintf(bw, "%d %d %d\n", o.Key, d.Key, e.Weight)
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("metro: write: %w", err)
	}

	return cw.n, nil
}

// countingWriter records how many bytes reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	k, err := c.w.Write(p)
	c.n += int64(k)

	return k, err
}
