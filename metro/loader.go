// SPDX-License-Identifier: MIT

package metro

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/metroline/core"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...Option) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("metro: open network file: %w", err)
	}
	defer f.Close()

	n, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Load reads a network in the transit text format:
//
//	<stations> <connections>
//	<key> <name ...>
//	...
//	$
//	<origin> <dest> <weight>
//	...
//
// Blank lines are ignored. For repeated station keys the first line wins;
// a repeated origin→dest pair is skipped. Tokens after the weight are
// ignored. The header counts are informational: a mismatch with the
// content is logged at WARN.
func Load(r io.Reader, opts ...Option) (*Network, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{
		sc: bufio.NewScanner(r),
		n: &Network{
			g:       core.NewGraph(),
			index:   make(map[int]core.VertexHandle),
			logger:  cfg.Logger,
			penalty: cfg.TransferPenalty,
		},
	}
	p.sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if err := p.header(); err != nil {
		return nil, err
	}
	if err := p.stations(); err != nil {
		return nil, err
	}
	if err := p.connections(); err != nil {
		return nil, err
	}

	p.report()

	return p.n, nil
}

// parser walks the three sections of the input in order.
type parser struct {
	sc     *bufio.Scanner
	n      *Network
	lineNo int

	dupStations    int
	dupConnections int
}

// next returns the next non-blank line, trimmed. ok is false at EOF.
func (p *parser) next() (line string, ok bool, err error) {
	for p.sc.Scan() {
		p.lineNo++
		line = strings.TrimSpace(p.sc.Text())
		if line != "" {
			return line, true, nil
		}
	}
	if err := p.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", false, p.malformed("line exceeds %d bytes", maxLineSize)
		}

		return "", false, fmt.Errorf("metro: read: %w", err)
	}

	return "", false, nil
}

func (p *parser) malformed(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, p.lineNo, fmt.Sprintf(format, args...))
}

func (p *parser) header() error {
	line, ok, err := p.next()
	if err != nil {
		return err
	}
	if !ok {
		return p.malformed("missing header")
	}

	f := strings.Fields(line)
	if len(f) < 2 {
		return p.malformed("header needs station and connection counts, got %q", line)
	}
	if p.n.declaredStations, err = strconv.Atoi(f[0]); err != nil {
		return p.malformed("station count %q is not an integer", f[0])
	}
	if p.n.declaredConnections, err = strconv.Atoi(f[1]); err != nil {
		return p.malformed("connection count %q is not an integer", f[1])
	}

	return nil
}

func (p *parser) stations() error {
	for {
		line, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok {
			return p.malformed("missing $ terminator after stations")
		}
		if strings.HasPrefix(line, "$") {
			return nil
		}

		f := strings.Fields(line)
		key, err := strconv.Atoi(f[0])
		if err != nil {
			return p.malformed("station key %q is not an integer", f[0])
		}
		if len(f) < 2 {
			return p.malformed("station %d has no name", key)
		}
		if _, dup := p.n.index[key]; dup {
			p.dupStations++
			continue
		}
		p.n.index[key] = p.n.g.InsertVertex(key, strings.Join(f[1:], " "))
	}
}

func (p *parser) connections() error {
	for {
		line, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		f := strings.Fields(line)
		if len(f) < 3 {
			return p.malformed("connection needs origin, dest and weight, got %q", line)
		}
		var nums [3]int64
		for i := range nums {
			if nums[i], err = strconv.ParseInt(f[i], 10, 64); err != nil {
				return p.malformed("token %q is not an integer", f[i])
			}
		}

		origin, ok := p.n.index[int(nums[0])]
		if !ok {
			return p.malformed("unknown origin station %d", nums[0])
		}
		dest, ok := p.n.index[int(nums[1])]
		if !ok {
			return p.malformed("unknown destination station %d", nums[1])
		}

		if _, exists, err := p.n.g.GetEdge(origin, dest); err != nil {
			return err
		} else if exists {
			p.dupConnections++
			continue
		}
		if _, err := p.n.g.InsertEdge(origin, dest, nums[2]); err != nil {
			return fmt.Errorf("metro: line %d: %w", p.lineNo, err)
		}
	}
}

// report logs the load summary and any header mismatch.
func (p *parser) report() {
	stations, connections := p.n.Counts()
	log := p.n.logger

	log.Debug("network loaded",
		"stations", stations,
		"connections", connections,
		"duplicate_stations", p.dupStations,
		"duplicate_connections", p.dupConnections,
		"lines_read", p.lineNo,
	)

	if stations != p.n.declaredStations || connections != p.n.declaredConnections {
		log.Warn("header counts differ from content",
			"declared_stations", p.n.declaredStations,
			"stations", stations,
			"declared_connections", p.n.declaredConnections,
			"connections", connections,
		)
	}
}
