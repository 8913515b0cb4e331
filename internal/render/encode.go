// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metroline/metro"
)

type jsonRenderer struct {
	w io.Writer
}

func (r *jsonRenderer) encode(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (r *jsonRenderer) Line(stations []metro.Station) error {
	return r.encode(lineDoc{Line: stations})
}

func (r *jsonRenderer) Route(route *metro.Route) error { return r.encode(route) }

func (r *jsonRenderer) NoPath(from, to int) error {
	return r.encode(noPathDoc{From: from, To: to})
}

func (r *jsonRenderer) Stats(s Stats) error { return r.encode(s) }

type yamlRenderer struct {
	w io.Writer
}

func (r *yamlRenderer) encode(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func (r *yamlRenderer) Line(stations []metro.Station) error {
	return r.encode(lineDoc{Line: stations})
}

func (r *yamlRenderer) Route(route *metro.Route) error { return r.encode(route) }

func (r *yamlRenderer) NoPath(from, to int) error {
	return r.encode(noPathDoc{From: from, To: to})
}

func (r *yamlRenderer) Stats(s Stats) error { return r.encode(s) }
