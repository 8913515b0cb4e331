// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for metroline/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/metroline/core"
)

// Common station keys used across core tests.
const (
	KeyA = 1
	KeyB = 2
	KeyC = 3
	KeyD = 4
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight5 = 5
	Weight7 = 7
)

// Fixture bundles a graph with the handles it issued.
type Fixture struct {
	G          *core.Graph
	A, B, C, D core.VertexHandle
}

// NewDiamond RETURNS a graph A→B, A→C, B→D, C→D plus the line break D→A.
//
// Behavior highlights:
//   - Every vertex has in- and out-edges, so removals exercise both maps.
func NewDiamond(t *testing.T) Fixture {
	t.Helper()

	g := core.NewGraph()
	f := Fixture{
		G: g,
		A: g.InsertVertex(KeyA, "Alpha"),
		B: g.InsertVertex(KeyB, "Bravo"),
		C: g.InsertVertex(KeyC, "Charlie"),
		D: g.InsertVertex(KeyD, "Delta Square"),
	}
	MustInsertEdge(t, g, f.A, f.B, Weight1)
	MustInsertEdge(t, g, f.A, f.C, Weight5)
	MustInsertEdge(t, g, f.B, f.D, Weight2)
	MustInsertEdge(t, g, f.C, f.D, Weight7)
	MustInsertEdge(t, g, f.D, f.A, core.LineBreak)

	return f
}

// MustInsertEdge INSERTS an edge and fails the test on error.
func MustInsertEdge(t *testing.T, g *core.Graph, o, d core.VertexHandle, w int64) core.EdgeHandle {
	t.Helper()

	e, err := g.InsertEdge(o, d, w)
	MustNoError(t, err, "InsertEdge")

	return e
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
//
// Notes:
//   - Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualHandles FAILS the test unless got and want match element-wise.
func MustEqualHandles[H comparable](t *testing.T, got, want []H, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: len=%d; want %d", op, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: [%d] mismatch: got %v; want %v", op, i, got[i], want[i])
		}
	}
}
