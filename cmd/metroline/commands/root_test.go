// SPDX-License-Identifier: MIT

package commands_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroline/cmd/metroline/commands"
	"github.com/katalvlaran/metroline/metro"
)

var network = filepath.Join("testdata", "two_lines.txt")

// run executes a fresh command tree with HOME isolated from the user's config.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := commands.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestCLI_Golden(t *testing.T) {
	g := goldie.New(t)

	cases := []struct {
		golden string
		args   []string
	}{
		{"line_1", []string{"1"}},
		{"route_1_7", []string{"1", "7"}},
		{"route_1_7_json", []string{"--format", "json", "1", "7"}},
		{"closure_1_9_6", []string{"1", "9", "6"}},
		{"closure_4_9_1", []string{"4", "9", "1"}},
		{"stats", []string{"stats"}},
		{"export", []string{"export"}},
		{"export_close_1", []string{"export", "--close", "1"}},
	}

	for _, tc := range cases {
		t.Run(tc.golden, func(t *testing.T) {
			stdout, _, err := run(t, append([]string{"--network", network}, tc.args...)...)
			require.NoError(t, err)
			g.Assert(t, tc.golden, []byte(stdout))
		})
	}
}

func TestCLI_NetworkFromEnv(t *testing.T) {
	t.Setenv("METROLINE_NETWORK", network)

	stdout, _, err := run(t, "4")
	require.NoError(t, err)
	assert.Equal(t, "Line: 4 5 6 7 \n", stdout)
}

func TestCLI_PenaltyFlag(t *testing.T) {
	stdout, _, err := run(t, "--network", network, "--penalty", "0", "1", "7")
	require.NoError(t, err)
	assert.Equal(t, "Time = 105\nPath : 1 2 5 6 7 \n", stdout)
}

func TestCLI_ClosureLogsAtInfo(t *testing.T) {
	_, stderr, err := run(t, "--network", network, "1", "9", "6")
	require.NoError(t, err)
	assert.Contains(t, stderr, "line closed")
	assert.Contains(t, stderr, "removed=4")
}

func TestCLI_Errors(t *testing.T) {
	t.Run("non-integer station", func(t *testing.T) {
		_, _, err := run(t, "--network", network, "abc")
		assert.ErrorContains(t, err, `station "abc" is not an integer`)
	})

	t.Run("unknown station", func(t *testing.T) {
		_, _, err := run(t, "--network", network, "42")
		assert.ErrorIs(t, err, metro.ErrStationNotFound)
	})

	t.Run("endpoint on closed line", func(t *testing.T) {
		_, _, err := run(t, "--network", network, "1", "7", "5")
		assert.ErrorIs(t, err, metro.ErrStationNotFound)
	})

	t.Run("missing network file", func(t *testing.T) {
		_, _, err := run(t, "--network", filepath.Join("testdata", "absent.txt"), "1")
		assert.Error(t, err)
	})

	t.Run("too many args", func(t *testing.T) {
		_, _, err := run(t, "--network", network, "1", "2", "3", "4")
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, _, err := run(t, "--network", network, "--format", "xml", "1")
		assert.Error(t, err)
	})
}
