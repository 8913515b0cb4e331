// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of the metroline CLI.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/metroline/dijkstra"
	"github.com/katalvlaran/metroline/internal/config"
	"github.com/katalvlaran/metroline/internal/render"
	"github.com/katalvlaran/metroline/metro"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=".
var Version = "dev"

// Execute runs the CLI against os.Args and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}

	return 0
}

// app carries what PersistentPreRunE resolves for every command.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg    config.Config
	logger *slog.Logger
	out    render.Renderer
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "metroline [flags] <station> [<to> [<closed>]]",
		Short: "Query a transit network",
		Long: `metroline answers three questions about a transit network file:

  metroline <station>                  stations on the line of <station>
  metroline <from> <to>                fastest route and its time
  metroline <from> <to> <closed>       fastest route once the line of <closed> is shut`,
		Version:           Version,
		Args:              cobra.RangeArgs(1, 3),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.query,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default $HOME/"+config.FileName+")")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newStatsCmd(a), newExportCmd(a))

	return root
}

// setup resolves configuration, logging and the renderer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out, err := render.New(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.out = cfg, logger, out
	a.logger.Debug("configuration resolved",
		"network", cfg.Network,
		"penalty", cfg.Penalty,
		"format", cfg.Format,
		"config_file", a.v.ConfigFileUsed(),
	)

	return nil
}

func (a *app) load() (*metro.Network, error) {
	return metro.LoadFile(a.cfg.Network,
		metro.WithLogger(a.logger),
		metro.WithTransferPenalty(a.cfg.Penalty),
	)
}

func (a *app) query(_ *cobra.Command, args []string) error {
	keys := make([]int, len(args))
	for i, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("station %q is not an integer", arg)
		}
		keys[i] = k
	}

	n, err := a.load()
	if err != nil {
		return err
	}

	switch len(keys) {
	case 1:
		line, err := n.Line(keys[0])
		if err != nil {
			return err
		}

		return a.out.Line(line)

	case 2:
		route, err := n.ShortestPath(keys[0], keys[1])

		return a.route(keys[0], keys[1], route, err)

	default:
		res, err := n.SimulateClosure(keys[0], keys[1], keys[2])
		if res != nil {
			a.logger.Info("line closed", "station", keys[2], "removed", len(res.Closed))
			return a.route(keys[0], keys[1], res.Route, err)
		}

		return err
	}
}

// route renders a route, or the no-path answer when the destination is
// unreachable. Other errors are returned.
func (a *app) route(from, to int, r *metro.Route, err error) error {
	if errors.Is(err, dijkstra.ErrNoPath) {
		return a.out.NoPath(from, to)
	}
	if err != nil {
		return err
	}

	return a.out.Route(r)
}
