// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metroline/internal/render"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Compare the network's content with its header",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			n, err := a.load()
			if err != nil {
				return err
			}

			stations, connections := n.Counts()
			declaredStations, declaredConnections := n.Declared()

			return a.out.Stats(render.Stats{
				Stations:            stations,
				Connections:         connections,
				DeclaredStations:    declaredStations,
				DeclaredConnections: declaredConnections,
				LineChanges:         n.Graph().Stats().LineBreaks,
			})
		},
	}
}
