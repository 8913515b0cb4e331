// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var closeKey int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the network back out in its file format",
		Long: `Re-serialize the loaded network on stdout. The header carries the
actual station and connection counts. With --close the line through the
given station is removed first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("close") {
				closed, err := n.CloseLine(closeKey)
				if err != nil {
					return err
				}
				a.logger.Info("line closed", "station", closeKey, "removed", len(closed))
			}

			_, err = n.WriteTo(cmd.OutOrStdout())

			return err
		},
	}
	cmd.Flags().IntVar(&closeKey, "close", 0, "Close the line through this station before exporting")

	return cmd
}
