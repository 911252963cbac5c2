// internal/cli/export.go
package cli

import (
	"github.com/spf13/cobra"

	"phichain-core/ledger"
)

func (c *cli) newExportCmd() *cobra.Command {
	var dirName string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump chain records in the configured format",
		Long: "Export writes the requested chain(s) to stdout. The jsonl format\n" +
			"streams one v1 record per line and is the intended feed for\n" +
			"downstream tooling.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := c.openLedger(cmd)
			if err != nil {
				return err
			}
			fwd, bwd := l.Chains()

			var list []ledger.Record
			switch dirName {
			case "both":
				list = append(fwd, bwd...)
			default:
				dir, err := ledger.ParseDirection(dirName)
				if err != nil {
					return usageError{err}
				}
				if dir == ledger.Forward {
					list = fwd
				} else {
					list = bwd
				}
			}
			return c.writeRecords(cmd, list)
		},
	}
	cmd.Flags().StringVarP(&dirName, "direction", "d", "both", "chain to export: forward|backward|both")
	return cmd
}
