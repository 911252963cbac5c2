// internal/cli/stats.go
package cli

import (
	"github.com/spf13/cobra"

	"phichain/internal/jsonutil"
	"phichain/internal/output"
	"phichain/internal/pretty"
)

func (c *cli) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show chain counts, symmetry score, and temporal balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.validateOutput(); err != nil {
				return err
			}
			l, err := c.openLedger(cmd)
			if err != nil {
				return err
			}
			s := l.Stats()

			w := cmd.OutOrStdout()
			switch c.cfg.Output {
			case "json":
				return output.WriteStatsJSON(w, s)
			case "jsonl":
				return jsonutil.EncodeLine(w, output.ToAPIStats(s))
			case "pretty":
				return pretty.WriteStats(w, s, c.prettyOptions())
			case "text":
				return output.WriteStatsText(w, s)
			default:
				return c.validateOutput()
			}
		},
	}
}
