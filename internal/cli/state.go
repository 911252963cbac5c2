// internal/cli/state.go
package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"phichain-core/ledger"
	"phichain/internal/jsonutil"
	"phichain/internal/output"
	"phichain/internal/pretty"
)

func (c *cli) newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state [POSITION]",
		Short: "Show both chains at one position",
		Long: "State resolves POSITION against the forward and backward chains and\n" +
			"reports whether the resolved pair is symmetric. Negative positions\n" +
			"count from the most recent record; the default is -1.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.validateOutput(); err != nil {
				return err
			}
			position := -1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return usageError{err}
				}
				position = n
			}

			l, err := c.openLedger(cmd)
			if err != nil {
				return err
			}
			return c.writeState(cmd, l.TemporalState(position))
		},
	}
}

func (c *cli) writeState(cmd *cobra.Command, s ledger.TemporalState) error {
	w := cmd.OutOrStdout()
	switch c.cfg.Output {
	case "json":
		return output.WriteStateJSON(w, s)
	case "jsonl":
		return jsonutil.EncodeLine(w, output.ToAPIState(s))
	case "pretty":
		return pretty.WriteState(w, s, c.prettyOptions())
	case "text":
		return output.WriteStateText(w, s)
	default:
		return c.validateOutput()
	}
}
