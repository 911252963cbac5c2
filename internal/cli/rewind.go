// internal/cli/rewind.go
package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (c *cli) newRewindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewind [STEPS]",
		Short: "Remove the most recent records from both chains",
		Long: "Rewind pops the newest record from the forward chain and then from\n" +
			"the backward chain, STEPS times (default 1), and prints what was\n" +
			"removed in removal order. Chains drain independently; a step against\n" +
			"two empty chains removes nothing.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return usageError{err}
				}
				steps = n
			}

			l, err := c.openLedger(cmd)
			if err != nil {
				return err
			}
			removed := l.Rewind(steps)
			if len(removed) > 0 {
				if err := c.saveLedger(l); err != nil {
					return err
				}
			}
			return c.writeRecords(cmd, removed)
		},
	}
}
