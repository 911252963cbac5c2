// internal/cli/append.go
package cli

import (
	"github.com/spf13/cobra"

	"phichain-core/ledger"
)

func (c *cli) newAppendCmd() *cobra.Command {
	var dirName string

	cmd := &cobra.Command{
		Use:   "append PAYLOAD",
		Short: "Append a record, subject to the symmetry gate",
		Long: "Append adds one record to the chain named by --direction. When the\n" +
			"opposite chain is non-empty, the record is admitted only if the ratio\n" +
			"of its pair of digests lies within 0.1% of the golden ratio; a refusal\n" +
			"exits with code 4 and leaves the ledger untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ledger.ParseDirection(dirName)
			if err != nil {
				return usageError{err}
			}

			l, err := c.openLedger(cmd)
			if err != nil {
				return err
			}
			rec, err := l.Append([]byte(args[0]), dir)
			if err != nil {
				return err
			}
			if err := c.saveLedger(l); err != nil {
				return err
			}
			return c.writeRecords(cmd, []ledger.Record{rec})
		},
	}
	cmd.Flags().StringVarP(&dirName, "direction", "d", "forward", "chain to append to: forward|backward")
	return cmd
}
