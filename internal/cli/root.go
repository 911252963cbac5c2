// internal/cli/root.go
// Command tree and exit-code mapping for the phichain binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"phichain-core/ledger"
	"phichain/internal/config"
	"phichain/internal/writers"
)

// Exit codes, stable for scripting.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitUsage    = 2
	ExitRejected = 4 // append refused by the symmetry gate
)

type cli struct {
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "phichain",
		Short: "Dual-directional ledger with golden-ratio symmetry gating",
		Long: "phichain maintains two append-only hash chains that grow in opposite\n" +
			"temporal directions. Cross-chain appends are admitted only when the\n" +
			"ratio of the paired digests stays within 0.1% of the golden ratio.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	d := config.Defaults()
	pf.StringVar(&c.cfgFile, "config", "", "config file (YAML/TOML/JSON)")
	pf.String("snapshot", d.SnapshotPath, "ledger snapshot file")
	pf.StringP("output", "o", d.Output, "output format: text|json|jsonl|pretty")
	pf.Int("precision", d.Precision, "decimal precision for the golden-ratio constant")
	pf.Bool("no-color", false, "disable ANSI colors in pretty output")
	pf.BoolP("quiet", "q", false, "suppress warnings")

	root.AddCommand(
		c.newAppendCmd(),
		c.newStateCmd(),
		c.newRewindCmd(),
		c.newStatsCmd(),
		c.newVerifyCmd(),
		c.newExportCmd(),
		c.newMerkleCmd(),
		c.newGenesisCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the tree and maps errors to exit codes.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(stderr, "phichain:", err)

	var rej *ledger.RejectedSymmetry
	switch {
	case errors.As(err, &rej):
		return ExitRejected
	case isUsageError(err):
		return ExitUsage
	default:
		return ExitError
	}
}

type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func isUsageError(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

func (c *cli) validateOutput() error {
	if !writers.ValidFormat(c.cfg.Output) {
		return usageError{fmt.Errorf("unknown output format %q (want one of %v)", c.cfg.Output, writers.Formats)}
	}
	return nil
}
