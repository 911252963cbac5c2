// internal/cli/ledgerio.go
package cli

import (
	"github.com/spf13/cobra"

	"phichain-core/ledger"
	"phichain/internal/cmdutil"
	"phichain/internal/pretty"
	"phichain/internal/snapshot"
	"phichain/internal/writers"
)

// openLedger loads the snapshot named by the configuration, or starts a
// fresh ledger when none exists yet.
func (c *cli) openLedger(cmd *cobra.Command) (*ledger.TemporalLedger, error) {
	l, err := snapshot.LoadOrNew(c.cfg.SnapshotPath, c.cfg.Precision)
	if err != nil {
		return nil, err
	}
	if l.Engine().Precision() != c.cfg.Precision {
		cmdutil.Warnf(cmd.ErrOrStderr(), c.cfg.Quiet,
			"snapshot pins precision %d; ignoring configured %d",
			l.Engine().Precision(), c.cfg.Precision)
	}
	return l, nil
}

func (c *cli) saveLedger(l *ledger.TemporalLedger) error {
	return snapshot.Save(c.cfg.SnapshotPath, l)
}

func (c *cli) prettyOptions() pretty.Options {
	return pretty.Options{NoColor: c.cfg.NoColor}
}

// writeRecords renders records in the configured format.
func (c *cli) writeRecords(cmd *cobra.Command, list []ledger.Record) error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	in, done := writers.StartRecordWriter(cmd.OutOrStdout(), c.cfg.Output, c.prettyOptions(), 64)
	for _, r := range list {
		in <- r
	}
	close(in)
	return <-done
}
