// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"phichain-core/ledger"
)

// WriteRecordText prints one tab-separated line per record.
func WriteRecordText(w io.Writer, list []ledger.Record) error {
	for _, r := range list {
		_, err := fmt.Fprintf(w,
			"%s\t%s\t%s\t%s\t%s\n",
			r.Direction, r.Primary.Short(), r.Mirror.Short(),
			r.Predecessor.Short(), string(r.Payload),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteStateText prints both sides of a temporal-state query.
func WriteStateText(w io.Writer, s ledger.TemporalState) error {
	side := func(label string, r *ledger.Record) error {
		if r == nil {
			_, err := fmt.Fprintf(w, "%s\t%d\t-\n", label, s.Position)
			return err
		}
		_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			label, s.Position, r.Primary.Short(), string(r.Payload))
		return err
	}
	if err := side("forward", s.Forward); err != nil {
		return err
	}
	if err := side("backward", s.Backward); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "symmetric\t%v\n", s.Symmetric)
	return err
}

// WriteStatsText prints aggregate statistics as key/value lines.
func WriteStatsText(w io.Writer, s ledger.Stats) error {
	_, err := fmt.Fprintf(w,
		"forward_count\t%d\nbackward_count\t%d\ntotal_count\t%d\nsymmetry_score\t%.6f\ntemporal_balance\t%s\n",
		s.ForwardCount, s.BackwardCount, s.TotalCount,
		s.SymmetryScore, FormatBalance(s.TemporalBalance),
	)
	return err
}
