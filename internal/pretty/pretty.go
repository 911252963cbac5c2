// internal/pretty/pretty.go
// Human-oriented ANSI rendering of ledger records, states, and stats.
package pretty

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"phichain-core/ledger"
	"phichain/internal/output"
)

// Options control the rendering.
type Options struct {
	// NoColor strips ANSI sequences, for dumb terminals and piped output.
	NoColor bool
}

type renderer struct {
	w        io.Writer
	forward  *color.Color
	backward *color.Color
	good     *color.Color
	bad      *color.Color
	dim      *color.Color
}

func newRenderer(w io.Writer, opt Options) *renderer {
	r := &renderer{
		w:        w,
		forward:  color.New(color.FgCyan),
		backward: color.New(color.FgMagenta),
		good:     color.New(color.FgGreen),
		bad:      color.New(color.FgRed),
		dim:      color.New(color.Faint),
	}
	if opt.NoColor {
		for _, c := range []*color.Color{r.forward, r.backward, r.good, r.bad, r.dim} {
			c.DisableColor()
		}
	}
	return r
}

func (r *renderer) directionColor(d ledger.Direction) *color.Color {
	if d == ledger.Backward {
		return r.backward
	}
	return r.forward
}

func (r *renderer) record(rec ledger.Record) {
	c := r.directionColor(rec.Direction)
	fmt.Fprintf(r.w, "%s  %s\n", c.Sprintf("%-8s", rec.Direction), string(rec.Payload))
	fmt.Fprintf(r.w, "  primary  %s\n", rec.Primary)
	fmt.Fprintf(r.w, "  mirror   %s\n", rec.Mirror)
	fmt.Fprintf(r.w, "  prev     %s\n", r.dim.Sprint(rec.Predecessor.Short()))
}

// WriteRecords renders each record as a small block.
func WriteRecords(w io.Writer, list []ledger.Record, opt Options) error {
	r := newRenderer(w, opt)
	for i, rec := range list {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.record(rec)
	}
	return nil
}

// WriteState renders a temporal-state query as a two-row panel.
func WriteState(w io.Writer, s ledger.TemporalState, opt Options) error {
	r := newRenderer(w, opt)

	fmt.Fprintf(w, "position %d\n", s.Position)
	side := func(label string, c *color.Color, rec *ledger.Record) {
		if rec == nil {
			fmt.Fprintf(w, "  %s  %s\n", c.Sprintf("%-8s", label), r.dim.Sprint("(empty)"))
			return
		}
		fmt.Fprintf(w, "  %s  %s  %s\n",
			c.Sprintf("%-8s", label), rec.Primary.Short(), string(rec.Payload))
	}
	side("forward", r.forward, s.Forward)
	side("backward", r.backward, s.Backward)

	verdict := r.bad.Sprint("asymmetric")
	if s.Symmetric {
		verdict = r.good.Sprint("symmetric")
	}
	fmt.Fprintf(w, "  %s\n", verdict)
	return nil
}

// WriteStats renders aggregate statistics with the score and balance
// colored by health.
func WriteStats(w io.Writer, s ledger.Stats, opt Options) error {
	r := newRenderer(w, opt)

	fmt.Fprintf(w, "records   %s forward / %s backward (%d total)\n",
		r.forward.Sprint(s.ForwardCount), r.backward.Sprint(s.BackwardCount), s.TotalCount)

	scoreColor := r.bad
	if s.SymmetryScore >= 0.5 {
		scoreColor = r.good
	}
	fmt.Fprintf(w, "symmetry  %s\n", scoreColor.Sprintf("%.6f", s.SymmetryScore))

	balance := output.FormatBalance(s.TemporalBalance)
	balColor := r.good
	// A balance of zero means the chain lengths sit exactly on phi.
	if s.TemporalBalance > 0.1 {
		balColor = r.bad
	}
	fmt.Fprintf(w, "balance   %s\n", balColor.Sprint(balance))
	return nil
}
