// core/ledger/ledger.go
// TemporalLedger: two cryptographically linked append-only chains whose
// opposite tails must stand in golden-ratio proportion before a write is
// accepted.
package ledger

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"phichain-core/digest"
)

// ratioDigits is the decimal precision used for the symmetry ratio. The
// acceptance window is 0.1% relative, so anything past ~30 digits is noise.
const ratioDigits = 30

// symmetryTolerance is the relative acceptance window around Phi: a pair is
// symmetric iff |ratio - phi| / phi < 0.001. The window absorbs truncation
// drift in the Phi constant, not semantic slack.
var symmetryTolerance = decimal.New(1, -3)

// RejectedSymmetry is returned by Append when the candidate record would
// not stand in Phi proportion to the opposite chain's tail. The ledger is
// left untouched; the caller may retry with other payload or direction.
type RejectedSymmetry struct {
	Direction Direction       // direction of the rejected candidate
	Paired    digest.Digest   // primary digest of the opposite tail
	Ratio     decimal.Decimal // observed forward/backward ratio
}

func (e *RejectedSymmetry) Error() string {
	return fmt.Sprintf("ledger: %s append rejected: ratio %s outside 0.1%% of phi",
		e.Direction, e.Ratio.StringFixed(12))
}

// TemporalLedger owns a forward and a backward chain. All four operations
// serialize on one mutex scoped to both chains jointly: the symmetry gate
// couples the chains, so per-chain locks cannot keep Append atomic.
//
// Each ledger is an independent value; there is no package-level instance.
type TemporalLedger struct {
	eng *digest.Engine
	now func() time.Time

	mu       sync.Mutex
	forward  []Record
	backward []Record
}

// New returns an empty ledger backed by eng. A nil eng selects
// digest.Default().
func New(eng *digest.Engine) *TemporalLedger {
	if eng == nil {
		eng = digest.Default()
	}
	return &TemporalLedger{eng: eng, now: time.Now}
}

// Engine exposes the digest engine so collaborators (verification,
// snapshots) can derive digests with the exact same Phi constant.
func (l *TemporalLedger) Engine() *digest.Engine { return l.eng }

// Append derives a candidate record from payload, gates it against the
// opposite chain's tail, and appends it on success. The returned record is
// a copy; on *RejectedSymmetry no state has changed.
func (l *TemporalLedger) Append(payload []byte, dir Direction) (Record, error) {
	return l.AppendAt(payload, dir, l.now())
}

// AppendAt is Append with an explicit creation timestamp.
func (l *TemporalLedger) AppendAt(payload []byte, dir Direction, at time.Time) (Record, error) {
	if !dir.valid() {
		return Record{}, fmt.Errorf("ledger: invalid direction %d", int(dir))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	target, opposite := l.chains(dir)

	pred := digest.Zero
	if n := len(*target); n > 0 {
		pred = (*target)[n-1].Primary
	}

	rec := Record{
		Payload:     append([]byte(nil), payload...),
		Direction:   dir,
		CreatedAt:   at,
		Predecessor: pred,
		Primary:     l.eng.Primary(payload),
		Mirror:      l.eng.Mirror(payload, dir == Backward),
	}

	if n := len(*opposite); n > 0 {
		paired := (*opposite)[n-1]
		ratio, ok := symmetryRatio(rec, paired)
		if !ok || !l.ratioWithinTolerance(ratio) {
			return Record{}, &RejectedSymmetry{
				Direction: dir,
				Paired:    paired.Primary,
				Ratio:     ratio,
			}
		}
	}

	*target = append(*target, rec)
	return rec.clone(), nil
}

// IsSymmetric reports whether two records of opposite direction stand in
// golden-ratio proportion: forward primary over backward mirror within
// 0.1% of Phi. Same-direction pairs are defined as non-symmetric, and a
// zero backward digest is simply not symmetric rather than an error.
func (l *TemporalLedger) IsSymmetric(a, b Record) bool {
	ratio, ok := symmetryRatio(a, b)
	return ok && l.ratioWithinTolerance(ratio)
}

// symmetryRatio returns forward-primary / backward-mirror as an exact
// decimal quotient. ok is false for same-direction pairs, malformed
// digests, and a zero denominator (the division guard).
func symmetryRatio(a, b Record) (decimal.Decimal, bool) {
	if a.Direction == b.Direction {
		return decimal.Decimal{}, false
	}

	fwd, bwd := a, b
	if fwd.Direction == Backward {
		fwd, bwd = bwd, fwd
	}

	num, ok := fwd.Primary.Int()
	if !ok {
		return decimal.Decimal{}, false
	}
	den, ok := bwd.Mirror.Int()
	if !ok || den.Sign() == 0 {
		return decimal.Decimal{}, false
	}

	ratio := decimal.NewFromBigInt(num, 0).
		DivRound(decimal.NewFromBigInt(den, 0), ratioDigits)
	return ratio, true
}

func (l *TemporalLedger) ratioWithinTolerance(ratio decimal.Decimal) bool {
	phi := l.eng.Phi()
	return ratio.Sub(phi).Abs().Cmp(phi.Mul(symmetryTolerance)) < 0
}

// TemporalState is the pairwise view of both chains at one position.
type TemporalState struct {
	Position  int
	Forward   *Record
	Backward  *Record
	Symmetric bool
}

// TemporalState resolves position against both chains: negative positions
// count from the tail (-1 is the most recent), non-negative from the head.
// A missing index on either side yields a nil record, never an error;
// Symmetric is evaluated only when both sides resolve.
func (l *TemporalLedger) TemporalState(position int) TemporalState {
	l.mu.Lock()
	defer l.mu.Unlock()

	st := TemporalState{
		Position: position,
		Forward:  recordAt(l.forward, position),
		Backward: recordAt(l.backward, position),
	}
	if st.Forward != nil && st.Backward != nil {
		st.Symmetric = l.IsSymmetric(*st.Forward, *st.Backward)
	}
	return st
}

func recordAt(chain []Record, position int) *Record {
	idx := position
	if idx < 0 {
		idx += len(chain)
	}
	if idx < 0 || idx >= len(chain) {
		return nil
	}
	rec := chain[idx].clone()
	return &rec
}

// Rewind pops up to steps records from the tail of each chain and returns
// the removed records most-recent-first. Every iteration attempts both
// chains independently, so unequal chains drain asymmetrically; that is
// the documented behavior, not a defect to smooth over.
func (l *TemporalLedger) Rewind(steps int) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	var removed []Record
	for i := 0; i < steps; i++ {
		if n := len(l.forward); n > 0 {
			removed = append(removed, l.forward[n-1].clone())
			l.forward = l.forward[:n-1]
		}
		if n := len(l.backward); n > 0 {
			removed = append(removed, l.backward[n-1].clone())
			l.backward = l.backward[:n-1]
		}
	}
	return removed
}

// Stats summarizes both chains.
type Stats struct {
	ForwardCount  int
	BackwardCount int
	TotalCount    int

	// SymmetryScore is the fraction of index-aligned pairs that satisfy
	// IsSymmetric, in [0, 1]. Zero when either chain is empty.
	SymmetryScore float64

	// TemporalBalance is |(forward/backward) - phi| / phi, or +Inf when
	// the backward chain is empty. The infinity is a documented sentinel,
	// not an error.
	TemporalBalance float64
}

// Stats computes aggregate consistency of the two chains.
func (l *TemporalLedger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{
		ForwardCount:  len(l.forward),
		BackwardCount: len(l.backward),
		TotalCount:    len(l.forward) + len(l.backward),
	}

	if n := min(len(l.forward), len(l.backward)); n > 0 {
		matched := 0
		for i := 0; i < n; i++ {
			if l.IsSymmetric(l.forward[i], l.backward[i]) {
				matched++
			}
		}
		s.SymmetryScore = float64(matched) / float64(n)
	}

	if len(l.backward) == 0 {
		s.TemporalBalance = math.Inf(1)
	} else {
		phi, _ := l.eng.Phi().Float64()
		lengthRatio := float64(len(l.forward)) / float64(len(l.backward))
		s.TemporalBalance = math.Abs(lengthRatio-phi) / phi
	}
	return s
}

// Chains returns copies of both chains, oldest first. Intended for
// snapshot and verification layers; mutating the result cannot touch
// ledger state.
func (l *TemporalLedger) Chains() (forward, backward []Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	forward = make([]Record, len(l.forward))
	for i, r := range l.forward {
		forward[i] = r.clone()
	}
	backward = make([]Record, len(l.backward))
	for i, r := range l.backward {
		backward[i] = r.clone()
	}
	return forward, backward
}

func (l *TemporalLedger) chains(dir Direction) (target, opposite *[]Record) {
	if dir == Forward {
		return &l.forward, &l.backward
	}
	return &l.backward, &l.forward
}
