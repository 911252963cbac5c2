package ledger

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phichain-core/digest"
)

// makeChain builds a digest-valid, correctly linked chain outside the
// ledger, for seeding Load in tests that need both chains populated
// without threading the symmetry gate.
func makeChain(t *testing.T, eng *digest.Engine, dir Direction, payloads ...string) []Record {
	t.Helper()
	var chain []Record
	pred := digest.Zero
	for _, p := range payloads {
		rec := Record{
			Payload:     []byte(p),
			Direction:   dir,
			CreatedAt:   time.Unix(1700000000, 0),
			Predecessor: pred,
			Primary:     eng.Primary([]byte(p)),
			Mirror:      eng.Mirror([]byte(p), dir == Backward),
		}
		chain = append(chain, rec)
		pred = rec.Primary
	}
	return chain
}

func loadLedger(t *testing.T, fwd, bwd []string) *TemporalLedger {
	t.Helper()
	eng := digest.Default()
	l, err := Load(eng, makeChain(t, eng, Forward, fwd...), makeChain(t, eng, Backward, bwd...))
	require.NoError(t, err)
	return l
}

func TestAppendFirstRecordUsesZeroSentinel(t *testing.T) {
	l := New(nil)
	rec, err := l.Append([]byte("tx1"), Forward)
	require.NoError(t, err)

	assert.Equal(t, digest.Zero, rec.Predecessor)
	assert.Equal(t, Forward, rec.Direction)
	assert.Equal(t, rec.Primary, rec.Mirror, "forward mirror must equal primary")
	assert.True(t, rec.Primary.Valid())
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestAppendChainLinkage(t *testing.T) {
	l := New(nil)
	var recs []Record
	for i := 0; i < 5; i++ {
		rec, err := l.Append([]byte(fmt.Sprintf("block-%d", i)), Forward)
		require.NoError(t, err, "forward appends with empty backward chain are always accepted")
		recs = append(recs, rec)
	}

	assert.Equal(t, digest.Zero, recs[0].Predecessor)
	for i := 1; i < len(recs); i++ {
		assert.Equalf(t, recs[i-1].Primary, recs[i].Predecessor, "record %d linkage", i)
	}
	require.NoError(t, l.Verify())
}

func TestAppendRejectsInvalidDirection(t *testing.T) {
	l := New(nil)
	_, err := l.Append([]byte("x"), Direction(7))
	require.Error(t, err)
	var rej *RejectedSymmetry
	assert.False(t, errors.As(err, &rej), "invalid direction is not a symmetry rejection")
}

func TestAppendAtKeepsTimestamp(t *testing.T) {
	l := New(nil)
	at := time.Unix(1234567890, 42)
	rec, err := l.AppendAt([]byte("tx"), Backward, at)
	require.NoError(t, err)
	assert.True(t, rec.CreatedAt.Equal(at))
}

func TestAppendCopiesPayload(t *testing.T) {
	l := New(nil)
	payload := []byte("mutable")
	rec, err := l.Append(payload, Forward)
	require.NoError(t, err)

	payload[0] = 'X'
	assert.Equal(t, byte('m'), rec.Payload[0], "ledger must own its payload copy")

	st := l.TemporalState(0)
	require.NotNil(t, st.Forward)
	assert.Equal(t, []byte("mutable"), st.Forward.Payload)
}

func TestTemporalStatePositions(t *testing.T) {
	l := loadLedger(t, []string{"f0", "f1", "f2"}, []string{"b0"})

	cases := []struct {
		pos      int
		fwd, bwd string // "" means nil side
	}{
		{0, "f0", "b0"},
		{1, "f1", ""},
		{2, "f2", ""},
		{3, "", ""},
		{-1, "f2", "b0"},
		{-2, "f1", ""},
		{-3, "f0", ""},
		{-4, "", ""},
	}
	for _, c := range cases {
		st := l.TemporalState(c.pos)
		if c.fwd == "" {
			assert.Nilf(t, st.Forward, "pos %d forward", c.pos)
		} else if assert.NotNilf(t, st.Forward, "pos %d forward", c.pos) {
			assert.Equalf(t, c.fwd, string(st.Forward.Payload), "pos %d forward", c.pos)
		}
		if c.bwd == "" {
			assert.Nilf(t, st.Backward, "pos %d backward", c.pos)
			assert.Falsef(t, st.Symmetric, "pos %d symmetric with a missing side", c.pos)
		} else if assert.NotNilf(t, st.Backward, "pos %d backward", c.pos) {
			assert.Equalf(t, c.bwd, string(st.Backward.Payload), "pos %d backward", c.pos)
		}
	}
}

func TestRewindDrainsBothTails(t *testing.T) {
	l := loadLedger(t, []string{"f0", "f1", "f2"}, []string{"b0", "b1"})

	removed := l.Rewind(2)
	// Per step: forward tail first, then backward tail.
	require.Len(t, removed, 4)
	assert.Equal(t, "f2", string(removed[0].Payload))
	assert.Equal(t, "b1", string(removed[1].Payload))
	assert.Equal(t, "f1", string(removed[2].Payload))
	assert.Equal(t, "b0", string(removed[3].Payload))

	s := l.Stats()
	assert.Equal(t, 1, s.ForwardCount)
	assert.Equal(t, 0, s.BackwardCount)
}

func TestRewindCounts(t *testing.T) {
	// rewind(k) removes min(k, len) from each chain.
	l := loadLedger(t, []string{"f0", "f1"}, []string{"b0", "b1", "b2", "b3"})
	removed := l.Rewind(3)
	assert.Len(t, removed, 2+3)

	s := l.Stats()
	assert.Equal(t, 0, s.ForwardCount)
	assert.Equal(t, 1, s.BackwardCount)
}

func TestRewindSingleForwardScenario(t *testing.T) {
	// One forward record, empty backward chain: rewind(1) returns exactly
	// that record and leaves both chains empty.
	l := New(nil)
	rec, err := l.Append([]byte("only"), Forward)
	require.NoError(t, err)

	removed := l.Rewind(1)
	require.Len(t, removed, 1)
	assert.Equal(t, rec.Primary, removed[0].Primary)

	s := l.Stats()
	assert.Zero(t, s.TotalCount)
}

func TestRewindEmptyAndNonPositive(t *testing.T) {
	l := New(nil)
	assert.Empty(t, l.Rewind(3), "rewind on empty chains is a no-op")
	assert.Empty(t, l.Rewind(0))
	assert.Empty(t, l.Rewind(-1))
}

func TestStatsEmptyLedger(t *testing.T) {
	s := New(nil).Stats()
	assert.Zero(t, s.ForwardCount)
	assert.Zero(t, s.BackwardCount)
	assert.Zero(t, s.TotalCount)
	assert.Zero(t, s.SymmetryScore, "empty chain score is 0.0, not NaN")
	assert.True(t, infinite(s.TemporalBalance), "empty backward chain yields +Inf balance")
}

func TestStatsScoreBounds(t *testing.T) {
	l := loadLedger(t, []string{"f0", "f1", "f2"}, []string{"b0", "b1"})
	s := l.Stats()
	assert.GreaterOrEqual(t, s.SymmetryScore, 0.0)
	assert.LessOrEqual(t, s.SymmetryScore, 1.0)
	assert.Equal(t, 3, s.ForwardCount)
	assert.Equal(t, 2, s.BackwardCount)
	assert.Equal(t, 5, s.TotalCount)
	assert.False(t, infinite(s.TemporalBalance))
}

func TestStatsBalanceValue(t *testing.T) {
	l := loadLedger(t, []string{"f0", "f1", "f2"}, []string{"b0", "b1"})
	phi, _ := l.Engine().Phi().Float64()
	want := (phi - 1.5) / phi // |1.5 - phi| / phi
	s := l.Stats()
	assert.InDelta(t, want, s.TemporalBalance, 1e-12)
}

func TestConcurrentAppendsSerialize(t *testing.T) {
	l := New(nil)
	const n = 64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := l.Append([]byte(fmt.Sprintf("p%d", i)), Forward)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	s := l.Stats()
	assert.Equal(t, n, s.ForwardCount)
	require.NoError(t, l.Verify(), "linkage must survive concurrent appends")
}

func infinite(f float64) bool { return f > 1e308 }
