package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phichain-core/digest"
)

func TestVerifyChainAcceptsValidChain(t *testing.T) {
	eng := digest.Default()
	chain := makeChain(t, eng, Forward, "a", "b", "c")
	assert.NoError(t, VerifyChain(eng, Forward, chain))
	assert.NoError(t, VerifyChain(eng, Forward, nil), "empty chain is valid")
}

func TestVerifyChainDetectsTampering(t *testing.T) {
	eng := digest.Default()

	cases := []struct {
		name   string
		mutate func(chain []Record)
		errSub string
	}{
		{
			name:   "payload swap",
			mutate: func(c []Record) { c[1].Payload = []byte("forged") },
			errSub: "primary digest mismatch",
		},
		{
			name:   "broken predecessor link",
			mutate: func(c []Record) { c[2].Predecessor = c[0].Primary },
			errSub: "predecessor",
		},
		{
			name:   "first record not anchored at zero",
			mutate: func(c []Record) { c[0].Predecessor = c[1].Primary },
			errSub: "predecessor",
		},
		{
			name:   "wrong direction",
			mutate: func(c []Record) { c[1].Direction = Backward },
			errSub: "direction",
		},
		{
			name:   "corrupted mirror digest",
			mutate: func(c []Record) { c[0].Mirror = digest.Zero },
			errSub: "mirror digest mismatch",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			chain := makeChain(t, eng, Forward, "a", "b", "c")
			c.mutate(chain)
			err := VerifyChain(eng, Forward, chain)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.errSub)
		})
	}
}

func TestVerifyChainBackwardMirror(t *testing.T) {
	eng := digest.Default()
	chain := makeChain(t, eng, Backward, "x", "y")
	assert.NoError(t, VerifyChain(eng, Backward, chain))

	// A backward record whose mirror was computed with the forward factor
	// must be caught.
	chain[1].Mirror = eng.Mirror(chain[1].Payload, false)
	err := VerifyChain(eng, Backward, chain)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mirror digest mismatch")
}

func TestLoadRoundTrip(t *testing.T) {
	l := loadLedger(t, []string{"f0", "f1", "f2"}, []string{"b0", "b1"})
	require.NoError(t, l.Verify())

	fwd, bwd := l.Chains()
	reloaded, err := Load(l.Engine(), fwd, bwd)
	require.NoError(t, err)

	rf, rb := reloaded.Chains()
	assert.Equal(t, fwd, rf)
	assert.Equal(t, bwd, rb)

	s := reloaded.Stats()
	assert.Equal(t, 3, s.ForwardCount)
	assert.Equal(t, 2, s.BackwardCount)
}

func TestLoadRejectsCorruptChain(t *testing.T) {
	eng := digest.Default()
	fwd := makeChain(t, eng, Forward, "f0", "f1")
	bwd := makeChain(t, eng, Backward, "b0")

	bwd[0].Payload = []byte("forged")
	_, err := Load(eng, fwd, bwd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backward")
}

func TestLoadCopiesInput(t *testing.T) {
	eng := digest.Default()
	fwd := makeChain(t, eng, Forward, "f0")

	l, err := Load(eng, fwd, nil)
	require.NoError(t, err)

	// Mutating the caller's slice after Load must not corrupt the ledger.
	fwd[0].Payload[0] = 'X'
	assert.NoError(t, l.Verify())
}

func TestVerifyCatchesInPlaceCorruption(t *testing.T) {
	l := loadLedger(t, []string{"f0", "f1"}, nil)
	require.NoError(t, l.Verify())

	l.forward[1].Payload = []byte("forged")
	assert.Error(t, l.Verify())
}
