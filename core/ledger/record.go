// core/ledger/record.go
package ledger

import (
	"time"

	"phichain-core/digest"
)

// Record is one immutable entry in a temporal chain. Records are
// constructed only by TemporalLedger.Append, which is what keeps the
// predecessor linkage invariant true by construction; they leave the
// ledger only through Rewind.
type Record struct {
	// Payload is opaque application data. The ledger stores its own copy.
	Payload []byte

	// Direction is fixed at creation and never mutated.
	Direction Direction

	// CreatedAt defaults to the append time when not supplied.
	CreatedAt time.Time

	// Predecessor is the primary digest of the previous record in the
	// same chain, or digest.Zero for the first record.
	Predecessor digest.Digest

	// Primary is the Phi-scaled digest of Payload alone; the predecessor
	// digest is deliberately not part of the hashed input.
	Primary digest.Digest

	// Mirror equals Primary for forward records and is the Phi^2-scaled
	// digest for backward ones.
	Mirror digest.Digest
}

// clone returns a deep copy so callers can never reach into chain state.
func (r Record) clone() Record {
	r.Payload = append([]byte(nil), r.Payload...)
	return r
}
