// core/digest/digest.go
package digest

import (
	"math/big"
	"strings"
)

// Size is the digest width in hex characters (256 bits).
const Size = 64

// Digest is a 256-bit value hex-encoded to 64 lowercase characters,
// left-zero-padded.
type Digest string

// Zero is the predecessor sentinel carried by the first record of a chain.
const Zero Digest = "0000000000000000000000000000000000000000000000000000000000000000"

// Valid reports whether d is a well-formed 64-character lowercase hex digest.
func (d Digest) Valid() bool {
	if len(d) != Size {
		return false
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Int returns the digest interpreted as a big-endian unsigned integer.
// ok is false for malformed digests.
func (d Digest) Int() (*big.Int, bool) {
	if !d.Valid() {
		return nil, false
	}
	n, ok := new(big.Int).SetString(string(d), 16)
	if !ok {
		return nil, false
	}
	return n, true
}

// Short returns a truncated form for human-facing output.
func (d Digest) Short() string {
	if len(d) < 12 {
		return string(d)
	}
	return string(d[:12]) + ".."
}

// String implements fmt.Stringer.
func (d Digest) String() string { return string(d) }

// IsZero reports whether d is the genesis sentinel.
func (d Digest) IsZero() bool {
	return strings.Count(string(d), "0") == Size && len(d) == Size
}
