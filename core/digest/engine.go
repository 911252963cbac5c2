// core/digest/engine.go
// Phi-weighted SHA3-256 digest derivation.
//
// A primary digest is floor(int(SHA3-256(payload)) * Phi) mod 2^256; the
// mirror digest of a backward record repeats the procedure with Phi^2
// (which equals Phi+1 by the defining property of the golden ratio). The
// scale factor is an exact fixed-precision decimal, so the same payload
// always produces the same digest on every platform.
package digest

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"

	"phichain-core/phimath"
)

// mod 2^256 keeps scaled values inside the digest width.
var two256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Engine derives primary and mirror digests from arbitrary payload bytes.
// Construct with New or Default; the zero Engine is not usable.
type Engine struct {
	prec  int
	phi   decimal.Decimal
	phiSq decimal.Decimal
}

// New returns an Engine whose Phi constant carries prec decimal digits
// (raised to phimath.MinPrecision when lower). It fails if the two Phi
// derivations disagree or if Phi^2 drifts from Phi+1 beyond the working
// precision.
func New(prec int) (*Engine, error) {
	if prec < phimath.MinPrecision {
		prec = phimath.MinPrecision
	}
	if err := phimath.CheckPhiAgreement(prec); err != nil {
		return nil, err
	}

	phi := phimath.Phi(prec)
	phiSq := phi.Mul(phi)

	// Phi^2 = Phi + 1; the truncated constant may drift by a couple of
	// trailing digits, never more.
	tol := decimal.New(1, int32(-(prec - 2)))
	if phiSq.Sub(phi.Add(decimal.New(1, 0))).Abs().Cmp(tol) > 0 {
		return nil, fmt.Errorf("digest: phi^2 != phi+1 at precision %d", prec)
	}

	return &Engine{prec: prec, phi: phi, phiSq: phiSq}, nil
}

// Default returns an Engine at phimath.DefaultPrecision. The construction
// is fully deterministic, so failure here means the package itself is
// broken and panicking is the only honest response.
func Default() *Engine {
	e, err := New(phimath.DefaultPrecision)
	if err != nil {
		panic(err)
	}
	return e
}

// Phi returns the exact decimal golden-ratio constant in use.
func (e *Engine) Phi() decimal.Decimal { return e.phi }

// Precision returns the decimal precision of the Phi constant.
func (e *Engine) Precision() int { return e.prec }

// Primary returns the Phi-scaled digest of payload.
func (e *Engine) Primary(payload []byte) Digest {
	return e.scale(payload, e.phi)
}

// Mirror returns the mirror digest of payload: identical to Primary for
// forward records, Phi^2-scaled for backward ones.
func (e *Engine) Mirror(payload []byte, backward bool) Digest {
	if !backward {
		return e.Primary(payload)
	}
	return e.scale(payload, e.phiSq)
}

func (e *Engine) scale(payload []byte, factor decimal.Decimal) Digest {
	sum := sha3.Sum256(payload)
	base := new(big.Int).SetBytes(sum[:])

	// Exact decimal product, floored, wrapped to 256 bits.
	scaled := decimal.NewFromBigInt(base, 0).Mul(factor).Floor().BigInt()
	scaled.Mod(scaled, two256)

	return Digest(fmt.Sprintf("%064x", scaled))
}
