// core/phimath/phimath.go
// Fixed-precision golden-ratio arithmetic for the phichain core.
//
// Phi is derived two independent ways and must agree to the working
// precision before it is used anywhere:
//  1) closed form (1+sqrt(5))/2, with sqrt(5) from an integer Newton
//     iteration at a fixed decimal scale;
//  2) the limit of consecutive ratios F(k+1)/F(k) of the Fibonacci
//     sequence.
// Everything on this path is exact decimal arithmetic. Digests scaled by
// Phi must be reproducible bit-for-bit across platforms, so no float64
// is allowed anywhere near the scaling constant.
//
// This package has no app/output deps; digest and ledger import it cleanly.
package phimath

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// DefaultPrecision is the number of decimal digits carried by Phi.
	DefaultPrecision = 40

	// MinPrecision is the floor below which the Phi approximation is too
	// coarse to keep 256-bit digest scaling deterministic.
	MinPrecision = 30
)

var two = big.NewInt(2)

// pow10 returns 10^n as a big integer.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// sqrtFixed returns floor(sqrt(n) * 10^prec) via integer Newton iteration.
// n must be non-negative.
func sqrtFixed(n int64, prec int) *big.Int {
	if n < 0 {
		panic(fmt.Sprintf("phimath: sqrtFixed of negative value %d", n))
	}
	if n == 0 {
		return new(big.Int)
	}

	// Scale n by 10^(2*prec) so the integer square root carries prec
	// decimal digits.
	scaled := new(big.Int).Mul(big.NewInt(n), pow10(2*prec))

	x := new(big.Int).Set(scaled)
	y := new(big.Int).Add(x, big.NewInt(1))
	y.Div(y, two)
	for y.Cmp(x) < 0 {
		x.Set(y)
		q := new(big.Int).Div(scaled, x)
		y = new(big.Int).Add(x, q)
		y.Div(y, two)
	}
	return x
}

// Phi returns the golden ratio (1+sqrt(5))/2 truncated to prec decimal
// digits. Precisions below MinPrecision are raised to MinPrecision.
func Phi(prec int) decimal.Decimal {
	if prec < MinPrecision {
		prec = MinPrecision
	}
	// (10^prec + sqrt(5)*10^prec) / 2, floored, then rescaled.
	num := new(big.Int).Add(pow10(prec), sqrtFixed(5, prec))
	num.Div(num, two)
	return decimal.NewFromBigInt(num, int32(-prec))
}

// PhiFromFibonacci returns the golden ratio as the limit of consecutive
// Fibonacci ratios F(k+1)/F(k), iterating until two successive ratios agree
// below 10^-prec, then truncating to prec digits.
func PhiFromFibonacci(prec int) decimal.Decimal {
	if prec < MinPrecision {
		prec = MinPrecision
	}
	eps := decimal.New(1, int32(-prec))

	a, b := big.NewInt(1), big.NewInt(1) // F(1), F(2)
	prev := decimal.Decimal{}
	for i := 0; ; i++ {
		a, b = b, new(big.Int).Add(a, b)
		ratio := decimal.NewFromBigInt(b, 0).
			DivRound(decimal.NewFromBigInt(a, 0), int32(prec+4))
		if i > 0 && ratio.Sub(prev).Abs().Cmp(eps) < 0 {
			return ratio.Truncate(int32(prec))
		}
		prev = ratio
	}
}

// CheckPhiAgreement verifies that the closed-form and Fibonacci-limit
// derivations of Phi agree to within two final digits at prec. The two
// routes bracket the true value from opposite sides, so anything larger
// than a last-digit truncation artifact means a broken derivation.
func CheckPhiAgreement(prec int) error {
	if prec < MinPrecision {
		prec = MinPrecision
	}
	closed := Phi(prec)
	limit := PhiFromFibonacci(prec)
	tol := decimal.New(1, int32(-(prec - 2)))
	if closed.Sub(limit).Abs().Cmp(tol) > 0 {
		return fmt.Errorf("phimath: phi derivations disagree at precision %d (closed=%s limit=%s)",
			prec, closed, limit)
	}
	return nil
}
