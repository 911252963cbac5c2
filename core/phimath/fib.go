// core/phimath/fib.go
// Bidirectional Fibonacci numbers and the Zeckendorf representation.
//
// Negative indices follow F(-n) = (-1)^(n+1) * F(n), which makes
// F(n) + F(-n) = 0 for every even n and keeps the forward/backward
// reward tiers perfectly mirrored.
package phimath

import (
	"fmt"
	"math/big"
)

// Fibonacci returns F(n) with full negative-index support.
func Fibonacci(n int) *big.Int {
	if n == 0 {
		return new(big.Int)
	}

	target := n
	if target < 0 {
		target = -target
	}

	a, b := big.NewInt(0), big.NewInt(1) // F(0), F(1)
	for i := 1; i < target; i++ {
		a.Add(a, b)
		a, b = b, a
	}

	// F(-n) = (-1)^(n+1) * F(n)
	if n < 0 && target%2 == 0 {
		b.Neg(b)
	}
	return b
}

// IsFibonacci reports whether n belongs to the Fibonacci sequence, using
// the classic test: n is Fibonacci iff 5n^2+4 or 5n^2-4 is a perfect square.
// Negative values are never considered Fibonacci here.
func IsFibonacci(n int64) bool {
	if n < 0 {
		return false
	}
	sq := new(big.Int).Mul(big.NewInt(n), big.NewInt(n))
	sq.Mul(sq, big.NewInt(5))
	four := big.NewInt(4)
	return isPerfectSquare(new(big.Int).Add(sq, four)) ||
		isPerfectSquare(new(big.Int).Sub(sq, four))
}

func isPerfectSquare(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}
	r := new(big.Int).Sqrt(n)
	return new(big.Int).Mul(r, r).Cmp(n) == 0
}

// Zeckendorf returns the unique encoding of n as a sum of non-consecutive
// Fibonacci numbers, largest term first. Negative inputs yield negated
// terms, so the encoding of -n mirrors the encoding of n. Zero encodes to
// an empty slice.
func Zeckendorf(n int64) []int64 {
	if n == 0 {
		return nil
	}

	abs := n
	if abs < 0 {
		abs = -abs
	}

	// Fibonacci numbers 1, 2, 3, 5, ... up to abs(n).
	var fibs []int64
	for a, b := int64(1), int64(2); a <= abs; a, b = b, a+b {
		fibs = append(fibs, a)
	}

	var terms []int64
	remainder := abs
	for i := len(fibs) - 1; i >= 0 && remainder > 0; i-- {
		if fibs[i] > remainder {
			continue
		}
		t := fibs[i]
		if n < 0 {
			t = -t
		}
		terms = append(terms, t)
		remainder -= fibs[i]
	}

	if remainder != 0 {
		// Greedy Zeckendorf never leaves a remainder; reaching this means
		// the fib table construction above is broken.
		panic(fmt.Sprintf("phimath: zeckendorf remainder %d for %d", remainder, n))
	}
	return terms
}
