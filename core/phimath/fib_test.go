package phimath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFibonacciKnownValues(t *testing.T) {
	cases := []struct {
		n    int
		want int64
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {6, 8}, {10, 55},
		{14, 377}, {17, 1597}, {18, 2584}, {20, 6765},
	}
	for _, c := range cases {
		if got := Fibonacci(c.n).Int64(); got != c.want {
			t.Errorf("Fibonacci(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestFibonacciNegativeIndices(t *testing.T) {
	// F(-n) = (-1)^(n+1) * F(n)
	cases := []struct {
		n    int
		want int64
	}{
		{-1, 1}, {-2, -1}, {-3, 2}, {-4, -3}, {-5, 5},
		{-9, 34}, {-10, -55}, {-33, 3524578},
	}
	for _, c := range cases {
		if got := Fibonacci(c.n).Int64(); got != c.want {
			t.Errorf("Fibonacci(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestFibonacciMirrorLaw(t *testing.T) {
	// F(n) + F(-n) = 0 exactly for even n, 2*F(n) for odd n.
	for n := 1; n <= 20; n++ {
		sum := Fibonacci(n).Int64() + Fibonacci(-n).Int64()
		if n%2 == 0 {
			assert.Zerof(t, sum, "F(%d)+F(-%d)", n, n)
		} else {
			assert.Equalf(t, 2*Fibonacci(n).Int64(), sum, "F(%d)+F(-%d)", n, n)
		}
	}
}

func TestIsFibonacci(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 3, 5, 8, 13, 21, 55, 6765} {
		assert.Truef(t, IsFibonacci(n), "IsFibonacci(%d)", n)
	}
	for _, n := range []int64{-1, 4, 6, 7, 56, 100, 6764} {
		assert.Falsef(t, IsFibonacci(n), "IsFibonacci(%d)", n)
	}
}

func TestZeckendorfSumsAndSigns(t *testing.T) {
	for _, n := range []int64{1, 2, 4, 17, 42, 100, 6765, -42, -100} {
		terms := Zeckendorf(n)
		var sum int64
		for _, term := range terms {
			sum += term
			if n > 0 {
				assert.Positive(t, term)
			} else {
				assert.Negative(t, term)
			}
		}
		assert.Equalf(t, n, sum, "Zeckendorf(%d) = %v", n, terms)
	}
}

func TestZeckendorfKnownEncodings(t *testing.T) {
	assert.Equal(t, []int64{34, 8}, Zeckendorf(42))
	assert.Equal(t, []int64{-34, -8}, Zeckendorf(-42))
	assert.Empty(t, Zeckendorf(0))
}

func TestZeckendorfStrictlyDecreasing(t *testing.T) {
	for n := int64(1); n <= 200; n++ {
		terms := Zeckendorf(n)
		for i := 1; i < len(terms); i++ {
			if terms[i-1] <= terms[i] {
				t.Fatalf("Zeckendorf(%d) terms not decreasing: %v", n, terms)
			}
		}
	}
}
