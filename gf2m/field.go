package gf2m

import (
	"errors"
	"fmt"

	"github.com/akalin/gobch/gf2"
)

// MaxDegree is the largest m for which a GF(2^m) can be built.
const MaxDegree = 16

var (
	// ErrDivideByZero is returned when inverting or dividing by zero.
	ErrDivideByZero = errors.New("gf2m: division by zero")
	// ErrLogZero is returned when taking the logarithm of zero.
	ErrLogZero = errors.New("gf2m: logarithm of zero")
	// ErrNotPrimitive is returned by NewField when x does not
	// generate the multiplicative group modulo the given polynomial.
	ErrNotPrimitive = errors.New("gf2m: polynomial is not primitive")
	// ErrDegree is returned by NewField for polynomials of degree
	// outside [1, MaxDegree].
	ErrDegree = errors.New("gf2m: unsupported field degree")
)

// T is an element of GF(2^m), for m <= MaxDegree.
type T uint16

// Plus returns the sum of t and u as elements of GF(2^m), which is
// just the bitwise xor of the two.
func (t T) Plus(u T) T {
	return t ^ u
}

// Minus returns the difference of t and u as elements of GF(2^m),
// which is just the bitwise xor of the two.
func (t T) Minus(u T) T {
	return t ^ u
}

// Field is GF(2^m) modeled as GF(2)[x] modulo a primitive polynomial
// of degree m, with alpha = x as the generator. It is immutable and
// safe for concurrent use.
type Field struct {
	poly  gf2.Poly64
	m     int
	order int
	// expTable[i] = alpha^i, for 0 <= i < 2*order, so that the sum
	// of two logarithms can be looked up without reduction.
	expTable []T
	// logTable[t] = log_alpha(t) for t != 0. logTable[0] is unused.
	logTable []int
}

// NewField builds the exponent and logarithm tables of GF(2^m) for
// the given primitive polynomial of degree m.
func NewField(poly gf2.Poly64) (*Field, error) {
	m := poly.Degree()
	if m < 1 || m > MaxDegree {
		return nil, fmt.Errorf("%w: %s has degree %d", ErrDegree, poly, m)
	}
	if poly&1 == 0 {
		return nil, fmt.Errorf("%w: %s is divisible by x", ErrNotPrimitive, poly)
	}

	order := 1<<uint(m) - 1
	expTable := make([]T, 2*order)
	logTable := make([]int, order+1)
	top := uint32(1) << uint(m)

	x := T(1)
	for p := 0; p < order; p++ {
		if (x == 1 && p != 0) || (x != 1 && logTable[x] != 0) {
			return nil, fmt.Errorf("%w: %s has a power cycle of length %d", ErrNotPrimitive, poly, p)
		}

		logTable[x] = p
		expTable[p] = x
		next := uint32(x) << 1
		if next&top != 0 {
			next ^= uint32(poly)
		}
		x = T(next)
	}
	copy(expTable[order:], expTable[:order])

	return &Field{poly, m, order, expTable, logTable}, nil
}

// Poly returns the polynomial the field was built from.
func (f *Field) Poly() gf2.Poly64 {
	return f.poly
}

// M returns the degree of the field over GF(2).
func (f *Field) M() int {
	return f.m
}

// Order returns the order of the multiplicative group, 2^m - 1.
func (f *Field) Order() int {
	return f.order
}

func (f *Field) reduce(i int) int {
	i %= f.order
	if i < 0 {
		i += f.order
	}
	return i
}

// Exp returns alpha^i. i may be negative.
func (f *Field) Exp(i int) T {
	return f.expTable[f.reduce(i)]
}

// Log returns the i in [0, 2^m - 1) with alpha^i = t.
func (f *Field) Log(t T) (int, error) {
	if t == 0 {
		return 0, ErrLogZero
	}
	return f.logTable[t], nil
}

// Times returns the product of t and u as elements of GF(2^m).
func (f *Field) Times(t, u T) T {
	if t == 0 || u == 0 {
		return 0
	}
	return f.expTable[f.logTable[t]+f.logTable[u]]
}

// Inverse returns the multiplicative inverse of t, or ErrDivideByZero
// if t == 0.
func (f *Field) Inverse(t T) (T, error) {
	if t == 0 {
		return 0, ErrDivideByZero
	}
	return f.expTable[f.order-f.logTable[t]], nil
}

// Div returns the product of t and u^{-1}, or ErrDivideByZero if
// u == 0.
func (f *Field) Div(t, u T) (T, error) {
	if u == 0 {
		return 0, ErrDivideByZero
	}
	if t == 0 {
		return 0, nil
	}
	return f.expTable[f.logTable[t]-f.logTable[u]+f.order], nil
}

// Pow returns t^e. e may be negative if t != 0. 0^0 is 1.
func (f *Field) Pow(t T, e int) T {
	if t == 0 {
		if e == 0 {
			return 1
		}
		if e < 0 {
			panic("zero has no inverse")
		}
		return 0
	}
	return f.Exp(int(int64(f.logTable[t]) * int64(f.reduce(e)) % int64(f.order)))
}
