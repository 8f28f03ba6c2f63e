package gf2

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrOverflow is returned when the result of an operation would not
// fit in a Poly64.
var ErrOverflow = errors.New("gf2: polynomial degree overflow")

// A Poly64 is a polynomial over GF(2) mod x^64. Bit i holds the
// coefficient of x^i.
type Poly64 uint64

func ilog2(x uint64) int {
	return 63 - bits.LeadingZeros64(x)
}

// Degree returns the degree of p, or -1 if p is zero.
func (p Poly64) Degree() int {
	if p == 0 {
		return -1
	}
	return ilog2(uint64(p))
}

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly64) Plus(q Poly64) Poly64 {
	return p ^ q
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly64) Minus(q Poly64) Poly64 {
	return p ^ q
}

// Times returns the product of p and q as polynomials over GF(2), mod
// x^64.
func (p Poly64) Times(q Poly64) Poly64 {
	var prod Poly64
	for p != 0 && q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
	}
	return prod
}

// Div returns the quotient and remainder of p divided by q as
// polynomials over GF(2). It panics if q == 0.
func (p Poly64) Div(q Poly64) (quotient, remainder Poly64) {
	if q == 0 {
		panic("division by zero")
	}

	qDeg := q.Degree()
	remainder = p
	for remainder != 0 {
		shift := remainder.Degree() - qDeg
		if shift < 0 {
			break
		}
		quotient |= 1 << uint(shift)
		remainder ^= q << uint(shift)
	}
	return quotient, remainder
}

// Mod returns the remainder of p divided by q. It panics if q == 0.
func (p Poly64) Mod(q Poly64) Poly64 {
	_, r := p.Div(q)
	return r
}

// GCD returns the monic greatest common divisor of p and q. GCD(0, 0)
// is 0.
func (p Poly64) GCD(q Poly64) Poly64 {
	for q != 0 {
		p, q = q, p.Mod(q)
	}
	return p
}

// LCM returns the least common multiple of p and q, or ErrOverflow if
// it has degree 64 or more. LCM(p, 0) is 0.
func (p Poly64) LCM(q Poly64) (Poly64, error) {
	if p == 0 || q == 0 {
		return 0, nil
	}
	pOverGCD, _ := p.Div(p.GCD(q))
	if pOverGCD.Degree()+q.Degree() > 63 {
		return 0, fmt.Errorf("%w: lcm(%s, %s)", ErrOverflow, p, q)
	}
	return pOverGCD.Times(q), nil
}

// timesMod returns p*q mod m, where p and q are already reduced mod m
// and m has degree at most 63.
func timesMod(p, q, m Poly64) Poly64 {
	top := Poly64(1) << uint(m.Degree())
	var prod Poly64
	for q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
		if p&top != 0 {
			p ^= m
		}
	}
	return prod
}

// IsIrreducible returns whether p has no factors over GF(2) other
// than 1 and itself. Constants are not irreducible.
//
// It uses Ben-Or's test: p of degree n is irreducible iff
// gcd(x^(2^i) - x, p) = 1 for every 1 <= i <= n/2.
func (p Poly64) IsIrreducible() bool {
	n := p.Degree()
	if n < 1 {
		return false
	}
	if n == 1 {
		return true
	}
	const x Poly64 = 2
	u := x
	for i := 1; i <= n/2; i++ {
		u = timesMod(u, u, p)
		if p.GCD(u.Plus(x)) != 1 {
			return false
		}
	}
	return true
}

// String returns p in the form "x^4 + x + 1".
func (p Poly64) String() string {
	if p == 0 {
		return "0"
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		if p&(1<<uint(i)) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", i))
		}
	}
	return strings.Join(terms, " + ")
}
