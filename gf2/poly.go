package gf2

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidBit is returned by ParsePoly for characters other than '0'
// and '1'.
var ErrInvalidBit = errors.New("gf2: invalid bit")

// Poly is an immutable polynomial over GF(2) with a fixed number of
// coefficients, stored as a little-endian bit vector. Unlike Poly64
// it can hold codewords of any length.
type Poly struct {
	length int
	words  []uint64
}

func wordCount(length int) int {
	return (length + 63) / 64
}

// NewPoly returns the zero polynomial with the given number of
// coefficients.
func NewPoly(length int) Poly {
	if length < 0 {
		panic("invalid length")
	}
	return Poly{length, make([]uint64, wordCount(length))}
}

// NewPolyFromPoly64 returns p as a Poly with the given number of
// coefficients. It panics if p doesn't fit.
func NewPolyFromPoly64(p Poly64, length int) Poly {
	if p.Degree() >= length {
		panic("polynomial does not fit")
	}
	q := NewPoly(length)
	if length > 0 {
		q.words[0] = uint64(p)
	}
	return q
}

// ParsePoly parses a string of '0's and '1's, most significant
// coefficient first, so "1011" is x^3 + x + 1 with four coefficients.
func ParsePoly(s string) (Poly, error) {
	p := NewPoly(len(s))
	for i, c := range []byte(s) {
		switch c {
		case '0':
		case '1':
			j := len(s) - 1 - i
			p.words[j/64] |= 1 << uint(j%64)
		default:
			return Poly{}, fmt.Errorf("%w %q at index %d", ErrInvalidBit, c, i)
		}
	}
	return p, nil
}

// Len returns the number of coefficients of p.
func (p Poly) Len() int {
	return p.length
}

func (p Poly) checkIndex(i int) {
	if i < 0 || i >= p.length {
		panic("coefficient index out of bounds")
	}
}

// Coefficient returns the coefficient of x^i, which is 0 or 1.
func (p Poly) Coefficient(i int) int {
	p.checkIndex(i)
	return int(p.words[i/64]>>uint(i%64)) & 1
}

func (p Poly) clone() Poly {
	words := make([]uint64, len(p.words))
	copy(words, p.words)
	return Poly{p.length, words}
}

// Flip returns a copy of p with the coefficients at the given
// positions inverted. Repeated positions cancel out.
func (p Poly) Flip(positions ...int) Poly {
	q := p.clone()
	for _, i := range positions {
		q.checkIndex(i)
		q.words[i/64] ^= 1 << uint(i%64)
	}
	return q
}

// Plus returns the sum of p and q, which must have the same length.
func (p Poly) Plus(q Poly) Poly {
	if p.length != q.length {
		panic("mismatched lengths")
	}
	sum := p.clone()
	for i, w := range q.words {
		sum.words[i] ^= w
	}
	return sum
}

// Shift returns p * x^n, with n more coefficients than p.
func (p Poly) Shift(n int) Poly {
	if n < 0 {
		panic("invalid shift")
	}
	q := NewPoly(p.length + n)
	for _, i := range p.Support() {
		j := i + n
		q.words[j/64] |= 1 << uint(j%64)
	}
	return q
}

// Slice returns the coefficients of x^lo through x^(hi-1) of p as a
// polynomial with hi-lo coefficients, i.e. (p div x^lo) mod x^(hi-lo).
func (p Poly) Slice(lo, hi int) Poly {
	if lo < 0 || hi > p.length || lo > hi {
		panic("slice bounds out of range")
	}
	q := NewPoly(hi - lo)
	for _, i := range p.Support() {
		if i >= lo && i < hi {
			j := i - lo
			q.words[j/64] |= 1 << uint(j%64)
		}
	}
	return q
}

// Support returns the positions of the nonzero coefficients of p in
// increasing order.
func (p Poly) Support() []int {
	var positions []int
	for i, w := range p.words {
		for w != 0 {
			j := bits.TrailingZeros64(w)
			positions = append(positions, 64*i+j)
			w &= w - 1
		}
	}
	return positions
}

// Weight returns the number of nonzero coefficients of p.
func (p Poly) Weight() int {
	weight := 0
	for _, w := range p.words {
		weight += bits.OnesCount64(w)
	}
	return weight
}

// Degree returns the degree of p, or -1 if p is zero.
func (p Poly) Degree() int {
	for i := len(p.words) - 1; i >= 0; i-- {
		if p.words[i] != 0 {
			return 64*i + ilog2(p.words[i])
		}
	}
	return -1
}

// IsZero returns whether every coefficient of p is zero.
func (p Poly) IsZero() bool {
	return p.Degree() < 0
}

// Equal returns whether p and q have the same length and
// coefficients.
func (p Poly) Equal(q Poly) bool {
	if p.length != q.length {
		return false
	}
	for i, w := range p.words {
		if q.words[i] != w {
			return false
		}
	}
	return true
}

// Mod returns the remainder of p divided by m. It panics if m == 0.
func (p Poly) Mod(m Poly64) Poly64 {
	if m == 0 {
		panic("division by zero")
	}
	top := Poly64(1) << uint(m.Degree())
	var r Poly64
	// Feed coefficients in from the top, as a shift register would.
	for i := p.length - 1; i >= 0; i-- {
		r = r<<1 | Poly64(p.words[i/64]>>uint(i%64)&1)
		if r&top != 0 {
			r ^= m
		}
	}
	return r
}

// String returns the coefficients of p most significant first, the
// inverse of ParsePoly.
func (p Poly) String() string {
	var sb strings.Builder
	sb.Grow(p.length)
	for i := p.length - 1; i >= 0; i-- {
		sb.WriteByte(byte('0' + p.Coefficient(i)))
	}
	return sb.String()
}
