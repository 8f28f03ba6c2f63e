package bch

import (
	"fmt"

	"github.com/akalin/gobch/gf2"
	"github.com/akalin/gobch/gf2m"
)

// maxCorrectable is the largest number of errors the closed-form
// locator solver handles.
const maxCorrectable = 2

// A Codec encodes messages into codewords of a binary cyclic code and
// decodes received words, correcting up to T() bit errors. It is
// immutable and safe for concurrent use.
//
// Codewords are polynomials of length n. The k message bits are the
// coefficients of x^(n-k) through x^(n-1), and the parity bits are
// the coefficients of x^0 through x^(n-k-1). An error position i is
// the coefficient of x^i.
type Codec struct {
	n, k, t   int
	generator gf2.Poly64
	field     *gf2m.Field
	// step is the logarithm of beta, the primitive n-th root of
	// unity the code is defined over.
	step int
	// first is the exponent of the first of the 2t consecutive
	// roots beta^first, ..., beta^(first+2t-1) syndromes are taken at.
	first int
}

// NewCodec returns a Codec for the cyclic code of length n with k
// message bits and the given generator, with syndromes computed in
// the field defined by the given primitive polynomial.
//
// The number of correctable errors is derived from the generator: it
// is half the length of its longest run of consecutive roots
// beta^s, beta^(s+1), ..., with exponents taken mod n, capped at 2.
func NewCodec(n, k int, irreducible, generator gf2.Poly64) (*Codec, error) {
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: %d message bits for length %d", ErrConfiguration, k, n)
	}
	if generator.Degree() != n-k {
		return nil, fmt.Errorf("%w: generator %s has degree %d, want %d", ErrConfiguration, generator, generator.Degree(), n-k)
	}

	field, err := gf2m.NewField(irreducible)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	step, err := rootStep(field, n)
	if err != nil {
		return nil, err
	}

	// g must divide x^n - 1 for the code to be cyclic.
	xn1 := gf2.NewPoly(n+1).Flip(0, n)
	if xn1.Mod(generator) != 0 {
		return nil, fmt.Errorf("%w: generator %s does not divide x^%d - 1", ErrConfiguration, generator, n)
	}

	c := &Codec{n: n, k: k, generator: generator, field: field, step: step}
	run, first := c.longestRootRun()
	c.first = first
	c.t = run / 2
	if c.t > maxCorrectable {
		c.t = maxCorrectable
	}
	return c, nil
}

// longestRootRun returns the length of the longest run of consecutive
// roots beta^first, beta^(first+1), ... of the generator and the
// smallest such first in [0, n).
func (c *Codec) longestRootRun() (run, first int) {
	isRoot := make([]bool, c.n)
	for i := range isRoot {
		isRoot[i] = c.evalGenerator(i) == 0
	}
	// The generator has degree < n, so not every beta^i is a root.
	for s := 0; s < c.n; s++ {
		r := 0
		for r < c.n && isRoot[(s+r)%c.n] {
			r++
		}
		if r > run {
			run, first = r, s
		}
	}
	return run, first
}

// evalGenerator returns g(beta^i).
func (c *Codec) evalGenerator(i int) gf2m.T {
	x := c.field.Exp(i * c.step)
	var y gf2m.T
	for j := c.generator.Degree(); j >= 0; j-- {
		y = c.field.Times(y, x) ^ gf2m.T(c.generator>>uint(j)&1)
	}
	return y
}

// N returns the codeword length.
func (c *Codec) N() int {
	return c.n
}

// K returns the message length.
func (c *Codec) K() int {
	return c.k
}

// T returns the number of bit errors Decode corrects.
func (c *Codec) T() int {
	return c.t
}

// First returns the exponent of the first syndrome root, so that
// Syndromes are taken at beta^First(), ..., beta^(First()+2T()-1).
func (c *Codec) First() int {
	return c.first
}

// Generator returns the generator polynomial.
func (c *Codec) Generator() gf2.Poly64 {
	return c.generator
}

// Field returns the field syndromes are computed in.
func (c *Codec) Field() *gf2m.Field {
	return c.field
}

// Encode returns the systematic codeword for message, which must have
// length K(): message*x^(n-k) plus the remainder of that divided by
// the generator. The result is always divisible by the generator.
func (c *Codec) Encode(message gf2.Poly) (gf2.Poly, error) {
	if message.Len() != c.k {
		return gf2.Poly{}, fmt.Errorf("%w: message has %d bits, want %d", ErrLength, message.Len(), c.k)
	}
	shifted := message.Shift(c.n - c.k)
	parity := shifted.Mod(c.generator)
	return shifted.Plus(gf2.NewPolyFromPoly64(parity, c.n)), nil
}

// EncodeBlocks splits message into K()-bit blocks, most significant
// first, and returns their codewords. The message is padded with
// trailing zero bits to a multiple of K().
func (c *Codec) EncodeBlocks(message gf2.Poly) ([]gf2.Poly, error) {
	padded := message.Shift((c.k - message.Len()%c.k) % c.k)
	codewords := make([]gf2.Poly, 0, padded.Len()/c.k)
	for hi := padded.Len(); hi > 0; hi -= c.k {
		codeword, err := c.Encode(padded.Slice(hi-c.k, hi))
		if err != nil {
			return nil, err
		}
		codewords = append(codewords, codeword)
	}
	return codewords, nil
}

func (c *Codec) message(codeword gf2.Poly) gf2.Poly {
	return codeword.Slice(c.n-c.k, c.n)
}

// Decode corrects received, which must have length N(), and returns
// the message and the positions of the corrected bits in increasing
// order. If the errors can't be corrected, it returns
// ErrUncorrectable and no message.
func (c *Codec) Decode(received gf2.Poly) (gf2.Poly, []int, error) {
	if received.Len() != c.n {
		return gf2.Poly{}, nil, fmt.Errorf("%w: received word has %d bits, want %d", ErrLength, received.Len(), c.n)
	}

	if received.Mod(c.generator) == 0 {
		return c.message(received), nil, nil
	}

	if c.t == 0 {
		return gf2.Poly{}, nil, fmt.Errorf("%w: errors detected by a code that corrects none", ErrUncorrectable)
	}

	locator, err := c.errorLocator(c.Syndromes(received))
	if err != nil {
		return gf2.Poly{}, nil, err
	}

	positions := c.findRoots(locator)
	if len(positions) != locator.Degree() {
		return gf2.Poly{}, nil, fmt.Errorf("%w: locator of degree %d has %d roots", ErrUncorrectable, locator.Degree(), len(positions))
	}

	corrected := received.Flip(positions...)
	if corrected.Mod(c.generator) != 0 {
		return gf2.Poly{}, nil, fmt.Errorf("%w: correction at %v is not a codeword", ErrUncorrectable, positions)
	}
	return c.message(corrected), positions, nil
}
