package bch

import (
	"errors"
	"fmt"

	"github.com/akalin/gobch/gf2"
	"github.com/akalin/gobch/gf2m"
)

// candidateBudget caps the number of field polynomials tried by
// Synthesize.
const candidateBudget = 1 << 12

// A Code describes a binary BCH code of length N with K message bits,
// built from the roots beta^B, ..., beta^(B+D-2) of its generator,
// where beta is a primitive N-th root of unity in GF(2^M).
type Code struct {
	N, K, B, D, M int
	// Irreducible is the primitive polynomial defining GF(2^M).
	Irreducible gf2.Poly64
	Generator   gf2.Poly64
}

// T returns the designed error correction capability of c.
func (c Code) T() int {
	return (c.D - 1) / 2
}

func (c Code) String() string {
	return fmt.Sprintf("BCH(%d,%d,%d)", c.N, c.K, c.D)
}

// NewCodec returns a Codec for c.
func (c Code) NewCodec() (*Codec, error) {
	return NewCodec(c.N, c.K, c.Irreducible, c.Generator)
}

// candidateIterator yields the polynomials to try as the field
// modulus: x^m + x + 1 first, then every other degree-m polynomial
// with a nonzero constant term, in increasing order.
type candidateIterator struct {
	m      int
	budget int
	next   gf2.Poly64
}

func newCandidateIterator(m, budget int) *candidateIterator {
	return &candidateIterator{m: m, budget: budget}
}

func (it *candidateIterator) defaultCandidate() gf2.Poly64 {
	return 1<<uint(it.m) | 3
}

// Next returns the next candidate, or false if the candidates or the
// budget are exhausted.
func (it *candidateIterator) Next() (gf2.Poly64, bool) {
	if it.budget <= 0 {
		return 0, false
	}
	it.budget--

	if it.next == 0 {
		it.next = 1<<uint(it.m) | 1
		return it.defaultCandidate(), true
	}

	if it.next == it.defaultCandidate() {
		it.next += 2
	}
	if it.next.Degree() != it.m {
		return 0, false
	}
	p := it.next
	it.next += 2
	return p, true
}

// findField returns a field of degree m in which beta^1, ..., beta^n
// are distinct, for the first passing candidate polynomial.
func findField(n, m int) (*gf2m.Field, error) {
	it := newCandidateIterator(m, candidateBudget)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if !p.IsIrreducible() {
			continue
		}
		f, err := gf2m.NewField(p)
		if errors.Is(err, gf2m.ErrNotPrimitive) {
			continue
		} else if err != nil {
			return nil, err
		}
		powers, err := PowerMap(f, n)
		if err != nil {
			return nil, err
		}
		if len(powers) == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: no primitive polynomial of degree %d found in %d candidates", ErrConfiguration, m, candidateBudget)
}

// Synthesize returns the BCH code of length n whose generator has the
// roots beta^b, ..., beta^(b+d-2) and their conjugates. n must be odd,
// and the code has designed distance d.
func Synthesize(n, b, d int) (Code, error) {
	if n < 3 || n%2 == 0 {
		return Code{}, fmt.Errorf("%w: length %d must be odd and at least 3", ErrConfiguration, n)
	}
	if d < 2 || d > n {
		return Code{}, fmt.Errorf("%w: distance %d must be in [2, %d]", ErrConfiguration, d, n)
	}
	if b < 0 {
		return Code{}, fmt.Errorf("%w: negative starting exponent %d", ErrConfiguration, b)
	}

	m, err := Order(2, n)
	if err != nil {
		return Code{}, err
	}
	if m > gf2m.MaxDegree {
		return Code{}, fmt.Errorf("%w: length %d needs GF(2^%d), max is GF(2^%d)", ErrConfiguration, n, m, gf2m.MaxDegree)
	}

	f, err := findField(n, m)
	if err != nil {
		return Code{}, err
	}

	g := gf2.Poly64(1)
	for i := b; i <= b+d-2; i++ {
		minPoly, err := MinimalPoly(f, i, n)
		if err != nil {
			return Code{}, err
		}
		g, err = g.LCM(minPoly)
		if err != nil {
			return Code{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}

	k := n - g.Degree()
	if k < 1 {
		return Code{}, fmt.Errorf("%w: generator %s leaves no message bits", ErrConfiguration, g)
	}

	return Code{
		N:           n,
		K:           k,
		B:           b,
		D:           d,
		M:           m,
		Irreducible: f.Poly(),
		Generator:   g,
	}, nil
}
