package bch

import (
	"fmt"

	"github.com/akalin/gobch/gf2"
	"github.com/akalin/gobch/gf2m"
)

// Syndromes returns S_s, ..., S_(s+2t-1) for received, where s =
// First() and S_j = received(beta^j). They are all zero for a
// codeword.
func (c *Codec) Syndromes(received gf2.Poly) []gf2m.T {
	syndromes := make([]gf2m.T, 2*c.t)
	for _, i := range received.Support() {
		for j := range syndromes {
			syndromes[j] ^= c.field.Exp((c.first + j) * i % c.n * c.step)
		}
	}
	return syndromes
}

// errorLocator solves for the error locator
//
//	Lambda(x) = (1 + X_1 x)(1 + X_2 x) = 1 + Lambda_1 x + Lambda_2 x^2
//
// from the syndromes, where X_l = beta^(position of error l). With at
// most two errors, S_j = X_1^j + X_2^j, and each X_l satisfies
// X^2 + Lambda_1 X + Lambda_2 = 0, so for any j
//
//	[S_(j+1) S_j    ] [Lambda_1]   [S_(j+2)]
//	[S_(j+2) S_(j+1)] [Lambda_2] = [S_(j+3)].
func (c *Codec) errorLocator(syndromes []gf2m.T) (gf2m.Poly, error) {
	if c.t == 1 {
		return c.singleErrorLocator(syndromes)
	}

	f := c.field
	s0, s1, s2, s3 := syndromes[0], syndromes[1], syndromes[2], syndromes[3]
	det := f.Times(s1, s1) ^ f.Times(s0, s2)
	if det == 0 {
		// The determinant is X_1^s X_2^s (X_1 + X_2)^2 for two
		// errors, so a singular system means a single error or
		// at least three.
		return c.singleErrorLocator(syndromes)
	}

	lambda1, err := f.Div(f.Times(s1, s2)^f.Times(s0, s3), det)
	if err != nil {
		return nil, err
	}
	lambda2, err := f.Div(f.Times(s2, s2)^f.Times(s1, s3), det)
	if err != nil {
		return nil, err
	}
	return gf2m.Poly{1, lambda1, lambda2}, nil
}

// singleErrorLocator returns 1 + X x for the single error X =
// S_(s+1)/S_s, or ErrUncorrectable if the syndromes aren't the
// powers X^s, X^(s+1), ... of one location.
func (c *Codec) singleErrorLocator(syndromes []gf2m.T) (gf2m.Poly, error) {
	f := c.field
	x, err := f.Div(syndromes[1], syndromes[0])
	if err != nil || x == 0 {
		return nil, fmt.Errorf("%w: syndromes %v locate no single error", ErrUncorrectable, syndromes)
	}
	for j, s := range syndromes {
		if f.Pow(x, c.first+j) != s {
			return nil, fmt.Errorf("%w: syndromes of more than one error", ErrUncorrectable)
		}
	}
	return gf2m.Poly{1, x}, nil
}

// findRoots returns the positions i in [0, n) with
// locator(beta^-i) = 0, in increasing order.
func (c *Codec) findRoots(locator gf2m.Poly) []int {
	var positions []int
	for i := 0; i < c.n; i++ {
		if c.field.PolyEval(locator, c.field.Exp(-i*c.step)) == 0 {
			positions = append(positions, i)
		}
	}
	return positions
}
