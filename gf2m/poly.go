package gf2m

// Poly is a polynomial over GF(2^m), stored lowest-degree coefficient
// first. The zero polynomial may be nil or all zeros.
type Poly []T

// Degree returns the degree of p, ignoring trailing zero
// coefficients, or -1 if p is zero.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// PolyTimes returns the product of p and q as polynomials over f.
func (f *Field) PolyTimes(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	prod := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			prod[i+j] ^= f.Times(a, b)
		}
	}
	return prod
}

// PolyEval returns p(x) as an element of f, using Horner's rule.
func (f *Field) PolyEval(p Poly, x T) T {
	var y T
	for i := len(p) - 1; i >= 0; i-- {
		y = f.Times(y, x) ^ p[i]
	}
	return y
}
