package bch

import (
	"fmt"

	"github.com/akalin/gobch/gf2"
	"github.com/akalin/gobch/gf2m"
)

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Order returns the multiplicative order of base modulo modulus, i.e.
// the smallest k > 0 with base^k = 1 (mod modulus). For base 2 and an
// odd length n, this is the smallest m such that n divides 2^m - 1.
func Order(base, modulus int) (int, error) {
	if modulus < 2 {
		return 0, fmt.Errorf("%w: modulus %d < 2", ErrConfiguration, modulus)
	}
	base %= modulus
	if base < 0 {
		base += modulus
	}
	if gcd(base, modulus) != 1 {
		return 0, fmt.Errorf("%w: %d is not invertible mod %d", ErrConfiguration, base, modulus)
	}

	x := base
	for k := 1; ; k++ {
		if x == 1 {
			return k, nil
		}
		x = x * base % modulus
	}
}

// Coset returns the cyclotomic coset {i, 2i, 4i, ...} mod n, in the
// order generated. n must be odd.
func Coset(i, n int) []int {
	if n <= 0 || n%2 == 0 {
		panic("invalid coset modulus")
	}
	i %= n
	if i < 0 {
		i += n
	}
	coset := []int{i}
	for c := 2 * i % n; c != i; c = 2 * c % n {
		coset = append(coset, c)
	}
	return coset
}

// rootStep returns s such that beta = alpha^s is a primitive n-th
// root of unity in f.
func rootStep(f *gf2m.Field, n int) (int, error) {
	if n <= 0 || f.Order()%n != 0 {
		return 0, fmt.Errorf("%w: %d does not divide %d", ErrConfiguration, n, f.Order())
	}
	return f.Order() / n, nil
}

// MinimalPoly returns the minimal polynomial over GF(2) of beta^i,
// where beta is a primitive n-th root of unity in f. It is the
// product of (x - beta^c) over the cyclotomic coset of i mod n.
func MinimalPoly(f *gf2m.Field, i, n int) (gf2.Poly64, error) {
	step, err := rootStep(f, n)
	if err != nil {
		return 0, err
	}

	prod := gf2m.Poly{1}
	for _, c := range Coset(i, n) {
		prod = f.PolyTimes(prod, gf2m.Poly{f.Exp(c * step), 1})
	}

	p, err := binaryPoly(prod)
	if err != nil {
		return 0, fmt.Errorf("minimal polynomial of beta^%d: %w", i, err)
	}
	return p, nil
}

// binaryPoly returns p as a polynomial over GF(2), or ErrConsistency
// if p has a coefficient outside {0, 1}. The product over a whole
// cyclotomic coset always lies in GF(2).
func binaryPoly(p gf2m.Poly) (gf2.Poly64, error) {
	var q gf2.Poly64
	for j, c := range p {
		switch c {
		case 0:
		case 1:
			q |= 1 << uint(j)
		default:
			return 0, fmt.Errorf("%w: coefficient of x^%d is %d", ErrConsistency, j, c)
		}
	}
	return q, nil
}

// PowerMap returns the map from beta^i to i for 1 <= i <= n, where
// beta is a primitive n-th root of unity in f. It has exactly n
// entries iff beta really has order n.
func PowerMap(f *gf2m.Field, n int) (map[gf2m.T]int, error) {
	step, err := rootStep(f, n)
	if err != nil {
		return nil, err
	}
	powers := make(map[gf2m.T]int, n)
	for i := 1; i <= n; i++ {
		powers[f.Exp(i*step)] = i
	}
	return powers, nil
}
