package gf2

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParsePoly(t *testing.T) {
	p, err := ParsePoly("1011")
	require.NoError(t, err)
	require.Equal(t, 4, p.Len())
	require.Equal(t, []int{0, 1, 3}, p.Support())
	require.Equal(t, 3, p.Degree())
	require.Equal(t, "1011", p.String())

	p, err = ParsePoly("0000")
	require.NoError(t, err)
	require.True(t, p.IsZero())
	require.Equal(t, "0000", p.String())

	_, err = ParsePoly("10x1")
	require.True(t, errors.Is(err, ErrInvalidBit), "err=%v", err)
}

func TestPolyLong(t *testing.T) {
	s := "1" + strings.Repeat("0", 199) + "1"
	p, err := ParsePoly(s)
	require.NoError(t, err)
	require.Equal(t, 201, p.Len())
	require.Equal(t, []int{0, 200}, p.Support())
	require.Equal(t, 2, p.Weight())
	require.Equal(t, s, p.String())
}

func TestPolyFlip(t *testing.T) {
	p := NewPoly(70)
	q := p.Flip(0, 65, 69)
	require.True(t, p.IsZero())
	require.Equal(t, []int{0, 65, 69}, q.Support())
	require.Equal(t, 1, q.Coefficient(65))
	require.Equal(t, 0, q.Coefficient(64))
	require.True(t, q.Flip(0, 65, 69).Equal(p))

	require.PanicsWithValue(t, "coefficient index out of bounds", func() {
		p.Flip(70)
	})
}

func TestPolyShiftSlice(t *testing.T) {
	p, err := ParsePoly("1010101")
	require.NoError(t, err)
	shifted := p.Shift(8)
	require.Equal(t, "101010100000000", shifted.String())
	require.True(t, shifted.Slice(8, 15).Equal(p))
	require.Equal(t, "0000", shifted.Slice(0, 4).String())
	require.Equal(t, "10", shifted.Slice(7, 9).String())
}

func TestPolyFromPoly64(t *testing.T) {
	p := NewPolyFromPoly64(0x13, 8)
	require.Equal(t, "00010011", p.String())
	require.PanicsWithValue(t, "polynomial does not fit", func() {
		NewPolyFromPoly64(0x13, 4)
	})
}

func TestPolyModMatchesPoly64(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := Poly64(rapid.Uint64Range(0, 1<<62).Draw(t, "x"))
		m := Poly64(rapid.Uint64Range(1, 1<<20).Draw(t, "m"))
		p := NewPolyFromPoly64(x, 63)
		require.Equal(t, x.Mod(m), p.Mod(m))
	})
}

func TestPolyModLinear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 300).Draw(t, "n")
		m := Poly64(rapid.Uint64Range(1, 1<<32).Draw(t, "m"))
		a := NewPoly(n).Flip(rapid.SliceOfN(rapid.IntRange(0, n-1), 0, 10).Draw(t, "a")...)
		b := NewPoly(n).Flip(rapid.SliceOfN(rapid.IntRange(0, n-1), 0, 10).Draw(t, "b")...)
		require.Equal(t, a.Mod(m).Plus(b.Mod(m)), a.Plus(b).Mod(m))
	})
}
