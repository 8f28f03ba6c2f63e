package gf2m

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyDegree(t *testing.T) {
	require.Equal(t, -1, Poly(nil).Degree())
	require.Equal(t, -1, Poly{0, 0}.Degree())
	require.Equal(t, 0, Poly{3}.Degree())
	require.Equal(t, 1, Poly{1, 2, 0}.Degree())
}

func TestPolyTimesEval(t *testing.T) {
	f := newTestField(t, 0x13)
	// (x + alpha)(x + alpha^2) has roots alpha and alpha^2.
	p := f.PolyTimes(Poly{f.Exp(1), 1}, Poly{f.Exp(2), 1})
	require.Equal(t, Poly{f.Exp(3), f.Exp(1) ^ f.Exp(2), 1}, p)
	for i := 0; i < f.Order(); i++ {
		y := f.PolyEval(p, f.Exp(i))
		if i == 1 || i == 2 {
			require.Equal(t, T(0), y, "i=%d", i)
		} else {
			require.NotEqual(t, T(0), y, "i=%d", i)
		}
	}

	require.Nil(t, f.PolyTimes(nil, p))
	require.Equal(t, T(0), f.PolyEval(nil, 5))
	require.Equal(t, T(7), f.PolyEval(Poly{7}, 5))
}
