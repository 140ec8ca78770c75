package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc/internal/errors"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 4.0, Add(2, 2))
	assert.Equal(t, -1.0, Add(2, -3))
	assert.InDelta(t, 0.3, Add(0.1, 0.2), 1e-12)
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, 0.0, Subtract(2, 2))
	assert.Equal(t, 5.0, Subtract(2, -3))
	assert.Equal(t, -7.5, Subtract(-2.5, 5))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, 6.0, Multiply(2, 3))
	assert.Equal(t, -6.0, Multiply(2, -3))
	assert.Equal(t, 0.0, Multiply(0, 12345))
}

func TestDivide(t *testing.T) {
	got, err := Divide(8, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = Divide(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, got)

	got, err = Divide(-9, 3)
	require.NoError(t, err)
	assert.Equal(t, -3.0, got)
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 2.5, math.MaxFloat64} {
		got, err := Divide(a, 0)
		require.Error(t, err, "dividing %g by zero", a)
		assert.ErrorIs(t, err, errors.ErrDivisionByZero)
		assert.Equal(t, errors.ErrorDivisionByZero, errors.CodeOf(err))
		assert.Equal(t, 0.0, got)
	}
}

func TestIdentities(t *testing.T) {
	pairs := [][2]float64{{2, 2}, {-3, 7}, {0.5, 0.25}, {100, -0.1}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, a+b, Add(a, b))
		assert.Equal(t, a-b, Subtract(a, b))
		assert.Equal(t, a*b, Multiply(a, b))

		q, err := Divide(a, b)
		require.NoError(t, err)
		assert.Equal(t, a/b, q)
	}
}
