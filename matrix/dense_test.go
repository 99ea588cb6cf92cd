package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dualgraph/srmp/matrix"
)

func TestNewDenseRejectsBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDenseSetAtRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
}

func TestDenseOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDenseRejectsNaNInfByDefault(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	err = m.Set(0, 0, math.NaN())
	require.True(t, errors.Is(err, matrix.ErrNaNInf))

	err = m.Set(0, 0, math.Inf(1))
	require.True(t, errors.Is(err, matrix.ErrNaNInf))
}

func TestDenseCloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 7))

	clone := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	v, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}
