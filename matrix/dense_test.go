package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/louiserondia/npuzzle/matrix"
)

func TestNewDenseRejectsBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDenseSetAtRoundTrip(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 3, d.Cols())

	require.NoError(t, d.Set(1, 2, 42))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	v, err = d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestDenseAtOutOfRange(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = d.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, d.Set(5, 5, 1), matrix.ErrOutOfRange)
}

func TestDenseCloneIsIndependent(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 7))

	clone := d.Clone()
	require.NoError(t, d.Set(0, 0, 9))

	v, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v, "clone must not observe mutations to the original")
}
