package lamplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatum(t *testing.T) {
	t.Run("rejects missing base", func(t *testing.T) {
		_, err := NewDatum("", [][]float64{{0, 1}, {1, 2}})
		assert.ErrorIs(t, err, ErrInvalidDatum)
	})

	t.Run("rejects fewer than two samples", func(t *testing.T) {
		_, err := NewDatum("r", [][]float64{{0, 1}})
		assert.ErrorIs(t, err, ErrInvalidDatum)
	})

	t.Run("rejects non-increasing x", func(t *testing.T) {
		_, err := NewDatum("r", [][]float64{{0, 1}, {0, 2}})
		assert.ErrorIs(t, err, ErrInvalidDatum)

		_, err = NewDatum("r", [][]float64{{1, 1}, {0, 2}})
		assert.ErrorIs(t, err, ErrInvalidDatum)
	})

	t.Run("rejects malformed sample pairs", func(t *testing.T) {
		_, err := NewDatum("r", [][]float64{{0, 1}, {1, 2, 3}})
		assert.ErrorIs(t, err, ErrInvalidDatum)
	})
}

func TestDatumEval(t *testing.T) {
	d, err := NewDatum("r", [][]float64{{0, 0.001}, {2, 0.003}})
	require.NoError(t, err)

	t.Run("interpolates linearly", func(t *testing.T) {
		assert.InDelta(t, 0.002, d.Eval(1), 1e-12)
		assert.Equal(t, 0.001, d.Eval(0))
		assert.Equal(t, 0.003, d.Eval(2))
	})

	t.Run("clamps below the sampled range", func(t *testing.T) {
		assert.Equal(t, 0.001, d.Eval(-100))
	})

	t.Run("clamps above the sampled range", func(t *testing.T) {
		assert.Equal(t, 0.003, d.Eval(100))
	})

	t.Run("evaluates whole arrays", func(t *testing.T) {
		got := d.EvalAll([]float64{-1, 0, 1, 2, 3})
		require.Len(t, got, 5)
		assert.Equal(t, 0.001, got[0])
		assert.Equal(t, 0.001, got[1])
		assert.InDelta(t, 0.002, got[2], 1e-12)
		assert.Equal(t, 0.003, got[3])
		assert.Equal(t, 0.003, got[4])
	})
}
