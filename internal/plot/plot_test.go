package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drape/internal/mesh"
)

func quadMesh() *mesh.Mesh {
	points := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
		{0, 1, 0}, {1, 1, 0}, {2, 1, 0},
	}
	cells := [][]int{{0, 1, 4, 3}, {1, 2, 5, 4}}
	m := mesh.New(points, cells)
	m.SetCellField("total_thickness", []float64{0.001, 0.003})
	return m
}

func TestSave(t *testing.T) {
	t.Run("colored by scalar", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "plot.png")
		opts := Options{Scalar: "total_thickness", XAxis: "x", YAxis: "y"}
		require.NoError(t, Save(quadMesh(), opts, out, nil))

		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("missing scalar still plots", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "plain.png")
		opts := Options{Scalar: "nope", XAxis: "x", YAxis: "y"}
		require.NoError(t, Save(quadMesh(), opts, out, nil))

		_, err := os.Stat(out)
		assert.NoError(t, err)
	})

	t.Run("cell field as axis", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "field.png")
		opts := Options{Scalar: "total_thickness", XAxis: "total_thickness", YAxis: "y"}
		require.NoError(t, Save(quadMesh(), opts, out, nil))
	})

	t.Run("unknown axis field fails", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "bad.png")
		opts := Options{Scalar: "total_thickness", XAxis: "chord", YAxis: "y"}
		assert.Error(t, Save(quadMesh(), opts, out, nil))
	})

	t.Run("empty mesh fails", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "empty.png")
		m := mesh.New(nil, nil)
		assert.Error(t, Save(m, Options{XAxis: "x", YAxis: "y"}, out, nil))
	})
}
