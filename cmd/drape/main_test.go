package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drape/internal/mesh"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeGrid(t *testing.T, path string) {
	t.Helper()
	points := [][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	cells := [][]int{{0, 1}, {1, 2}, {2, 3}}
	m := mesh.New(points, cells)
	m.SetCellField("r", []float64{0, 1, 2})
	require.NoError(t, m.WriteFile(path))
}

func TestPipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	gridPath := filepath.Join(dir, "grid.json")
	dbPath := filepath.Join(dir, "matdb.json")
	outPath := filepath.Join(dir, "draped.json")

	writeFile(t, planPath, `
plies:
  - {mat: carbon, angle: 0, thickness: 0.001, parent: plate, conditions: [], key: 1}
`)
	writeFile(t, dbPath, `{"carbon": {"id": 7}}`)
	writeGrid(t, gridPath)

	rootCmd.SetArgs([]string{
		"--lamplan", planPath,
		"--grid", gridPath,
		"--matdb", dbPath,
		"--output", outPath,
	})
	require.NoError(t, rootCmd.Execute())

	out, err := mesh.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 7, 7}, out.CellDataInt["ply_000001_plate_1_material"])
	assert.Equal(t, []float64{0.001, 0.001, 0.001}, out.CellData["total_thickness"])
}

func TestBladeWorkflow(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "blade.yaml")
	writeFile(t, configPath, `
workdir: work
matdb: matdb.json
plies:
  - {mat: carbon, angle: 0, thickness: 0.002, parent: blade, conditions: [], key: 1}
`)
	writeFile(t, filepath.Join(dir, "matdb.json"), `{"carbon": {"id": 7}}`)
	writeGrid(t, filepath.Join(dir, "work", "b3_msh", "lm2.json"))

	rootCmd.SetArgs([]string{"blade", configPath})
	require.NoError(t, rootCmd.Execute())

	out, err := mesh.ReadFile(filepath.Join(dir, "work", "b3_drp", "draped.json"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.002, 0.002, 0.002}, out.CellData["total_thickness"])
}

func TestBladeMissingGrid(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "blade.yaml")
	writeFile(t, configPath, `
workdir: work
matdb: matdb.json
plies: []
`)
	writeFile(t, filepath.Join(dir, "matdb.json"), `{}`)

	rootCmd.SetArgs([]string{"blade", configPath})
	assert.Error(t, rootCmd.Execute())
}
