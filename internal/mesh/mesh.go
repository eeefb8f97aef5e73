// Package mesh provides the unstructured-grid container that the draping
// engine reads element fields from and writes ply assignments onto.
// Geometry is a flat list of points plus per-cell point-index lists; scalar
// data is attached either per point or per cell. The native serialization is
// JSON; translation from richer mesh formats (VTK etc.) happens upstream.
package mesh

import (
	"errors"
	"fmt"
)

// ErrFieldNotFound is returned when a requested field exists neither as
// cell data nor as point data.
var ErrFieldNotFound = errors.New("field not found")

// Mesh is an unstructured grid with named scalar fields.
type Mesh struct {
	Points      [][3]float64         `json:"points,omitempty"`
	Cells       [][]int              `json:"cells"`
	PointData   map[string][]float64 `json:"point_data,omitempty"`
	CellData    map[string][]float64 `json:"cell_data,omitempty"`
	CellDataInt map[string][]int64   `json:"cell_data_int,omitempty"`
}

// New creates a mesh from geometry with no attached data.
func New(points [][3]float64, cells [][]int) *Mesh {
	return &Mesh{
		Points:      points,
		Cells:       cells,
		PointData:   make(map[string][]float64),
		CellData:    make(map[string][]float64),
		CellDataInt: make(map[string][]int64),
	}
}

// NumCells returns the number of cells in the mesh.
func (m *Mesh) NumCells() int {
	return len(m.Cells)
}

// NumPoints returns the number of points in the mesh.
func (m *Mesh) NumPoints() int {
	return len(m.Points)
}

// HasField reports whether name is obtainable as a cell field, either
// directly or by translating an existing point field.
func (m *Mesh) HasField(name string) bool {
	if _, ok := m.CellData[name]; ok {
		return true
	}
	_, ok := m.PointData[name]
	return ok
}

// CellField returns the cell array for name. The returned slice is the
// mesh's own storage; callers must not mutate it during evaluation.
func (m *Mesh) CellField(name string) ([]float64, error) {
	vals, ok := m.CellData[name]
	if !ok {
		return nil, fmt.Errorf("%w: cell field %q", ErrFieldNotFound, name)
	}
	return vals, nil
}

// EnsureCellField makes name available as a cell field. If it already is,
// this is a no-op, so repeated calls yield identical values. If only a
// point field exists, it is translated by averaging the point values over
// each cell's points.
func (m *Mesh) EnsureCellField(name string) error {
	if _, ok := m.CellData[name]; ok {
		return nil
	}
	pvals, ok := m.PointData[name]
	if !ok {
		return fmt.Errorf("%w: %q is neither cell nor point data", ErrFieldNotFound, name)
	}
	cvals := make([]float64, len(m.Cells))
	for i, cell := range m.Cells {
		if len(cell) == 0 {
			continue
		}
		var sum float64
		for _, p := range cell {
			sum += pvals[p]
		}
		cvals[i] = sum / float64(len(cell))
	}
	m.setCellData(name, cvals)
	return nil
}

// SetCellField adds or overwrites a float cell array.
func (m *Mesh) SetCellField(name string, values []float64) {
	m.setCellData(name, values)
}

// SetCellFieldInt adds or overwrites an integer cell array.
func (m *Mesh) SetCellFieldInt(name string, values []int64) {
	if m.CellDataInt == nil {
		m.CellDataInt = make(map[string][]int64)
	}
	m.CellDataInt[name] = values
}

func (m *Mesh) setCellData(name string, values []float64) {
	if m.CellData == nil {
		m.CellData = make(map[string][]float64)
	}
	m.CellData[name] = values
}

// Centroids returns the centroid of every cell.
func (m *Mesh) Centroids() [][3]float64 {
	out := make([][3]float64, len(m.Cells))
	for i, cell := range m.Cells {
		if len(cell) == 0 {
			continue
		}
		var c [3]float64
		for _, p := range cell {
			pt := m.Points[p]
			c[0] += pt[0]
			c[1] += pt[1]
			c[2] += pt[2]
		}
		n := float64(len(cell))
		out[i] = [3]float64{c[0] / n, c[1] / n, c[2] / n}
	}
	return out
}

// Validate checks internal consistency: cell point indices in range and
// every data array matching its cardinality.
func (m *Mesh) Validate() error {
	np := len(m.Points)
	for i, cell := range m.Cells {
		for _, p := range cell {
			if p < 0 || p >= np {
				return fmt.Errorf("cell %d references point %d, mesh has %d points", i, p, np)
			}
		}
	}
	for name, vals := range m.PointData {
		if len(vals) != np {
			return fmt.Errorf("point field %q has %d values, mesh has %d points", name, len(vals), np)
		}
	}
	nc := len(m.Cells)
	for name, vals := range m.CellData {
		if len(vals) != nc {
			return fmt.Errorf("cell field %q has %d values, mesh has %d cells", name, len(vals), nc)
		}
	}
	for name, vals := range m.CellDataInt {
		if len(vals) != nc {
			return fmt.Errorf("cell field %q has %d values, mesh has %d cells", name, len(vals), nc)
		}
	}
	return nil
}
