package drape

// Grid is the engine's view of a mesh. Cell fields read during evaluation
// are treated as immutable; the engine writes results back only through the
// Set methods, on the caller's goroutine.
type Grid interface {
	// NumCells returns the number of cells.
	NumCells() int

	// HasField reports whether name is obtainable as a cell field,
	// without mutating the grid.
	HasField(name string) bool

	// CellField returns an existing cell array of length NumCells().
	CellField(name string) ([]float64, error)

	// EnsureCellField makes name available as a cell field, translating
	// a point field if necessary. Idempotent.
	EnsureCellField(name string) error

	// SetCellField adds or overwrites a float cell array.
	SetCellField(name string, values []float64)

	// SetCellFieldInt adds or overwrites an integer cell array.
	SetCellFieldInt(name string, values []int64)
}
