package drape

import "errors"

// Configuration error kinds. All abort the current Drape invocation before
// any ply arrays are written; numeric anomalies (NaN, Inf) during
// evaluation are data, not errors.
var (
	// ErrUnknownMaterial indicates a ply referencing a material the
	// database does not contain.
	ErrUnknownMaterial = errors.New("unknown material")

	// ErrUnknownField indicates a referenced field that is neither cell
	// nor point data on the mesh.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownDatum indicates a condition operand or thickness spec
	// referencing a datum the plan does not declare.
	ErrUnknownDatum = errors.New("unknown datum")

	// ErrDuplicatePlyName indicates two plies that would emit identical
	// output field names.
	ErrDuplicatePlyName = errors.New("duplicate ply name")

	// ErrEmptyMesh indicates a mesh with no cells.
	ErrEmptyMesh = errors.New("empty mesh")
)
