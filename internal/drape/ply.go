package drape

import (
	"fmt"
	"sort"

	"drape/internal/lamplan"
)

// Output field name suffixes and the aggregate thickness field.
const (
	suffixMaterial  = "material"
	suffixAngle     = "angle"
	suffixThickness = "thickness"

	// TotalThicknessField is the aggregate per-cell thickness array
	// written after all plies are placed.
	TotalThicknessField = "total_thickness"
)

// placement is a ply with its placement rank. Plies are ordered by
// (key, definition index) with a stable sort; seq is the resulting 1-based
// rank and appears zero-padded in output field names.
type placement struct {
	ply      *lamplan.Ply
	defIndex int
	seq      int
}

func orderPlies(plies []lamplan.Ply) []placement {
	order := make([]placement, len(plies))
	for i := range plies {
		order[i] = placement{ply: &plies[i], defIndex: i}
	}
	sort.SliceStable(order, func(a, b int) bool {
		if order[a].ply.Key != order[b].ply.Key {
			return order[a].ply.Key < order[b].ply.Key
		}
		return order[a].defIndex < order[b].defIndex
	})
	for i := range order {
		order[i].seq = i + 1
	}
	return order
}

func (p placement) fieldName(suffix string) string {
	return fmt.Sprintf("ply_%06d_%s_%d_%s", p.seq, p.ply.Parent, p.ply.Key, suffix)
}

// checkNames rejects a plan whose plies would emit colliding output field
// names.
func checkNames(order []placement) error {
	seen := make(map[string]int, 3*len(order))
	for _, p := range order {
		for _, suffix := range []string{suffixMaterial, suffixAngle, suffixThickness} {
			name := p.fieldName(suffix)
			if prev, ok := seen[name]; ok {
				return fmt.Errorf("%w: plies %d and %d both emit %q", ErrDuplicatePlyName, prev, p.defIndex, name)
			}
			seen[name] = p.defIndex
		}
	}
	return nil
}

// plyResult holds one ply's output arrays plus its mask cardinality.
// Cells outside the mask carry 0 in all three arrays.
type plyResult struct {
	material  []int64
	angle     []float64
	thickness []float64
	covered   int
}

// evaluatePly computes one ply's mask and output arrays. Plies are
// independent, so callers may run evaluatePly concurrently as long as the
// grid's cell fields stay untouched until every ply has finished.
func evaluatePly(ply *lamplan.Ply, grid Grid, datums map[string]*lamplan.Datum, matID int64, n int) (*plyResult, error) {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	for _, cond := range ply.Conditions {
		if err := applyCondition(mask, cond, grid, datums); err != nil {
			return nil, err
		}
	}

	thick, err := resolveThickness(ply.Thickness, grid, datums, n)
	if err != nil {
		return nil, err
	}

	res := &plyResult{
		material:  make([]int64, n),
		angle:     make([]float64, n),
		thickness: make([]float64, n),
	}
	for i, on := range mask {
		if !on {
			continue
		}
		res.material[i] = matID
		res.angle[i] = ply.Angle
		res.thickness[i] = thick[i]
		res.covered++
	}
	return res, nil
}
