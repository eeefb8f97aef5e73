// Package drape assigns composite-material plies to mesh cells according to
// a laminate plan. For every ply it evaluates the plan's conditions against
// the mesh's cell fields, resolves the thickness spec, and writes per-ply
// material/angle/thickness cell arrays plus an aggregate total_thickness
// array back onto the mesh.
//
// Validation is exhaustive and runs before any evaluation, so a
// misconfigured plan fails with a single actionable error and leaves the
// mesh untouched. Ply evaluation fans out across a bounded worker group;
// write-back happens on the calling goroutine in placement order, so
// repeated runs on the same inputs produce bit-identical arrays.
package drape

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"drape/internal/lamplan"
	"drape/internal/matdb"
)

// Drape runs the full pipeline: validate, materialize required cell fields,
// order plies by (key, definition index), evaluate them, and write the
// results onto the grid.
func Drape(ctx context.Context, plan *lamplan.Plan, grid Grid, db matdb.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run_id", uuid.NewString()))

	n := grid.NumCells()
	if n == 0 {
		return fmt.Errorf("%w: mesh has no cells", ErrEmptyMesh)
	}

	fields, err := validatePlan(plan, grid, db, log)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := grid.EnsureCellField(f); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	order := orderPlies(plan.Plies)
	if err := checkNames(order); err != nil {
		return err
	}

	results := make([]*plyResult, len(order))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range order {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := evaluatePly(p.ply, grid, plan.Datums, int64(db.ID(p.ply.Mat)), n)
			if err != nil {
				return fmt.Errorf("ply %d (%s): %w", p.defIndex, p.ply.Mat, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Write-back and total accumulation run in placement order so the
	// float sum is reproducible across runs.
	total := make([]float64, n)
	for i, p := range order {
		res := results[i]
		grid.SetCellFieldInt(p.fieldName(suffixMaterial), res.material)
		grid.SetCellField(p.fieldName(suffixAngle), res.angle)
		grid.SetCellField(p.fieldName(suffixThickness), res.thickness)
		floats.Add(total, res.thickness)
		log.Debug("ply placed",
			zap.Int("seq", p.seq),
			zap.String("parent", p.ply.Parent),
			zap.Int("key", p.ply.Key),
			zap.String("mat", p.ply.Mat),
			zap.Int("covered", res.covered),
			zap.Int("cells", n))
	}
	grid.SetCellField(TotalThicknessField, total)

	log.Info("draping complete",
		zap.Int("plies", len(order)),
		zap.Int("cells", n))
	return nil
}
