package drape

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"drape/internal/lamplan"
	"drape/internal/matdb"
)

// validatePlan checks every material, datum, and field reference in the
// plan before any evaluation starts, and returns the deduplicated, sorted
// set of cell fields the evaluation will read. Operator/operand legality is
// enforced here so the evaluator only ever sees well-typed pairs.
func validatePlan(plan *lamplan.Plan, grid Grid, db matdb.DB, log *zap.Logger) ([]string, error) {
	need := make(map[string]struct{})

	requireDatum := func(name string) (*lamplan.Datum, error) {
		d, ok := plan.Datums[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDatum, name)
		}
		return d, nil
	}

	for i, ply := range plan.Plies {
		if !db.Has(ply.Mat) {
			return nil, fmt.Errorf("ply %d: %w: %q", i, ErrUnknownMaterial, ply.Mat)
		}

		for j, cond := range ply.Conditions {
			need[cond.Field] = struct{}{}
			switch cond.Operand.Kind {
			case lamplan.OperandRange:
				if !cond.Operator.IsRange() {
					return nil, fmt.Errorf("ply %d condition %d: %w: operator %s takes a scalar operand",
						i, j, lamplan.ErrOperandArity, cond.Operator)
				}
			case lamplan.OperandScalar:
				if cond.Operator.IsRange() {
					return nil, fmt.Errorf("ply %d condition %d: %w: operator %s requires a [lo, hi] operand",
						i, j, lamplan.ErrOperandArity, cond.Operator)
				}
			case lamplan.OperandDatum:
				if cond.Operator.IsRange() {
					return nil, fmt.Errorf("ply %d condition %d: %w: operator %s requires a [lo, hi] operand",
						i, j, lamplan.ErrOperandArity, cond.Operator)
				}
				d, err := requireDatum(cond.Operand.Datum)
				if err != nil {
					return nil, fmt.Errorf("ply %d condition %d: %w", i, j, err)
				}
				need[d.Base] = struct{}{}
			}
		}

		switch ply.Thickness.Kind {
		case lamplan.ThicknessDatum:
			d, err := requireDatum(ply.Thickness.Datum)
			if err != nil {
				return nil, fmt.Errorf("ply %d thickness: %w", i, err)
			}
			need[d.Base] = struct{}{}
		case lamplan.ThicknessExpression:
			for _, f := range ply.Thickness.Fields() {
				need[f] = struct{}{}
			}
		}
	}

	// Bases of declared datums must resolve even when no ply references
	// them yet.
	for name, d := range plan.Datums {
		if !grid.HasField(d.Base) {
			return nil, fmt.Errorf("datum %q: %w: base field %q", name, ErrUnknownField, d.Base)
		}
	}

	fields := make([]string, 0, len(need))
	for f := range need {
		if !grid.HasField(f) {
			return nil, fmt.Errorf("%w: %q is neither cell nor point data", ErrUnknownField, f)
		}
		fields = append(fields, f)
	}
	sort.Strings(fields)

	log.Debug("plan validated",
		zap.Int("plies", len(plan.Plies)),
		zap.Int("datums", len(plan.Datums)),
		zap.Strings("required_fields", fields))
	return fields, nil
}
