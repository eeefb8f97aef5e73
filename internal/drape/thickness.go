package drape

import (
	"fmt"

	"drape/internal/lamplan"
)

// resolveThickness produces the ply's per-cell thickness before masking.
// Expression results keep whatever IEEE values arithmetic produces; a
// division by zero surfaces as ±Inf or NaN in the output rather than as an
// error.
func resolveThickness(t lamplan.Thickness, grid Grid, datums map[string]*lamplan.Datum, n int) ([]float64, error) {
	switch t.Kind {
	case lamplan.ThicknessConstant:
		out := make([]float64, n)
		for i := range out {
			out[i] = t.Constant
		}
		return out, nil

	case lamplan.ThicknessDatum:
		d, ok := datums[t.Datum]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDatum, t.Datum)
		}
		base, err := grid.CellField(d.Base)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, d.Base)
		}
		return d.EvalAll(base), nil

	case lamplan.ThicknessExpression:
		names := t.Fields()
		fields := make(map[string][]float64, len(names))
		for _, name := range names {
			vals, err := grid.CellField(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
			}
			fields[name] = vals
		}
		out := make([]float64, n)
		params := make(map[string]interface{}, len(names))
		for i := range out {
			for _, name := range names {
				params[name] = fields[name][i]
			}
			res, err := t.Expr.Evaluate(params)
			if err != nil {
				return nil, fmt.Errorf("evaluate thickness %q: %w", t.Raw, err)
			}
			v, ok := res.(float64)
			if !ok {
				return nil, fmt.Errorf("thickness %q yields %T, want float", t.Raw, res)
			}
			out[i] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("unhandled thickness kind %d", t.Kind)
}
