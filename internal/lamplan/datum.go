package lamplan

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Datum is a named 1-D piecewise-linear function of a base field, given as
// sample points. Queries outside the sampled range clamp to the endpoint
// values.
type Datum struct {
	Base string

	xs, ys []float64
	pl     interp.PiecewiseLinear
}

// NewDatum validates the samples and fits the interpolant. The abscissa
// must be strictly increasing and hold at least two samples.
func NewDatum(base string, values [][]float64) (*Datum, error) {
	if base == "" {
		return nil, fmt.Errorf("%w: missing base field", ErrInvalidDatum)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidDatum, len(values))
	}
	xs := make([]float64, len(values))
	ys := make([]float64, len(values))
	for i, pair := range values {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: sample %d has %d values, want 2", ErrInvalidDatum, i, len(pair))
		}
		xs[i] = pair[0]
		ys[i] = pair[1]
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: x values must be strictly increasing (sample %d)", ErrInvalidDatum, i)
		}
	}
	d := &Datum{Base: base, xs: xs, ys: ys}
	if err := d.pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDatum, err)
	}
	return d, nil
}

// Eval interpolates the datum at q.
func (d *Datum) Eval(q float64) float64 {
	return d.pl.Predict(q)
}

// EvalAll interpolates the datum at every query value.
func (d *Datum) EvalAll(qs []float64) []float64 {
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = d.pl.Predict(q)
	}
	return out
}
