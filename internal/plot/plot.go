// Package plot renders a 2-D scatter of cell centroids colored by a cell
// scalar, for quick inspection of draped meshes.
package plot

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"drape/internal/mesh"
)

// Options selects what to draw. XAxis and YAxis name either a coordinate
// axis ("x", "y", "z") or a cell field; Scalar names the cell field used
// for coloring.
type Options struct {
	Scalar string
	XAxis  string
	YAxis  string
}

// Save renders the mesh to an image file; the format follows the file
// extension. A missing scalar field degrades to an uncolored scatter, like
// plotting an undraped mesh.
func Save(m *mesh.Mesh, opts Options, outFile string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	n := m.NumCells()
	if n == 0 {
		return fmt.Errorf("mesh has no cells to plot")
	}

	xs, err := axisValues(m, opts.XAxis)
	if err != nil {
		return err
	}
	ys, err := axisValues(m, opts.YAxis)
	if err != nil {
		return err
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}

	p := plot.New()
	p.X.Label.Text = opts.XAxis
	p.Y.Label.Text = opts.YAxis

	if vals, ok := m.CellData[opts.Scalar]; ok {
		p.Title.Text = opts.Scalar
		styleByScalar(sc, vals)
	} else {
		log.Debug("scalar field not on mesh, plotting uncolored",
			zap.String("scalar", opts.Scalar))
	}
	p.Add(sc)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, outFile); err != nil {
		return fmt.Errorf("save plot %s: %w", outFile, err)
	}
	log.Info("plot saved", zap.String("file", outFile))
	return nil
}

func styleByScalar(sc *plotter.Scatter, vals []float64) {
	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max <= min {
		max = min + 1
	}
	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(min)
	cmap.SetMax(max)
	base := sc.GlyphStyle
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cmap.At(vals[i])
		if err != nil {
			c = color.Black
		}
		s := base
		s.Color = c
		return s
	}
}

// axisValues resolves an axis name to per-cell values: "x", "y", "z" map to
// centroid coordinates, anything else to a cell field.
func axisValues(m *mesh.Mesh, name string) ([]float64, error) {
	dim := -1
	switch name {
	case "x":
		dim = 0
	case "y":
		dim = 1
	case "z":
		dim = 2
	}
	if dim >= 0 {
		cents := m.Centroids()
		out := make([]float64, len(cents))
		for i, c := range cents {
			out[i] = c[dim]
		}
		return out, nil
	}
	vals, err := m.CellField(name)
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", name, err)
	}
	return vals, nil
}
