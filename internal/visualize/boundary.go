// Package visualize renders the fitted decision boundary over the climate
// feature space.
package visualize

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/shuozhangthu/SIF-water/pkg/errors"
)

// SavePlot writes a scatter of the two feature columns colored by class,
// with the fitted boundary line w0·x + w1·y + b = 0, to path. The output
// format follows the file extension (e.g. .png).
func SavePlot(path string, X mat.Matrix, y *mat.VecDense, coef []float64, intercept float64) error {
	n, c := X.Dims()
	if n == 0 {
		return errors.NewValueError("visualize.SavePlot", "no samples to plot")
	}
	if c != 2 {
		return errors.NewDimensionError("visualize.SavePlot", 2, c, 1)
	}
	if y.Len() != n {
		return errors.NewDimensionError("visualize.SavePlot", n, y.Len(), 0)
	}
	if len(coef) != 2 {
		return errors.NewDimensionError("visualize.SavePlot", 2, len(coef), 1)
	}

	p := plot.New()
	p.Title.Text = "Climate SVM decision boundary"
	p.X.Label.Text = "Precipitation"
	p.Y.Label.Text = "Temperature"

	// Two classes at most; the splitter guarantees labels match X row order.
	classValue := y.AtVec(0)
	var lower, upper plotter.XYs
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		pt := plotter.XY{X: X.At(i, 0), Y: X.At(i, 1)}
		if y.AtVec(i) == classValue {
			lower = append(lower, pt)
		} else {
			upper = append(upper, pt)
		}
		xMin = math.Min(xMin, pt.X)
		xMax = math.Max(xMax, pt.X)
		yMin = math.Min(yMin, pt.Y)
		yMax = math.Max(yMax, pt.Y)
	}

	if err := addScatter(p, lower, color.RGBA{B: 255, A: 255}); err != nil {
		return err
	}
	if err := addScatter(p, upper, color.RGBA{R: 255, A: 255}); err != nil {
		return err
	}

	if line := boundaryLine(coef, intercept, xMin, xMax, yMin, yMax); line != nil {
		l, err := plotter.NewLine(line)
		if err != nil {
			return errors.Wrap(err, "boundary line")
		}
		l.LineStyle.Color = color.RGBA{G: 160, A: 255}
		p.Add(l)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save plot to %s", path)
	}
	return nil
}

func addScatter(p *plot.Plot, pts plotter.XYs, col color.Color) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "scatter")
	}
	s.GlyphStyle.Color = col
	s.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(s)
	return nil
}

// boundaryLine solves w0·x + w1·y + b = 0 across the visible range. A nil
// return means the boundary is degenerate (both weights near zero).
func boundaryLine(coef []float64, intercept, xMin, xMax, yMin, yMax float64) plotter.XYs {
	const eps = 1e-12
	switch {
	case math.Abs(coef[1]) > eps:
		yAt := func(x float64) float64 { return -(coef[0]*x + intercept) / coef[1] }
		return plotter.XYs{
			{X: xMin, Y: yAt(xMin)},
			{X: xMax, Y: yAt(xMax)},
		}
	case math.Abs(coef[0]) > eps:
		x := -intercept / coef[0]
		return plotter.XYs{
			{X: x, Y: yMin},
			{X: x, Y: yMax},
		}
	default:
		return nil
	}
}
