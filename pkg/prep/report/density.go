package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// kdePoints is the resolution of each rendered density curve.
const kdePoints = 128

// renderDensityPDF draws one Gaussian kernel density curve per top term
// onto a single figure and saves it as a PDF.
func renderDensityPDF(rep *Report, opts Options) error {
	p := plot.New()
	if opts.Title != "" {
		p.Title.Text = opts.Title
	}
	p.X.Label.Text = "weight"
	p.Y.Label.Text = "density"

	for i, ts := range rep.Top {
		line, err := plotter.NewLine(densityCurve(ts.Values))
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s (%.4f)", ts.Term, ts.Rank), line)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, opts.PDFPath)
}

// densityCurve evaluates a Gaussian KDE of the values on a regular grid
// spanning the data plus three bandwidths on either side.
func densityCurve(values []float64) plotter.XYs {
	h := bandwidth(values)

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo -= 3 * h
	hi += 3 * h

	pts := make(plotter.XYs, kdePoints)
	step := (hi - lo) / float64(kdePoints-1)
	norm := 1 / (float64(len(values)) * h * math.Sqrt(2*math.Pi))
	for i := range pts {
		x := lo + float64(i)*step
		var density float64
		for _, v := range values {
			z := (x - v) / h
			density += math.Exp(-0.5 * z * z)
		}
		pts[i].X = x
		pts[i].Y = density * norm
	}
	return pts
}

// bandwidth is Silverman's rule of thumb, floored so that constant-valued
// distributions still render as a narrow bump instead of dividing by zero.
func bandwidth(values []float64) float64 {
	sigma := stat.StdDev(values, nil)
	h := 1.06 * sigma * math.Pow(float64(len(values)), -0.2)
	if h <= 0 || math.IsNaN(h) {
		return 0.1
	}
	return h
}
