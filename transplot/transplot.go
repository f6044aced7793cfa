//Package transplot draws the displacement series of one or more analyzed
//runs into a single figure, in the style customary for translocation papers:
//dashed lines with sparse open markers, head in reds, tail in greens, front
//monomer in blues.
package transplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	translo "github.com/jvens/translo"
)

//markEvery is the number of dumps between two consecutive markers on a
//series, so the markers don't smear into a band on long runs.
const markEvery = 300

func basicSeriesPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "t - ta (ns)"
	p.Y.Label.Text = "Δr / RF"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true
	return p
}

/*SeriesPlot produces a png plot with the head, tail and front-monomer series
  of every non-nil result, against the time axis anchored at each run's
  crossing. Nil slots (files the batch layer skipped) are simply left out.
  The extension must not be included in plotname. Returns an error or nil*/
func SeriesPlot(results []*translo.Result, title, plotname string) error {
	p := basicSeriesPlot(title)
	plotted := 0
	for key, res := range results {
		if res == nil || res.Series == nil {
			continue
		}
		for role := head; role <= front; role++ {
			line, marks, err := rolePlotters(res.Series, role, key, len(results))
			if err != nil {
				return err
			}
			p.Add(line, marks)
			if plotted == 0 {
				p.Legend.Add(roleNames[role], line, marks)
			}
		}
		plotted++
	}
	if plotted == 0 {
		return fmt.Errorf("SeriesPlot: no result to plot")
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}

//rolePlotters builds the dashed line and the thinned markers for one role of
//the series of file key out of steps.
func rolePlotters(s *translo.Series, role, key, steps int) (*plotter.Line, *plotter.Scatter, error) {
	xys := seriesXYs(s, role)
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, nil, err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(2)}
	line.LineStyle.Color = roleColor(role, key, steps)
	marks, err := plotter.NewScatter(thin(xys, markEvery))
	if err != nil {
		return nil, nil, err
	}
	marks.GlyphStyle.Shape = roleShape(role)
	marks.GlyphStyle.Radius = vg.Points(3)
	marks.GlyphStyle.Color = edgeColor(role)
	return line, marks, nil
}

func seriesXYs(s *translo.Series, role int) plotter.XYs {
	var y []float64
	switch role {
	case head:
		y = s.Head
	case tail:
		y = s.Tail
	default:
		y = s.Front
	}
	xys := make(plotter.XYs, len(s.Time))
	for i := range xys {
		xys[i].X = s.Time[i]
		xys[i].Y = y[i]
	}
	return xys
}

//thin keeps the first of every n points.
func thin(xys plotter.XYs, n int) plotter.XYs {
	out := make(plotter.XYs, 0, len(xys)/n+1)
	for i := 0; i < len(xys); i += n {
		out = append(out, xys[i])
	}
	return out
}
