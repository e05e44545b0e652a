// Package render draws series as overlaid line plots.
package render

import (
	"image"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default window size in pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 720
)

// NewPlot builds a plot titled with the dataset name holding one line per
// series, all on the same axes. Text that is not numeric is placed on a
// categorical axis instead of failing.
func NewPlot(ds *models.Dataset) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ds.Name

	xs := make([][]string, len(ds.Series))
	ys := make([][]string, len(ds.Series))
	for i, s := range ds.Series {
		xs[i] = s.X
		ys[i] = s.Y
	}
	xAxis := newAxis(xs...)
	yAxis := newAxis(ys...)

	for i, s := range ds.Series {
		if s.Len() == 0 {
			continue
		}

		pts := make(plotter.XYs, s.Len())
		for j := range pts {
			pts[j].X = xAxis.value(s.X[j])
			pts[j].Y = yAxis.value(s.Y[j])
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
	}

	if !xAxis.numeric && len(xAxis.labels) > 0 {
		p.NominalX(xAxis.labels...)
	}
	if !yAxis.numeric && len(yAxis.labels) > 0 {
		p.NominalY(yAxis.labels...)
	}

	return p, nil
}

// Rasterize draws p onto an image of the given pixel size.
func Rasterize(p *plot.Plot, widthPx, heightPx int) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(PixelsToLength(widthPx), PixelsToLength(heightPx)),
		vgimg.UseDPI(DPI),
	)
	p.Draw(draw.New(c))
	return c.Image()
}
