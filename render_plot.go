package gwaskit

import (
	"image"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// width of the distance legend to the right of a coloured manhattan plot
const colourBarWidth = 1.2 * vg.Inch

func manhattanPlot(m *Manhattan) (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = m.Title
	p.X.Label.Text = m.XLabel
	p.Y.Label.Text = m.YLabel
	p.Y.Min = 0
	p.Y.Max = m.YMax

	if len(m.Points) == 0 {
		p.X.Min, p.X.Max = 0, 1
	} else {
		xys := make(plotter.XYs, len(m.Points))
		for i, pt := range m.Points {
			xys[i].X = pt.X
			xys[i].Y = pt.Y
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, errors.Wrap(err, "manhattan scatter")
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(m.PointRadius)
		s.GlyphStyle.Color = m.PointColour

		if m.Colour != nil {
			s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
				gs := s.GlyphStyle
				gs.Color = m.Colour.At(m.Points[i].Distance)
				return gs
			}
		}

		p.Add(s)
	}

	if m.HasLine {
		line := plotter.NewFunction(func(float64) float64 { return m.Line })
		line.Color = red
		line.Width = vg.Points(1)
		p.Add(line)
	}

	if m.Ticks != nil {
		ticks := make([]plot.Tick, len(m.Ticks))
		for i, t := range m.Ticks {
			ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}

	return p, nil
}

// legendImage is a one pixel wide strip of s, Max at the top. The pdf
// backend only embeds 8 bit images.
func legendImage(s *ColourScale, n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, n))
	for y := 0; y < n; y++ {
		d := s.Max - (s.Max-s.Min)*float64(y)/float64(n-1)
		img.SetNRGBA(0, y, s.Opaque(d))
	}
	return img
}

func colourBar(s *ColourScale) *plot.Plot {
	bar := plot.New()
	bar.Add(plotter.NewImage(legendImage(s, 256), 0, s.Min, 1, s.Max))
	bar.HideX()
	bar.Y.Min, bar.Y.Max = s.Min, s.Max
	bar.Y.Label.Text = "Distance"
	bar.Y.Padding = 0
	return bar
}

func saveManhattan(m *Manhattan, path string) error {
	p, err := manhattanPlot(m)
	if err != nil {
		return err
	}

	w := vg.Length(m.Width) * vg.Inch
	h := vg.Length(m.Height) * vg.Inch

	return writeCanvas(path, w, h, func(dc draw.Canvas) {
		if m.Colour == nil {
			p.Draw(dc)
			return
		}
		p.Draw(draw.Crop(dc, 0, -colourBarWidth, 0, 0))
		colourBar(m.Colour).Draw(draw.Crop(dc, w-colourBarWidth+vg.Points(20), 0, 0, 0))
	})
}

func qqPlot(q *QQ) (*plot.Plot, error) {
	p := plot.New()

	p.X.Label.Text = "Expected " + pvalueLabel
	p.Y.Label.Text = "Observed " + pvalueLabel
	p.X.Min, p.X.Max = -0.5, q.Max+0.5
	p.Y.Min, p.Y.Max = -0.5, q.Max+0.5

	ref, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: q.Max, Y: q.Max}})
	if err != nil {
		return nil, errors.Wrap(err, "qq reference line")
	}
	ref.Color = black
	p.Add(ref)

	if len(q.Observed) > 0 {
		xys := make(plotter.XYs, len(q.Observed))
		for i := range q.Observed {
			xys[i].X = q.Expected[i]
			xys[i].Y = q.Observed[i]
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, errors.Wrap(err, "qq scatter")
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(1.5)
		s.GlyphStyle.Color = blue
		p.Add(s)
	}

	return p, nil
}

func saveQQ(q *QQ, path string) error {
	p, err := qqPlot(q)
	if err != nil {
		return err
	}

	return writeCanvas(path, 7*vg.Inch, 7*vg.Inch, p.Draw)
}

// writeCanvas renders into a canvas of the format named by the extension
// of path and writes it out. A failed write leaves no file behind.
func writeCanvas(path string, w, h vg.Length, render func(draw.Canvas)) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return errors.Wrapf(err, "canvas for %s", path)
	}

	render(draw.New(c))

	return writeOutput(path, func(out io.Writer) error {
		_, err := c.WriteTo(out)
		return err
	})
}
