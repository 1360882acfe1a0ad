package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"CurveBoard/internal/editor"
	"CurveBoard/internal/state"
)

const (
	pageMargin = 10.0       // mm
	pxToMM     = 25.4 / 96.0 // canvas pixels are taken as 1/96 inch
)

// frame maps canvas coordinates onto an output area.
type frame struct {
	box    rect.Rect
	scale  float64
	offset vec.Vec2
}

// fit scales box into a w x h area with the given margin, never enlarging
// beyond maxScale.
func fit(box rect.Rect, w, h, margin, maxScale float64) frame {
	bw, bh := box.URx-box.LLx, box.URy-box.LLy
	scale := maxScale
	if bw > 0 && (w-2*margin)/bw < scale {
		scale = (w - 2*margin) / bw
	}
	if bh > 0 && (h-2*margin)/bh < scale {
		scale = (h - 2*margin) / bh
	}
	return frame{box: box, scale: scale, offset: vec.Vec2{X: margin, Y: margin}}
}

func (f frame) apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.X - f.box.LLx, Y: p.Y - f.box.LLy}.Mul(f.scale).Add(f.offset)
}

// PDF writes s onto a single landscape A4 page.
func PDF(w io.Writer, s state.Scene) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()

	if box, ok := s.Bounds(0); ok {
		pageW, pageH := p.GetPageSize()
		f := fit(box, pageW, pageH, pageMargin, pxToMM)
		for _, c := range s.Curves {
			pdfCurve(p, f, c)
		}
		for _, pt := range s.Drawing {
			pdfMarker(p, f, pt)
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("pdf export: %w", err)
	}
	editor.Logger().Debug("pdf written", "curves", len(s.Curves))
	return nil
}

func pdfCurve(p *gofpdf.Fpdf, f frame, c state.CurveShape) {
	support := c.Support()
	for i := range support {
		support[i] = f.apply(support[i])
	}

	p.SetDrawColor(0xe0, 0xe1, 0xdd)
	p.SetLineWidth(0.1)
	for i := 1; i < len(support); i++ {
		p.Line(support[i-1].X, support[i-1].Y, support[i].X, support[i].Y)
	}

	col := state.ColorOrDefault(c.Color)
	p.SetDrawColor(int(col.R), int(col.G), int(col.B))
	p.SetLineWidth(2 * state.SampleRadius * f.scale)
	switch c.Degree {
	case state.Cubic:
		s0, c0, c1, s1 := support[0], support[1], support[2], support[3]
		p.CurveBezierCubic(s0.X, s0.Y, c0.X, c0.Y, c1.X, c1.Y, s1.X, s1.Y, "D")
	default:
		s0, c0, s1 := support[0], support[1], support[2]
		p.Curve(s0.X, s0.Y, c0.X, c0.Y, s1.X, s1.Y, "D")
	}

	pdfMarker(p, f, c.Start)
	for _, pt := range c.Controls {
		pdfMarker(p, f, pt)
	}
	pdfMarker(p, f, c.End)
}

func pdfMarker(p *gofpdf.Fpdf, f frame, pt state.Point) {
	col := state.ColorOrDefault(pt.Color)
	p.SetFillColor(int(col.R), int(col.G), int(col.B))
	at := f.apply(pt.Pos)
	if pt.Kind == state.Anchor {
		side := state.AnchorSize * f.scale
		p.Rect(at.X-side/2, at.Y-side/2, side, side, "F")
		return
	}
	p.Circle(at.X, at.Y, pt.Radius*f.scale, "F")
}
