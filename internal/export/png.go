package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"CurveBoard/internal/editor"
	"CurveBoard/internal/state"
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 16

var pngBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// PNG rasterizes s and writes it as a PNG image. A non-positive width or
// height sizes the image to the scene at one pixel per canvas unit.
func PNG(w io.Writer, s state.Scene, width, height int) error {
	img := Raster(s, width, height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png export: %w", err)
	}
	return nil
}

// Raster paints s into a new image.
func Raster(s state.Scene, width, height int) *image.RGBA {
	box, ok := s.Bounds(state.SampleRadius)
	if width <= 0 || height <= 0 {
		width, height = 1, 1
		if ok {
			width = int(math.Ceil(box.URx - box.LLx))
			height = int(math.Ceil(box.URy - box.LLy))
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(pngBackground), image.Point{}, draw.Src)
	if !ok {
		return img
	}

	pr := &painter{
		dst: img,
		f:   fit(box, float64(width), float64(height), 0, 1),
	}
	for _, c := range s.Curves {
		pr.curve(c)
	}
	for _, p := range s.Drawing {
		pr.marker(p)
	}
	editor.Logger().Debug("scene rasterized", "width", width, "height", height, "curves", len(s.Curves))
	return img
}

type painter struct {
	dst *image.RGBA
	f   frame
}

func (pr *painter) fill(col color.Color, path func(r *vector.Rasterizer)) {
	b := pr.dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	path(r)
	r.Draw(pr.dst, b, image.NewUniform(col), image.Point{})
}

func (pr *painter) curve(c state.CurveShape) {
	pr.stroke(c.Support(), state.ColorOrDefault(state.DefaultColor), 0.5)

	pts := append(append([]vec.Vec2(nil), c.Samples...), c.End.Pos)
	pr.stroke(pts, state.ColorOrDefault(c.Color), state.SampleRadius)

	pr.marker(c.Start)
	for _, p := range c.Controls {
		pr.marker(p)
	}
	pr.marker(c.End)
}

// stroke paints the polyline pts with the given half width, one quad per
// segment.
func (pr *painter) stroke(pts []vec.Vec2, col color.Color, halfWidth float64) {
	pr.fill(col, func(r *vector.Rasterizer) {
		for i := 1; i < len(pts); i++ {
			a, b := pr.f.apply(pts[i-1]), pr.f.apply(pts[i])
			d := b.Sub(a)
			l := d.Length()
			if l == 0 {
				continue
			}
			n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(halfWidth * pr.f.scale / l)
			moveTo(r, a.Add(n))
			lineTo(r, b.Add(n))
			lineTo(r, b.Sub(n))
			lineTo(r, a.Sub(n))
			r.ClosePath()
		}
	})
}

func (pr *painter) marker(p state.Point) {
	at := pr.f.apply(p.Pos)
	col := state.ColorOrDefault(p.Color)
	pr.fill(col, func(r *vector.Rasterizer) {
		if p.Kind == state.Anchor {
			h := state.AnchorSize / 2.0 * pr.f.scale
			moveTo(r, vec.Vec2{X: at.X - h, Y: at.Y - h})
			lineTo(r, vec.Vec2{X: at.X + h, Y: at.Y - h})
			lineTo(r, vec.Vec2{X: at.X + h, Y: at.Y + h})
			lineTo(r, vec.Vec2{X: at.X - h, Y: at.Y + h})
			r.ClosePath()
			return
		}
		rad := p.Radius * pr.f.scale
		moveTo(r, vec.Vec2{X: at.X + rad, Y: at.Y})
		for i := 1; i < circleSegments; i++ {
			a := 2 * math.Pi * float64(i) / circleSegments
			lineTo(r, vec.Vec2{X: at.X + rad*math.Cos(a), Y: at.Y + rad*math.Sin(a)})
		}
		r.ClosePath()
	})
}

func moveTo(r *vector.Rasterizer, p vec.Vec2) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p vec.Vec2) {
	r.LineTo(float32(p.X), float32(p.Y))
}
