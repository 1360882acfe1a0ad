package state

import (
	"seehuhn.de/go/geom/vec"
)

// CurveShape is a curve with its points resolved, ready to be painted.
type CurveShape struct {
	ID       string
	Color    string
	Degree   Degree
	Start    Point
	Controls []Point
	End      Point
	Samples  []vec.Vec2
}

// Support returns the support polyline start, controls..., end.
func (cs CurveShape) Support() []vec.Vec2 {
	out := make([]vec.Vec2, 0, len(cs.Controls)+2)
	out = append(out, cs.Start.Pos)
	for _, p := range cs.Controls {
		out = append(out, p.Pos)
	}
	return append(out, cs.End.Pos)
}

// Scene is a snapshot of a board handed to renderers. Renderers must not
// keep references into it across redraws.
type Scene struct {
	Curves  []CurveShape
	Drawing []Point
}

// BuildScene resolves curves and the in-progress drawing points. Each
// curve's sample is regenerated.
func BuildScene(a *Arena, curves []*Curve, drawing []PointID) Scene {
	s := Scene{
		Curves:  make([]CurveShape, 0, len(curves)),
		Drawing: make([]Point, 0, len(drawing)),
	}
	for _, id := range drawing {
		if p, ok := a.Get(id); ok {
			s.Drawing = append(s.Drawing, p)
		}
	}
	for _, c := range curves {
		start, _ := a.Get(c.Start)
		end, _ := a.Get(c.End)
		controls := make([]Point, 0, len(c.Controls))
		for _, id := range c.Controls {
			p, _ := a.Get(id)
			controls = append(controls, p)
		}
		s.Curves = append(s.Curves, CurveShape{
			ID:       c.ID,
			Color:    c.Color,
			Degree:   c.Degree,
			Start:    start,
			Controls: controls,
			End:      end,
			Samples:  c.Sample(a),
		})
	}
	return s
}

// Empty reports whether there is nothing to paint.
func (s Scene) Empty() bool {
	return len(s.Curves) == 0 && len(s.Drawing) == 0
}
