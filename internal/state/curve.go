package state

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Precision is the parameter step used when sampling a curve.
const Precision = 0.001

// SampleCount is the number of points produced by Sample: t runs over
// [0, 1) in steps of Precision.
const SampleCount = 1000

var (
	ErrUnknownDegree  = errors.New("unknown curve degree")
	ErrDegreeMismatch = errors.New("control point count does not match degree")
)

// Degree selects between the two supported Bezier curve types.
type Degree uint8

const (
	Quadratic Degree = iota
	Cubic
)

// ParseDegree accepts "quadratic"/"cubic" as well as "2"/"3".
func ParseDegree(s string) (Degree, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quadratic", "quad", "2":
		return Quadratic, nil
	case "cubic", "3":
		return Cubic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDegree, s)
}

func (d Degree) String() string {
	switch d {
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	}
	return fmt.Sprintf("Degree(%d)", uint8(d))
}

// ControlPoints is the number of control points between the two anchors.
func (d Degree) ControlPoints() int {
	if d == Cubic {
		return 2
	}
	return 1
}

// PointCount is the number of clicks needed to define a curve.
func (d Degree) PointCount() int {
	return d.ControlPoints() + 2
}

// Eval evaluates the curve defined by pts (start, controls..., end) at t
// using the Bernstein form. pts must hold d.PointCount() points.
func (d Degree) Eval(t float64, pts []vec.Vec2) vec.Vec2 {
	mt := 1 - t
	switch d {
	case Cubic:
		p0, c0, c1, p1 := pts[0], pts[1], pts[2], pts[3]
		return p0.Mul(mt * mt * mt).
			Add(c0.Mul(3 * mt * mt * t)).
			Add(c1.Mul(3 * mt * t * t)).
			Add(p1.Mul(t * t * t))
	default:
		p0, c0, p1 := pts[0], pts[1], pts[2]
		return p0.Mul(mt * mt).
			Add(c0.Mul(2 * mt * t)).
			Add(p1.Mul(t * t))
	}
}

// Curve is a quadratic or cubic Bezier segment. Its defining points live in
// an Arena; the curve only holds handles so that joined curves share their
// anchors.
type Curve struct {
	ID       string
	Start    PointID
	Controls []PointID
	End      PointID
	Color    string
	Degree   Degree

	samples []vec.Vec2
}

// NewCurve builds a curve and checks that the number of control points fits
// the degree.
func NewCurve(d Degree, start PointID, controls []PointID, end PointID, color string) (*Curve, error) {
	if len(controls) != d.ControlPoints() {
		return nil, fmt.Errorf("%w: %s curve needs %d, got %d",
			ErrDegreeMismatch, d, d.ControlPoints(), len(controls))
	}
	return &Curve{
		ID:       newCurveID(),
		Start:    start,
		Controls: append([]PointID(nil), controls...),
		End:      end,
		Color:    orDefault(color),
		Degree:   d,
	}, nil
}

// Defining returns the handles of start, controls and end, in that order.
func (c *Curve) Defining() []PointID {
	ids := make([]PointID, 0, len(c.Controls)+2)
	ids = append(ids, c.Start)
	ids = append(ids, c.Controls...)
	return append(ids, c.End)
}

// HasAnchor reports whether id is the start or end of c.
func (c *Curve) HasAnchor(id PointID) bool {
	return id == c.Start || id == c.End
}

// Sample regenerates and returns the polyline approximation of c.
func (c *Curve) Sample(a *Arena) []vec.Vec2 {
	ids := c.Defining()
	pts := make([]vec.Vec2, len(ids))
	for i, id := range ids {
		pts[i] = a.Pos(id)
	}

	out := make([]vec.Vec2, SampleCount)
	for i := range out {
		out[i] = c.Degree.Eval(float64(i)*Precision, pts)
	}
	c.samples = out
	return out
}

// Samples returns the cached sample, generating it if needed.
func (c *Curve) Samples(a *Arena) []vec.Vec2 {
	if c.samples == nil {
		return c.Sample(a)
	}
	return c.samples
}

// Invalidate drops the cached sample, e.g. after a defining point moved.
func (c *Curve) Invalidate() {
	c.samples = nil
}

// HitDefiningPoint returns the first of start, controls and end whose
// marker contains (x, y).
func (c *Curve) HitDefiningPoint(a *Arena, x, y float64) (PointID, bool) {
	for _, id := range c.Defining() {
		p, ok := a.Get(id)
		if ok && p.Hit(x, y) {
			return id, true
		}
	}
	return NoPoint, false
}

// HitTest reports whether (x, y) touches the curve itself or one of its
// defining points.
func (c *Curve) HitTest(a *Arena, x, y float64) bool {
	if _, ok := c.HitDefiningPoint(a, x, y); ok {
		return true
	}
	for _, s := range c.Samples(a) {
		if hitCircle(s, SampleRadius, x, y) {
			return true
		}
	}
	return false
}

// SetColor recolors the curve and regenerates its sample.
func (c *Curve) SetColor(a *Arena, color string) {
	c.Color = orDefault(color)
	c.Sample(a)
}

func (c *Curve) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", c.ID),
		slog.String("degree", c.Degree.String()),
		slog.String("color", c.Color),
	)
}
