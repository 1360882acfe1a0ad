package state

import (
	"seehuhn.de/go/geom/vec"
)

// PointKind selects the marker shape of a point and with it the hit test.
type PointKind uint8

const (
	// Anchor points are interpolated: the curve passes through them.
	Anchor PointKind = iota
	// Control points are approximated: they pull the curve but lie off it.
	Control
)

func (k PointKind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case Control:
		return "control"
	}
	return "unknown"
}

const (
	// AnchorSize is the side of the square drawn for an anchor.
	AnchorSize = 10
	// ControlRadius is the radius of a control point that is not yet part
	// of a curve.
	ControlRadius = 5
	// SampleRadius is the radius of a marker on a sampled curve.
	SampleRadius = 2
)

// DefaultColor is used for points created without a paint color.
const DefaultColor = "#3f3f3f"

type Point struct {
	Pos    vec.Vec2
	Color  string
	Kind   PointKind
	Radius float64 // only used by Control points
}

func NewAnchor(x, y float64, color string) Point {
	return Point{Pos: vec.Vec2{X: x, Y: y}, Color: orDefault(color), Kind: Anchor}
}

func NewControl(x, y, radius float64, color string) Point {
	return Point{Pos: vec.Vec2{X: x, Y: y}, Color: orDefault(color), Kind: Control, Radius: radius}
}

// Hit reports whether (x, y) falls inside the marker of p. Both tests are
// strict: the border of a square or circle does not count.
func (p Point) Hit(x, y float64) bool {
	switch p.Kind {
	case Anchor:
		half := AnchorSize / 2.0
		return x < p.Pos.X+half && x > p.Pos.X-half &&
			y < p.Pos.Y+half && y > p.Pos.Y-half
	case Control:
		return hitCircle(p.Pos, p.Radius, x, y)
	}
	return false
}

func hitCircle(center vec.Vec2, radius, x, y float64) bool {
	d := vec.Vec2{X: x, Y: y}.Sub(center)
	return d.Length() < radius
}

func orDefault(color string) string {
	if color == "" {
		return DefaultColor
	}
	return color
}
