package state

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
)

var ErrUnknownContinuity = errors.New("unknown continuity mode")

// Continuity controls how a new curve is attached to an anchor of an
// existing one.
type Continuity uint8

const (
	// C0 reuses the anchor; the segments meet but may form a corner.
	C0 Continuity = iota
	// C1 also places the adjacent control point of the new curve so that
	// the tangents on both sides of the anchor line up.
	C1
	// C2 is accepted but has no join behavior yet.
	C2
)

// ParseContinuity accepts "continuity-0" style names and bare digits.
func ParseContinuity(s string) (Continuity, error) {
	switch strings.TrimPrefix(strings.TrimSpace(s), "continuity-") {
	case "0":
		return C0, nil
	case "1":
		return C1, nil
	case "2":
		return C2, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownContinuity, s)
}

func (c Continuity) String() string {
	return fmt.Sprintf("continuity-%d", uint8(c))
}

// AdjacentControl returns the control point of c next to anchor: the first
// control point when anchor is the start, the last when it is the end.
func AdjacentControl(c *Curve, anchor PointID) (PointID, bool) {
	if len(c.Controls) == 0 {
		return NoPoint, false
	}
	switch anchor {
	case c.Start:
		return c.Controls[0], true
	case c.End:
		return c.Controls[len(c.Controls)-1], true
	}
	return NoPoint, false
}

// Mirror reflects p2 through p1 along the line p1-p2. The x coordinate is
// mirrored by distance and y follows from the slope of the line. A vertical
// line keeps x and mirrors y; coincident points give p1.
func Mirror(p1, p2 vec.Vec2) vec.Vec2 {
	if p1.X == p2.X {
		return vec.Vec2{X: p1.X, Y: p1.Y - (p2.Y - p1.Y)}
	}

	dx := p2.X - p1.X
	if dx < 0 {
		dx = -dx
	}
	x := p1.X + dx
	if p1.X < p2.X {
		x = p1.X - dx
	}

	k := (p1.Y - p2.Y) / (p1.X - p2.X)
	return vec.Vec2{X: x, Y: k*(x-p1.X) + p1.Y}
}
