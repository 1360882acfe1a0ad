package state

import (
	"seehuhn.de/go/geom/vec"
)

// PointID is a stable handle to a point stored in an Arena. Two curves are
// joined at a point exactly when they hold the same PointID.
type PointID int

// NoPoint is the zero handle; it never refers to a live point.
const NoPoint PointID = 0

// Arena owns every point of a board. Handles stay valid until released and
// are never reused, so a stale handle cannot alias a newer point.
type Arena struct {
	points map[PointID]*Point
	next   PointID
}

func NewArena() *Arena {
	return &Arena{points: make(map[PointID]*Point)}
}

// Add stores p and returns its handle.
func (a *Arena) Add(p Point) PointID {
	a.next++
	pp := p
	a.points[a.next] = &pp
	return a.next
}

// Get returns the point behind id.
func (a *Arena) Get(id PointID) (Point, bool) {
	p, ok := a.points[id]
	if !ok {
		return Point{}, false
	}
	return *p, true
}

// Pos returns the position of id, or the origin for a released handle.
func (a *Arena) Pos(id PointID) vec.Vec2 {
	if p, ok := a.points[id]; ok {
		return p.Pos
	}
	return vec.Vec2{}
}

// Move sets the position of id. It reports false for a released handle.
func (a *Arena) Move(id PointID, x, y float64) bool {
	p, ok := a.points[id]
	if !ok {
		return false
	}
	p.Pos = vec.Vec2{X: x, Y: y}
	return true
}

// Release drops the point behind id.
func (a *Arena) Release(id PointID) {
	delete(a.points, id)
}

// Live returns the number of points currently stored.
func (a *Arena) Live() int {
	return len(a.points)
}

// Reset drops all points. Handle numbering keeps counting up.
func (a *Arena) Reset() {
	a.points = make(map[PointID]*Point)
}
