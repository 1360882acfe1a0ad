package state

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Bounds returns the bounding box of everything painted for s, grown by
// padding on every side. It reports false for an empty scene.
func (s Scene) Bounds(padding float64) (rect.Rect, bool) {
	var pts []vec.Vec2
	for _, p := range s.Drawing {
		pts = append(pts, p.Pos)
	}
	for _, c := range s.Curves {
		pts = append(pts, c.Support()...)
		pts = append(pts, c.Samples...)
	}
	if len(pts) == 0 {
		return rect.Rect{}, false
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// markers stick out of their centers
	pad := padding + AnchorSize/2.0
	return rect.Rect{
		LLx: minX - pad,
		LLy: minY - pad,
		URx: maxX + pad,
		URy: maxY + pad,
	}, true
}

// overlaps reports whether two boxes intersect, borders included.
func overlaps(a, b rect.Rect) bool {
	return !(a.URx < b.LLx || b.URx < a.LLx ||
		a.URy < b.LLy || b.URy < a.LLy)
}

// CurvesIn returns the ids of the curves whose support box meets area.
func (s Scene) CurvesIn(area rect.Rect) []string {
	var ids []string
	for _, c := range s.Curves {
		one := Scene{Curves: []CurveShape{c}}
		box, ok := one.Bounds(0)
		if ok && overlaps(box, area) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
