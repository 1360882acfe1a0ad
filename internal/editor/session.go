package editor

import (
	"log/slog"

	"CurveBoard/internal/state"
)

// Renderer repaints the canvas from a scene. It is called after every
// transition that may have changed what is visible.
type Renderer interface {
	Redraw(s state.Scene)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s state.Scene)

func (f RendererFunc) Redraw(s state.Scene) { f(s) }

// Warner shows a user-facing warning.
type Warner interface {
	Warn(err error)
}

// WarnerFunc adapts a function to Warner.
type WarnerFunc func(err error)

func (f WarnerFunc) Warn(err error) { f(err) }

type Option func(*Session)

func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

func WithWarner(w Warner) Option {
	return func(s *Session) { s.warner = w }
}

// Session is the editing state machine. It owns the points, the finished
// curves and the points of the curve being drawn, and interprets pointer
// events according to the active tool.
//
// A Session is not safe for concurrent use; feed it events from one
// goroutine.
type Session struct {
	points  *state.Arena
	board   *state.Board
	drawing []state.PointID

	// drag target; movingCurve is nil for a point of the drawing buffer
	moving      state.PointID
	movingCurve *state.Curve
	moved       bool

	tool       Tool
	continuity state.Continuity
	degree     state.Degree
	color      string
	palette    []Swatch

	renderer Renderer
	warner   Warner
}

// New returns an empty session in the modes given by cfg.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		points:     state.NewArena(),
		board:      state.NewBoard(),
		tool:       cfg.Tool,
		continuity: cfg.Continuity,
		degree:     cfg.Degree,
		color:      cfg.Color,
		palette:    cfg.Palette,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *Session) Tool() Tool                   { return s.tool }
func (s *Session) Continuity() state.Continuity { return s.continuity }
func (s *Session) Degree() state.Degree         { return s.degree }
func (s *Session) Color() string                { return s.color }
func (s *Session) Palette() []Swatch            { return s.palette }

// Curves returns the finished curves in paint order.
func (s *Session) Curves() []*state.Curve {
	return s.board.Curves()
}

// DrawingPoints returns the points of the curve being drawn.
func (s *Session) DrawingPoints() []state.Point {
	out := make([]state.Point, 0, len(s.drawing))
	for _, id := range s.drawing {
		if p, ok := s.points.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Point resolves a handle held by one of the session's curves.
func (s *Session) Point(id state.PointID) (state.Point, bool) {
	return s.points.Get(id)
}

// Dragging reports whether a point is currently grabbed.
func (s *Session) Dragging() bool {
	return s.moving != state.NoPoint
}

// Scene builds a fresh snapshot of the board.
func (s *Session) Scene() state.Scene {
	return state.BuildScene(s.points, s.board.Curves(), s.drawing)
}

func (s *Session) redraw() {
	if s.renderer == nil {
		return
	}
	s.renderer.Redraw(s.Scene())
}

func (s *Session) warn(err error) {
	Logger().Warn("input rejected", "err", err)
	if s.warner != nil {
		s.warner.Warn(err)
	}
}

func (s *Session) SetTool(t Tool) {
	if t == s.tool {
		return
	}
	s.tool = t
	s.clearDrag()
	Logger().Info("tool changed", "tool", t)
}

func (s *Session) SetContinuity(c state.Continuity) {
	s.continuity = c
	Logger().Info("continuity changed", "continuity", c)
}

// SetColor sets the paint color used for new and recolored curves.
func (s *Session) SetColor(color string) {
	s.color = color
	Logger().Debug("paint color changed", "color", color)
}

// SetDegree switches between quadratic and cubic curves. Switching starts
// a new, empty board; setting the current degree again does nothing.
func (s *Session) SetDegree(d state.Degree) {
	if d == s.degree {
		return
	}
	s.degree = d
	Logger().Info("degree changed", "degree", d)
	s.reset()
	s.redraw()
}

// Clear removes every curve and drawing point.
func (s *Session) Clear() {
	Logger().Info("board cleared", "curves", s.board.Len())
	s.reset()
	s.redraw()
}

func (s *Session) reset() {
	s.board.Clear()
	s.points.Reset()
	s.drawing = nil
	s.clearDrag()
}

func (s *Session) clearDrag() {
	s.moving = state.NoPoint
	s.movingCurve = nil
	s.moved = false
}

// bufferEdge reports whether the next point of the buffer is an anchor:
// the buffer is empty or one point short of a curve.
func (s *Session) bufferEdge() bool {
	n := len(s.drawing)
	return n == 0 || n == s.degree.PointCount()-1
}

func (s *Session) bufferFull() bool {
	return len(s.drawing) == s.degree.PointCount()
}

// PointerDown grabs a point under (x, y) or places a new one.
func (s *Session) PointerDown(x, y float64) {
	if s.tool != ToolDraw {
		return
	}
	log := Logger()

	for _, id := range s.drawing {
		if p, ok := s.points.Get(id); ok && p.Hit(x, y) {
			s.moving = id
			log.Debug("grabbed drawing point", "point", id)
			return
		}
	}
	for _, c := range s.board.Curves() {
		if id, ok := c.HitDefiningPoint(s.points, x, y); ok {
			s.moving = id
			s.movingCurve = c
			log.Debug("grabbed curve point", "point", id, "curve", c)
			return
		}
	}

	if s.bufferFull() {
		s.warn(&OverflowError{Count: len(s.drawing), Degree: s.degree})
		return
	}
	s.addDrawingPoint(x, y)
	s.redraw()
}

// addDrawingPoint appends an anchor or a control point, depending on where
// in the curve the buffer is.
func (s *Session) addDrawingPoint(x, y float64) state.PointID {
	var p state.Point
	if s.bufferEdge() {
		p = state.NewAnchor(x, y, state.DefaultColor)
	} else {
		p = state.NewControl(x, y, state.ControlRadius, state.DefaultColor)
	}
	id := s.points.Add(p)
	s.drawing = append(s.drawing, id)
	Logger().Debug("drawing point added", "point", id, "kind", p.Kind, "x", x, "y", y)
	return id
}

// PointerMove drags the grabbed point.
func (s *Session) PointerMove(x, y float64) {
	if s.moving == state.NoPoint || s.tool != ToolDraw {
		return
	}
	s.moved = true
	s.points.Move(s.moving, x, y)
	for _, c := range s.board.Curves() {
		for _, id := range c.Defining() {
			if id == s.moving {
				c.Invalidate()
				break
			}
		}
	}
	s.redraw()
}

// PointerUp ends a drag. A press and release on an anchor of a finished
// curve without moving it joins the curve being drawn to that anchor.
// A buffer that now holds a whole curve becomes a new curve.
func (s *Session) PointerUp(x, y float64) {
	if s.tool != ToolDraw {
		return
	}

	if s.moving != state.NoPoint && !s.moved && s.bufferEdge() {
		s.join()
	}
	s.clearDrag()

	if s.bufferFull() {
		s.flush()
	}
	s.redraw()
}

// join attaches the buffer to the grabbed anchor according to the active
// continuity mode.
func (s *Session) join() {
	log := Logger()
	c, anchor := s.movingCurve, s.moving
	if c == nil || !c.HasAnchor(anchor) {
		log.Debug("join ignored, not a curve anchor", "point", anchor)
		return
	}

	switch s.continuity {
	case state.C0:
		s.drawing = append(s.drawing, anchor)
		log.Info("joined curve", "continuity", s.continuity, "curve", c)

	case state.C1:
		adj, ok := state.AdjacentControl(c, anchor)
		if !ok {
			return
		}
		s.drawing = append(s.drawing, anchor)
		m := state.Mirror(s.points.Pos(anchor), s.points.Pos(adj))
		if s.bufferFull() {
			last := s.drawing[len(s.drawing)-2]
			s.points.Move(last, m.X, m.Y)
		} else {
			s.addDrawingPoint(m.X, m.Y)
		}
		log.Info("joined curve", "continuity", s.continuity, "curve", c,
			"mirror_x", m.X, "mirror_y", m.Y)

	default:
		// TODO: C2 needs matching second derivatives; until then the
		// press is ignored.
		log.Debug("continuity mode has no join behavior", "continuity", s.continuity)
	}
}

// flush turns the full buffer into a curve.
func (s *Session) flush() {
	n := len(s.drawing)
	c, err := state.NewCurve(s.degree, s.drawing[0], s.drawing[1:n-1], s.drawing[n-1], s.color)
	if err != nil {
		Logger().Error("cannot build curve", "err", err)
		return
	}
	c.Sample(s.points)
	s.board.Add(c)
	s.drawing = nil
	Logger().Info("curve created", "curve", c, "curves", s.board.Len())
}

// Click applies the color or delete tool at (x, y).
func (s *Session) Click(x, y float64) {
	switch s.tool {
	case ToolColor:
		if c, ok := s.board.First(s.hitter(x, y)); ok {
			c.SetColor(s.points, s.color)
			Logger().Info("curve recolored", "curve", c)
		}
	case ToolDelete:
		s.erase(x, y)
	}
	s.redraw()
}

func (s *Session) hitter(x, y float64) func(*state.Curve) bool {
	return func(c *state.Curve) bool {
		return c.HitTest(s.points, x, y)
	}
}

// erase removes every curve hit at (x, y) together with all curves joined
// to them, then releases the points nothing refers to anymore.
func (s *Session) erase(x, y float64) {
	seeds := s.board.Filter(s.hitter(x, y))
	if len(seeds) == 0 {
		return
	}
	doomed := state.Connected(s.board.Curves(), seeds)
	n := s.board.Remove(doomed)

	released := 0
	for _, c := range doomed {
		for _, id := range c.Defining() {
			if _, live := s.points.Get(id); !live {
				continue
			}
			if s.board.Uses(id) || s.inBuffer(id) {
				continue
			}
			s.points.Release(id)
			released++
		}
	}
	Logger().Info("curves erased", slog.Int("seeds", len(seeds)),
		slog.Int("removed", n), slog.Int("released_points", released))
}

func (s *Session) inBuffer(id state.PointID) bool {
	for _, d := range s.drawing {
		if d == id {
			return true
		}
	}
	return false
}
