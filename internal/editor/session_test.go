package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"CurveBoard/internal/state"
)

type recorder struct {
	scenes []state.Scene
	warns  []error
}

func (r *recorder) Redraw(s state.Scene) { r.scenes = append(r.scenes, s) }
func (r *recorder) Warn(err error)       { r.warns = append(r.warns, err) }

func newSession(t *testing.T, mutate func(*Config)) (*Session, *recorder) {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rec := &recorder{}
	s, err := New(cfg, WithRenderer(rec), WithWarner(rec))
	require.NoError(t, err)
	return s, rec
}

func click(s *Session, x, y float64) {
	s.PointerDown(x, y)
	s.PointerUp(x, y)
	s.Click(x, y)
}

func pos(t *testing.T, s *Session, id state.PointID) vec.Vec2 {
	t.Helper()
	p, ok := s.Point(id)
	require.True(t, ok, "point %d is gone", id)
	return p.Pos
}

func TestDrawQuadraticCurve(t *testing.T) {
	s, rec := newSession(t, nil)

	click(s, 10, 10)
	click(s, 50, 80)
	assert.Len(t, s.DrawingPoints(), 2)
	assert.Equal(t, state.Anchor, s.DrawingPoints()[0].Kind)
	assert.Equal(t, state.Control, s.DrawingPoints()[1].Kind)
	assert.Equal(t, float64(state.ControlRadius), s.DrawingPoints()[1].Radius)

	click(s, 100, 10)
	require.Len(t, s.Curves(), 1)
	assert.Empty(t, s.DrawingPoints())

	c := s.Curves()[0]
	assert.Equal(t, state.Quadratic, c.Degree)
	assert.Equal(t, vec.Vec2{X: 10, Y: 10}, pos(t, s, c.Start))
	require.Len(t, c.Controls, 1)
	assert.Equal(t, vec.Vec2{X: 50, Y: 80}, pos(t, s, c.Controls[0]))
	assert.Equal(t, vec.Vec2{X: 100, Y: 10}, pos(t, s, c.End))
	assert.Equal(t, DefaultPalette[0].Hex, c.Color)

	require.NotEmpty(t, rec.scenes)
	last := rec.scenes[len(rec.scenes)-1]
	assert.Len(t, last.Curves, 1)
	assert.Empty(t, last.Drawing)
	assert.Empty(t, rec.warns)
}

func TestDrawCubicCurve(t *testing.T) {
	s, _ := newSession(t, func(c *Config) { c.Degree = state.Cubic })

	click(s, 10, 10)
	click(s, 40, 80)
	click(s, 80, 80)
	assert.Len(t, s.DrawingPoints(), 3)
	assert.Equal(t, state.Control, s.DrawingPoints()[2].Kind)

	click(s, 120, 10)
	require.Len(t, s.Curves(), 1)
	assert.Len(t, s.Curves()[0].Controls, 2)
}

func TestOverflowIsRejected(t *testing.T) {
	s, rec := newSession(t, nil)

	s.PointerDown(10, 10)
	s.PointerDown(50, 80)
	s.PointerDown(100, 10)
	before := s.DrawingPoints()
	require.Len(t, before, 3)

	s.PointerDown(200, 200)
	assert.Equal(t, before, s.DrawingPoints())
	require.Len(t, rec.warns, 1)
	assert.ErrorIs(t, rec.warns[0], ErrBufferFull)

	var oe *OverflowError
	require.True(t, errors.As(rec.warns[0], &oe))
	assert.Equal(t, 3, oe.Count)
	assert.Equal(t, state.Quadratic, oe.Degree)
}

func TestDragMovesPoint(t *testing.T) {
	s, _ := newSession(t, nil)
	click(s, 10, 10)
	click(s, 50, 80)
	click(s, 100, 10)
	c := s.Curves()[0]
	assert.False(t, c.HitTest(s.points, 50, -40))

	s.PointerDown(50, 80)
	assert.True(t, s.Dragging())
	s.PointerMove(55, -80)
	s.PointerUp(55, -80)
	assert.False(t, s.Dragging())

	assert.Equal(t, vec.Vec2{X: 55, Y: -80}, pos(t, s, c.Controls[0]))
	assert.True(t, c.HitTest(s.points, 55, -80))
	assert.Empty(t, s.DrawingPoints(), "a drag does not add points")
	assert.Len(t, s.Curves(), 1)
}

func TestDragDrawingPoint(t *testing.T) {
	s, _ := newSession(t, nil)
	click(s, 10, 10)

	s.PointerDown(12, 12)
	s.PointerMove(30, 30)
	s.PointerUp(30, 30)

	require.Len(t, s.DrawingPoints(), 1)
	assert.Equal(t, vec.Vec2{X: 30, Y: 30}, s.DrawingPoints()[0].Pos)
}

func TestMoveWithoutDragIsIgnored(t *testing.T) {
	s, rec := newSession(t, nil)
	s.PointerMove(10, 10)
	assert.Empty(t, rec.scenes)
}

// drawFirst draws a quadratic curve from (100,100) over (150,50) to
// (200,100) and returns it.
func drawFirst(t *testing.T, s *Session) *state.Curve {
	t.Helper()
	click(s, 100, 100)
	click(s, 150, 50)
	click(s, 200, 100)
	require.Len(t, s.Curves(), 1)
	return s.Curves()[0]
}

func TestJoinContinuity0(t *testing.T) {
	s, _ := newSession(t, nil)
	first := drawFirst(t, s)

	click(s, 200, 100) // press on the end anchor: join
	click(s, 250, 150)
	click(s, 300, 100)

	require.Len(t, s.Curves(), 2)
	second := s.Curves()[1]
	assert.Equal(t, first.End, second.Start, "anchor shared by handle")
	assert.Equal(t, vec.Vec2{X: 250, Y: 150}, pos(t, s, second.Controls[0]))
}

func TestJoinContinuity1AtStart(t *testing.T) {
	s, _ := newSession(t, func(c *Config) { c.Continuity = state.C1 })
	first := drawFirst(t, s)

	click(s, 200, 100)
	dp := s.DrawingPoints()
	require.Len(t, dp, 2)
	assert.Equal(t, state.Control, dp[1].Kind)

	// mirror of (150,50) through (200,100)
	assert.InDelta(t, 250, dp[1].Pos.X, 1e-9)
	assert.InDelta(t, 150, dp[1].Pos.Y, 1e-9)

	click(s, 300, 100)
	require.Len(t, s.Curves(), 2)
	second := s.Curves()[1]
	assert.Equal(t, first.End, second.Start)

	anchor := pos(t, s, first.End)
	d1 := pos(t, s, first.Controls[0]).Sub(anchor)
	d2 := pos(t, s, second.Controls[0]).Sub(anchor)
	assert.InDelta(t, 0, d1.X*d2.Y-d1.Y*d2.X, 1e-9)
	assert.InDelta(t, d1.Length(), d2.Length(), 1e-9)
	assert.Less(t, d1.Dot(d2), 0.0)
}

func TestJoinContinuity1AtEnd(t *testing.T) {
	s, _ := newSession(t, func(c *Config) { c.Continuity = state.C1 })
	first := drawFirst(t, s)

	click(s, 0, 100)
	click(s, 60, 200)
	require.Len(t, s.DrawingPoints(), 2)

	// finishing on the start anchor of the first curve overwrites the
	// last control point with the mirror of (150,50) through (100,100)
	click(s, 100, 100)
	require.Len(t, s.Curves(), 2)
	assert.Empty(t, s.DrawingPoints())

	second := s.Curves()[1]
	assert.Equal(t, first.Start, second.End)
	got := pos(t, s, second.Controls[0])
	assert.InDelta(t, 50, got.X, 1e-9)
	assert.InDelta(t, 150, got.Y, 1e-9)
}

func TestJoinContinuity1Vertical(t *testing.T) {
	s, _ := newSession(t, func(c *Config) { c.Continuity = state.C1 })
	click(s, 100, 100)
	click(s, 100, 40)
	click(s, 200, 100)
	first := s.Curves()[0]

	click(s, 100, 100)
	dp := s.DrawingPoints()
	require.Len(t, dp, 2)
	assert.Equal(t, vec.Vec2{X: 100, Y: 160}, dp[1].Pos)
	assert.Equal(t, first.Start, s.drawing[0])
}

func TestJoinContinuity2IsNoop(t *testing.T) {
	s, _ := newSession(t, func(c *Config) { c.Continuity = state.C2 })
	drawFirst(t, s)

	click(s, 200, 100)
	assert.Empty(t, s.DrawingPoints())
	assert.Len(t, s.Curves(), 1)
}

func TestJoinIgnoresControlPoints(t *testing.T) {
	s, _ := newSession(t, nil)
	drawFirst(t, s)

	click(s, 150, 50)
	assert.Empty(t, s.DrawingPoints())
}

func TestJoinNeedsBufferEdge(t *testing.T) {
	s, _ := newSession(t, func(c *Config) { c.Degree = state.Cubic })
	click(s, 100, 100)
	click(s, 120, 50)
	click(s, 180, 50)
	click(s, 200, 100)
	require.Len(t, s.Curves(), 1)

	click(s, 0, 0)
	click(s, 20, 20)
	// buffer holds two of four points: not an anchor slot
	click(s, 200, 100)
	assert.Len(t, s.DrawingPoints(), 2)
}

func TestColorTool(t *testing.T) {
	s, _ := newSession(t, nil)
	c := drawFirst(t, s)

	s.SetTool(ToolColor)
	s.SetColor("#F44336")
	s.Click(500, 500)
	assert.Equal(t, DefaultPalette[0].Hex, c.Color)

	s.Click(150, 75) // B(0.5) of the first curve
	assert.Equal(t, "#F44336", c.Color)
}

func TestDeleteToolRemovesComponent(t *testing.T) {
	s, rec := newSession(t, nil)
	// A: (0,100)->(100,100), B joined at (100,100), C joined to B, D apart
	click(s, 0, 100)
	click(s, 50, 50)
	click(s, 100, 100)
	click(s, 100, 100)
	click(s, 150, 50)
	click(s, 200, 100)
	click(s, 200, 100)
	click(s, 250, 50)
	click(s, 300, 100)
	click(s, 0, 400)
	click(s, 50, 350)
	click(s, 100, 400)
	require.Len(t, s.Curves(), 4)
	d := s.Curves()[3]
	live := s.points.Live()

	s.SetTool(ToolDelete)
	s.Click(0, 100)

	assert.Equal(t, []*state.Curve{d}, s.Curves())
	assert.Equal(t, live-7, s.points.Live(), "points of erased curves are released")
	assert.Len(t, rec.scenes[len(rec.scenes)-1].Curves, 1)
}

func TestDeleteKeepsBufferPoints(t *testing.T) {
	s, _ := newSession(t, nil)
	c := drawFirst(t, s)
	click(s, 200, 100) // buffer starts on the end anchor

	s.SetTool(ToolDelete)
	s.Click(100, 100)
	assert.Empty(t, s.Curves())
	_, ok := s.Point(c.End)
	assert.True(t, ok)
	_, ok = s.Point(c.Start)
	assert.False(t, ok)
}

func TestToolsIgnoreOtherEvents(t *testing.T) {
	s, _ := newSession(t, func(c *Config) { c.Tool = ToolDelete })
	click(s, 10, 10)
	assert.Empty(t, s.DrawingPoints())

	s.SetTool(ToolDraw)
	s.Click(10, 10)
	assert.Empty(t, s.DrawingPoints())
}

func TestClearAndDegree(t *testing.T) {
	s, rec := newSession(t, nil)
	drawFirst(t, s)
	click(s, 300, 300)

	s.Clear()
	assert.Empty(t, s.Curves())
	assert.Empty(t, s.DrawingPoints())
	assert.Equal(t, 0, s.points.Live())
	assert.True(t, rec.scenes[len(rec.scenes)-1].Empty())

	drawFirst(t, s)
	n := len(rec.scenes)
	s.SetDegree(state.Quadratic)
	assert.Len(t, s.Curves(), 1, "same degree keeps the board")
	assert.Len(t, rec.scenes, n)

	s.SetDegree(state.Cubic)
	assert.Empty(t, s.Curves())
	assert.Equal(t, state.Cubic, s.Degree())
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = "red"
	_, err := New(cfg)
	assert.ErrorIs(t, err, state.ErrBadColor)

	cfg = DefaultConfig()
	cfg.Tool = Tool(9)
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrUnknownTool)

	cfg = DefaultConfig()
	cfg.Continuity = state.Continuity(7)
	_, err = New(cfg)
	assert.ErrorIs(t, err, state.ErrUnknownContinuity)
}

func TestParseTool(t *testing.T) {
	for _, tool := range []Tool{ToolDraw, ToolColor, ToolDelete} {
		got, err := ParseTool(tool.String())
		assert.NoError(t, err)
		assert.Equal(t, tool, got)
	}
	_, err := ParseTool("lasso")
	assert.ErrorIs(t, err, ErrUnknownTool)
}
