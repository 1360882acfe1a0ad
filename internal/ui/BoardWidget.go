package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"CurveBoard/internal/editor"
	"CurveBoard/internal/state"
)

const (
	// only every sampleStride-th sample becomes a line segment on screen
	sampleStride = 10
	curveWidth   = 2 * state.SampleRadius
	gridSize     = 50
)

var (
	backgroundColor = color.NRGBA{R: 0x1b, G: 0x26, B: 0x3b, A: 0xff}
	supportColor    = color.NRGBA{R: 0xe0, G: 0xe1, B: 0xdd, A: 0xff}
	gridColor       = color.NRGBA{R: 0x41, G: 0x5a, B: 0x77, A: 0x64}
)

// BoardWidget shows a session's scene and forwards mouse input to it.
type BoardWidget struct {
	widget.BaseWidget
	mu        sync.RWMutex
	session   *editor.Session
	scene     state.Scene
	showGrid  bool
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ editor.Renderer = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetSession attaches the session that receives this widget's input. The
// session should have been created with this widget as its renderer.
func (b *BoardWidget) SetSession(s *editor.Session) {
	b.session = s
	b.Redraw(s.Scene())
}

// Redraw stores the scene and schedules a repaint.
func (b *BoardWidget) Redraw(s state.Scene) {
	b.mu.Lock()
	b.scene = s
	b.mu.Unlock()
	b.Refresh()
}

// Scene returns the last scene received.
func (b *BoardWidget) Scene() state.Scene {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.scene
}

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) ToggleGrid() {
	b.mu.Lock()
	b.showGrid = !b.showGrid
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && b.session != nil {
		b.session.PointerDown(float64(e.Position.X), float64(e.Position.Y))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && b.session != nil {
		b.session.PointerUp(float64(e.Position.X), float64(e.Position.Y))
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.session != nil {
		b.session.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.session != nil && b.session.Dragging() {
		b.session.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	}
}

func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	if b.session != nil {
		b.session.Click(float64(e.Position.X), float64(e.Position.Y))
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}
func (b *BoardWidget) DragEnd()                    {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(backgroundColor)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.RLock()
	scene := r.board.scene
	showGrid := r.board.showGrid
	r.board.mu.RUnlock()

	size := r.board.Size()
	objects := []fyne.CanvasObject{r.background}
	if showGrid {
		objects = append(objects, gridLines(size)...)
	}

	view := rect.Rect{URx: float64(size.Width), URy: float64(size.Height)}
	visible := make(map[string]bool)
	for _, id := range scene.CurvesIn(view) {
		visible[id] = true
	}

	for _, c := range scene.Curves {
		if !visible[c.ID] {
			continue
		}
		objects = append(objects, polyline(c.Support(), supportColor, 1)...)
		objects = append(objects, marker(c.Start), marker(c.End))
		for _, p := range c.Controls {
			objects = append(objects, marker(p))
		}
		objects = append(objects, samplePolyline(c)...)
	}
	for _, p := range scene.Drawing {
		objects = append(objects, marker(p))
	}
	return objects
}

func samplePolyline(c state.CurveShape) []fyne.CanvasObject {
	if len(c.Samples) == 0 {
		return nil
	}
	pts := make([]vec.Vec2, 0, len(c.Samples)/sampleStride+2)
	for i := 0; i < len(c.Samples); i += sampleStride {
		pts = append(pts, c.Samples[i])
	}
	pts = append(pts, c.End.Pos)
	return polyline(pts, state.ColorOrDefault(c.Color), curveWidth)
}

func polyline(pts []vec.Vec2, col color.Color, width float32) []fyne.CanvasObject {
	var out []fyne.CanvasObject
	for i := 1; i < len(pts); i++ {
		segment := canvas.NewLine(col)
		segment.StrokeWidth = width
		segment.Position1 = toPos(pts[i-1])
		segment.Position2 = toPos(pts[i])
		out = append(out, segment)
	}
	return out
}

func marker(p state.Point) fyne.CanvasObject {
	col := state.ColorOrDefault(p.Color)
	if p.Kind == state.Anchor {
		sq := canvas.NewRectangle(col)
		sq.Resize(fyne.NewSize(state.AnchorSize, state.AnchorSize))
		sq.Move(fyne.NewPos(float32(p.Pos.X-state.AnchorSize/2.0), float32(p.Pos.Y-state.AnchorSize/2.0)))
		return sq
	}
	c := canvas.NewCircle(col)
	c.Position1 = fyne.NewPos(float32(p.Pos.X-p.Radius), float32(p.Pos.Y-p.Radius))
	c.Position2 = fyne.NewPos(float32(p.Pos.X+p.Radius), float32(p.Pos.Y+p.Radius))
	return c
}

func gridLines(size fyne.Size) []fyne.CanvasObject {
	var lines []fyne.CanvasObject
	for x := float32(0); x < size.Width; x += gridSize {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, size.Height)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	for y := float32(0); y < size.Height; y += gridSize {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	return lines
}

func toPos(v vec.Vec2) fyne.Position {
	return fyne.NewPos(float32(v.X), float32(v.Y))
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
