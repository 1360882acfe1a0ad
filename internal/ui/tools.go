package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"CurveBoard/internal/editor"
	"CurveBoard/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Swatch   editor.Swatch
	OnTapped func(editor.Swatch)
}

func newColorSwatch(s editor.Swatch, tapped func(editor.Swatch)) *colorSwatch {
	cs := &colorSwatch{Swatch: s, OnTapped: tapped}
	cs.ExtendBaseWidget(cs)
	return cs
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(state.ColorOrDefault(s.Swatch.Hex))
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Swatch)
	}
}

func radio(options []string, selected string, changed func(string)) *widget.RadioGroup {
	rg := widget.NewRadioGroup(options, nil)
	rg.Horizontal = true
	rg.Required = true
	rg.SetSelected(selected)
	rg.OnChanged = changed
	return rg
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, s *editor.Session, w fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentClearIcon(), s.Clear),
		widget.NewToolbarAction(theme.GridIcon(), board.ToggleGrid),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			savePDF(board, w)
		}),
		widget.NewToolbarAction(theme.FileImageIcon(), func() {
			savePNG(board, w)
		}),
	)

	tools := radio([]string{"draw", "color", "delete"}, s.Tool().String(), func(v string) {
		if t, err := editor.ParseTool(v); err == nil {
			s.SetTool(t)
			board.SetStatus("Tool: " + v)
		}
	})

	degrees := radio([]string{"quadratic", "cubic"}, s.Degree().String(), func(v string) {
		if d, err := state.ParseDegree(v); err == nil {
			s.SetDegree(d)
			board.SetStatus("New " + v + " board")
		}
	})

	continuity := radio([]string{"continuity-0", "continuity-1", "continuity-2"}, s.Continuity().String(), func(v string) {
		if c, err := state.ParseContinuity(v); err == nil {
			s.SetContinuity(c)
		}
	})

	// --- Color Palette ---
	onColorTapped := func(sw editor.Swatch) {
		s.SetColor(sw.Hex)
		board.SetStatus("Color: " + sw.Name)
	}
	colorBox := container.NewHBox()
	for _, sw := range s.Palette() {
		colorBox.Add(newColorSwatch(sw, onColorTapped))
	}

	// --- Assemble everything ---
	return container.NewVBox(
		container.NewHBox(
			tb,
			widget.NewSeparator(),
			widget.NewLabel("Curve:"),
			degrees,
			widget.NewSeparator(),
			widget.NewLabel("Join:"),
			continuity,
			layout.NewSpacer(),
		),
		container.NewHBox(
			widget.NewLabel("Tool:"),
			tools,
			widget.NewSeparator(),
			widget.NewLabel("Color:"),
			colorBox,
			layout.NewSpacer(),
		),
	)
}
