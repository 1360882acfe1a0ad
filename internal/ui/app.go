package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"CurveBoard/internal/editor"
)

// RunApp opens the editor window and blocks until it is closed.
func RunApp(cfg editor.Config) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("Curve Board")
	myWindow.Resize(fyne.NewSize(1024, 768))

	board := NewBoardWidget()
	warner := editor.WarnerFunc(func(err error) {
		board.SetStatus(err.Error())
		dialog.ShowInformation("Curve Board", err.Error(), myWindow)
	})
	s, err := editor.New(cfg, editor.WithRenderer(board), editor.WithWarner(warner))
	if err != nil {
		return err
	}
	board.SetSession(s)

	toolbar := NewToolbar(board, s, myWindow)
	content := container.NewBorder(toolbar, board.statusBar, nil, nil, board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
	return nil
}
