package ui

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"CurveBoard/internal/editor"
	"CurveBoard/internal/export"
	"CurveBoard/internal/state"
)

func savePDF(board *BoardWidget, w fyne.Window) {
	saveScene(board, w, "curves.pdf", export.PDF)
}

func savePNG(board *BoardWidget, w fyne.Window) {
	saveScene(board, w, "curves.png", func(out io.Writer, s state.Scene) error {
		return export.PNG(out, s, 0, 0)
	})
}

// saveScene asks for a file and writes the current scene with write.
func saveScene(board *BoardWidget, w fyne.Window, name string, write func(io.Writer, state.Scene) error) {
	scene := board.Scene()
	if scene.Empty() {
		board.SetStatus("Nothing to export")
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		log := editor.Logger()
		if err != nil {
			log.Error("export dialog failed", "err", err)
			board.SetStatus("Export failed")
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Error("closing export file", "err", err)
			}
		}()

		if err := write(writer, scene); err != nil {
			log.Error("export failed", "uri", writer.URI().String(), "err", err)
			board.SetStatus("Error writing file")
			return
		}
		board.SetStatus(fmt.Sprintf("Exported %d curves", len(scene.Curves)))
		log.Info("scene exported", "uri", writer.URI().String(), "curves", len(scene.Curves))
	}, w)
	d.SetFileName(name)
	d.Show()
}
