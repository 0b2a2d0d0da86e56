package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/zeittresor/images-to-mp4/internal/export"
	"github.com/zeittresor/images-to-mp4/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.zeittresor.images-to-mp4")
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("Images to MP4")
	myWindow.Resize(fyne.NewSize(720, 560))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, export.NewService())

	// Show and run
	myWindow.ShowAndRun()
}
