//go:build gui

// Package window shows an image in a native fyne window. It needs cgo and
// OpenGL, so it is only built with -tags gui.
package window

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

const Available = true

// Show opens img in a fixed-size window using icon as both the app and
// window icon, and blocks until the window is closed.
func Show(title string, icon fyne.Resource, img image.Image) error {
	a := app.NewWithID("io.derbyicon.preview")
	a.SetIcon(icon)

	w := a.NewWindow(title)
	w.SetIcon(icon)

	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.ScaleMode = canvas.ImageScalePixels

	b := img.Bounds()
	w.SetContent(c)
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.SetFixedSize(true)
	w.ShowAndRun()
	return nil
}
