//go:build !gui

package window

import (
	"errors"
	"image"

	"fyne.io/fyne/v2"
)

const Available = false

var ErrUnavailable = errors.New("window: built without GUI support (rebuild with -tags gui)")

func Show(string, fyne.Resource, image.Image) error {
	return ErrUnavailable
}
