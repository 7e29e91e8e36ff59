package icon

import "fyne.io/fyne/v2"

// Resource exposes an encoded icon so fyne apps can pass it to
// SetIcon without reading it back from disk.
func Resource(name string, png []byte) fyne.Resource {
	return fyne.NewStaticResource(name, png)
}
