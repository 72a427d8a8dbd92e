package texture

import (
	"image"
)

// Entry is one cached image. Until its fetch completes it shows the shared placeholder and
// Ready reports false. Each image swap bumps Version so the GPU backend knows to re-upload.
type Entry struct {
	URL   string
	Label string

	img     *image.RGBA
	ready   bool
	failed  bool
	version int
}

// Static returns a ready entry that never changes, for images generated in process.
func Static(img *image.RGBA) *Entry {
	return &Entry{img: img, ready: true, version: 1}
}

// Image returns the current pixels: the placeholder, the decoded image or a fallback.
func (e *Entry) Image() *image.RGBA { return e.img }

// Ready reports whether the fetch has settled, successfully or not.
func (e *Entry) Ready() bool { return e.ready }

// Failed reports whether the entry settled on a synthesized fallback.
func (e *Entry) Failed() bool { return e.failed }

// Version increases every time the image is replaced.
func (e *Entry) Version() int { return e.version }

func (e *Entry) settle(img *image.RGBA, failed bool) {
	e.img = img
	e.ready = true
	e.failed = failed
	e.version++
}
