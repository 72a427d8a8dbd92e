package shape

import (
	"github.com/chewxy/math32"
)

// MaxCornerRatio bounds every rounded-rect corner radius relative to the shorter side.
const MaxCornerRatio = 0.49

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Descriptor describes a panel face: size, the four corner radii and an optional dome depth.
type Descriptor struct {
	Width, Height            float32
	Top, Bottom, Left, Right float32
	Dome                     float32
}

// Corners returns the effective corner radii (top-left, top-right, bottom-right, bottom-left).
// Each corner uses the smaller of its two sides' radii, clamped to [0, 0.49*min(width, height)].
func (d Descriptor) Corners() (tl, tr, br, bl float32) {
	maxR := min(d.Width, d.Height) * MaxCornerRatio
	if maxR < 0 {
		maxR = 0
	}
	tl = clamp(min(d.Top, d.Left), 0, maxR)
	tr = clamp(min(d.Top, d.Right), 0, maxR)
	br = clamp(min(d.Bottom, d.Right), 0, maxR)
	bl = clamp(min(d.Bottom, d.Left), 0, maxR)
	return tl, tr, br, bl
}

// Contour returns the rounded-rect contour of d.
func (d Descriptor) Contour() *Path {
	return RoundedRect(d.Width, d.Height, d.Top, d.Bottom, d.Left, d.Right)
}

// RoundedRect returns a rectangle centered on the origin with quadratic corners. The contour
// starts at the top-left corner and runs clockwise (top edge first). Radii that would make
// the contour self-intersect are clamped.
func RoundedRect(width, height, rTop, rBottom, rLeft, rRight float32) *Path {
	d := Descriptor{Width: width, Height: height, Top: rTop, Bottom: rBottom, Left: rLeft, Right: rRight}
	tl, tr, br, bl := d.Corners()
	w, h := width/2, height/2

	p := &Path{}
	p.MoveTo(-w+tl, h)
	p.LineTo(w-tr, h)
	if tr > 0 {
		p.QuadTo(w, h, w, h-tr)
	}
	p.LineTo(w, -h+br)
	if br > 0 {
		p.QuadTo(w, -h, w-br, -h)
	}
	p.LineTo(-w+bl, -h)
	if bl > 0 {
		p.QuadTo(-w, -h, -w, -h+bl)
	}
	p.LineTo(-w, h-tl)
	if tl > 0 {
		p.QuadTo(-w, h, -w+tl, h)
	}
	return p
}

// ArchRadius returns the arch corner radius used for a width × height arch: radius clamped to
// [0.2*width, 0.65*width], then limited to half the width and the full height so the two top
// corners never cross.
func ArchRadius(width, height, radius float32) float32 {
	r := clamp(radius, width*0.2, width*0.65)
	return max(0, min(r, width/2, height))
}

// Arch returns a contour with a flat bottom edge and two symmetric rounded top corners,
// centered on the origin. It starts at the bottom-left corner and runs up the left side.
func Arch(width, height, radius float32) *Path {
	w, h := width/2, height/2
	r := ArchRadius(width, height, radius)

	p := &Path{}
	p.MoveTo(-w, -h)
	p.LineTo(-w, h-r)
	p.QuadTo(-w, h, -w+r, h)
	p.LineTo(w-r, h)
	p.QuadTo(w, h, w, h-r)
	p.LineTo(w, -h)
	return p
}

// Circle returns a full circle of radius min(width, height)/2 centered on the origin,
// running counterclockwise from the positive x axis.
func Circle(width, height float32) *Path {
	r := min(width, height) / 2
	p := &Path{}
	p.MoveTo(r, 0)
	p.Arc(0, 0, r, 0, 2*math32.Pi)
	return p
}

// Rect returns a plain rectangle centered on the origin, counterclockwise from the bottom-left.
func Rect(width, height float32) *Path {
	w, h := width/2, height/2
	p := &Path{}
	p.MoveTo(-w, -h)
	p.LineTo(w, -h)
	p.LineTo(w, h)
	p.LineTo(-w, h)
	return p
}
