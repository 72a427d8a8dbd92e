package shape

// DomeScale is the fraction of the requested depth reached at the dome's center.
const DomeScale = 0.45

// DomeField returns the forward displacement of a face bounded by b: points are normalized to
// the half extents and z = clamp(1 - (x² + y²), 0, 1) * depth * DomeScale. It is zero on and
// beyond the unit rim and largest at the center.
func DomeField(b Bounds, depth float32) func(x, y float32) float32 {
	w, h := b.Size()
	halfW := max(w/2, 0.001)
	halfH := max(h/2, 0.001)
	c := b.Center()
	return func(x, y float32) float32 {
		nx := (x - c[0]) / halfW
		ny := (y - c[1]) / halfH
		return clamp(1-(nx*nx+ny*ny), 0, 1) * depth * DomeScale
	}
}
