package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type segmentKind uint8

const (
	segLine segmentKind = iota
	segQuad
	segArc
)

type segment struct {
	kind   segmentKind
	ctrl   mgl32.Vec2 // quadratic control point
	to     mgl32.Vec2
	center mgl32.Vec2 // arc center
	radius float32
	a0, a1 float32 // arc start/end angles
}

// Path is a closed 2D contour made of straight edges, quadratic corners and circular arcs.
// The path closes implicitly from its last point back to its start.
type Path struct {
	start mgl32.Vec2
	cur   mgl32.Vec2
	segs  []segment
}

// MoveTo starts the contour at (x, y). Calling it again discards the segments so far.
func (p *Path) MoveTo(x, y float32) {
	p.start = mgl32.Vec2{x, y}
	p.cur = p.start
	p.segs = p.segs[:0]
}

// LineTo adds a straight edge to (x, y).
func (p *Path) LineTo(x, y float32) {
	to := mgl32.Vec2{x, y}
	p.segs = append(p.segs, segment{kind: segLine, to: to})
	p.cur = to
}

// QuadTo adds a quadratic Bézier edge with control point (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float32) {
	to := mgl32.Vec2{x, y}
	p.segs = append(p.segs, segment{kind: segQuad, ctrl: mgl32.Vec2{cx, cy}, to: to})
	p.cur = to
}

// Arc adds a circular arc around (cx, cy) from angle a0 to a1 (radians, counterclockwise when a1 > a0).
func (p *Path) Arc(cx, cy, r, a0, a1 float32) {
	to := mgl32.Vec2{cx + math32.Cos(a1)*r, cy + math32.Sin(a1)*r}
	p.segs = append(p.segs, segment{kind: segArc, center: mgl32.Vec2{cx, cy}, radius: r, a0: a0, a1: a1, to: to})
	p.cur = to
}

// Points samples the contour. Straight edges contribute their end point, quadratic edges
// divisions points and a full circle 4*divisions points. The start point is not repeated.
func (p *Path) Points(divisions int) []mgl32.Vec2 {
	if divisions < 1 {
		divisions = 1
	}
	pts := []mgl32.Vec2{p.start}
	prev := p.start
	for _, s := range p.segs {
		switch s.kind {
		case segLine:
			pts = append(pts, s.to)
		case segQuad:
			for j := 1; j <= divisions; j++ {
				t := float32(j) / float32(divisions)
				u := 1 - t
				pts = append(pts, prev.Mul(u*u).Add(s.ctrl.Mul(2*u*t)).Add(s.to.Mul(t*t)))
			}
		case segArc:
			n := max(1, int(math32.Ceil(float32(divisions)*4*math32.Abs(s.a1-s.a0)/(2*math32.Pi))))
			for j := 1; j <= n; j++ {
				a := s.a0 + (s.a1-s.a0)*float32(j)/float32(n)
				pts = append(pts, mgl32.Vec2{s.center[0] + math32.Cos(a)*s.radius, s.center[1] + math32.Sin(a)*s.radius})
			}
		}
		prev = s.to
	}
	return dedupe(pts)
}

// samePoint compares with an absolute tolerance; contour coordinates are in world units.
func samePoint(a, b mgl32.Vec2) bool {
	const eps = 1e-5
	return math32.Abs(a[0]-b[0]) <= eps && math32.Abs(a[1]-b[1]) <= eps
}

// dedupe drops consecutive duplicates and a trailing point equal to the start.
func dedupe(pts []mgl32.Vec2) []mgl32.Vec2 {
	out := pts[:0:0]
	for _, q := range pts {
		if len(out) > 0 && samePoint(out[len(out)-1], q) {
			continue
		}
		out = append(out, q)
	}
	for len(out) > 1 && samePoint(out[len(out)-1], out[0]) {
		out = out[:len(out)-1]
	}
	return out
}

// SpacedPoints resamples the contour into n points evenly spaced by arc length.
func (p *Path) SpacedPoints(n int) []mgl32.Vec2 {
	return Resample(p.Points(24), n)
}

// Resample returns n points evenly spaced by arc length along the closed polygon pts.
func Resample(pts []mgl32.Vec2, n int) []mgl32.Vec2 {
	if n <= 0 || len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		out := make([]mgl32.Vec2, n)
		for i := range out {
			out[i] = pts[0]
		}
		return out
	}
	cum := make([]float32, len(pts)+1)
	for i := range pts {
		cum[i+1] = cum[i] + pts[(i+1)%len(pts)].Sub(pts[i]).Len()
	}
	total := cum[len(pts)]
	out := make([]mgl32.Vec2, 0, n)
	seg := 0
	for k := 0; k < n; k++ {
		d := total * float32(k) / float32(n)
		for seg < len(pts)-1 && cum[seg+1] < d {
			seg++
		}
		a, b := pts[seg], pts[(seg+1)%len(pts)]
		l := cum[seg+1] - cum[seg]
		t := float32(0)
		if l > 0 {
			t = (d - cum[seg]) / l
		}
		out = append(out, a.Add(b.Sub(a).Mul(t)))
	}
	return out
}

// SignedArea returns the shoelace area of pts; positive for counterclockwise order in a y-up frame.
func SignedArea(pts []mgl32.Vec2) float32 {
	var a float32
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return a / 2
}

// IsClockwise reports whether pts wind clockwise in a y-up frame.
func IsClockwise(pts []mgl32.Vec2) bool {
	return SignedArea(pts) < 0
}

// Reversed returns a reversed copy of pts.
func Reversed(pts []mgl32.Vec2) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(pts))
	for i, q := range pts {
		out[len(pts)-1-i] = q
	}
	return out
}

// Bounds is an axis-aligned rectangle in contour space.
type Bounds struct {
	Min, Max mgl32.Vec2
}

// BoundsOf returns the bounding rectangle of pts.
func BoundsOf(pts []mgl32.Vec2) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, q := range pts[1:] {
		b.Min = mgl32.Vec2{min(b.Min[0], q[0]), min(b.Min[1], q[1])}
		b.Max = mgl32.Vec2{max(b.Max[0], q[0]), max(b.Max[1], q[1])}
	}
	return b
}

// Center returns the midpoint of b.
func (b Bounds) Center() mgl32.Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the width and height of b.
func (b Bounds) Size() (w, h float32) {
	return b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]
}
