package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// HoleSamples is the number of points a carved opening is sampled with.
const HoleSamples = 96

// Solid is an outer contour with one opening, ready for extrusion.
type Solid struct {
	Outer []mgl32.Vec2
	Hole  []mgl32.Vec2
}

// CarveHole builds a solid from outer with hole cut out of it. The hole is sampled evenly and
// its winding is reversed when it matches the outer winding, so the two always wind in
// opposite directions.
func CarveHole(outer, hole *Path) Solid {
	o := outer.Points(12)
	h := hole.SpacedPoints(HoleSamples)
	if IsClockwise(h) == IsClockwise(o) {
		h = Reversed(h)
	}
	return Solid{Outer: o, Hole: h}
}

// Extrude turns s into a closed slab of the given depth centered on z = 0: a front face at
// +depth/2, a back face, the outer side wall and the inner wall of the opening. The outer
// contour must be convex and the hole star-shaped about its bounds center; either winding is
// accepted.
func Extrude(s Solid, depth float32) *Mesh {
	m := &Mesh{}
	if len(s.Outer) < 3 || len(s.Hole) < 3 {
		return m
	}
	outer := s.Outer
	if IsClockwise(outer) {
		outer = Reversed(outer)
	}
	hole := s.Hole
	if IsClockwise(hole) {
		hole = Reversed(hole)
	}
	b := BoundsOf(outer)
	hc := BoundsOf(hole).Center()
	zf, zb := depth/2, -depth/2

	// Front and back faces: a strip from every hole sample out to the outer contour along the
	// ray from the hole center, with the outer corners inserted where the strip turns them.
	rim := make([]mgl32.Vec2, len(hole))
	for i, q := range hole {
		rim[i] = rayHit(outer, hc, q.Sub(hc))
	}
	cornerAngle := make([]float32, len(outer))
	for i, q := range outer {
		cornerAngle[i] = angleOf(q.Sub(hc))
	}
	face := func(z float32, normal mgl32.Vec3, flip bool) {
		at := func(q mgl32.Vec2) uint16 {
			return m.add(mgl32.Vec3{q[0], q[1], z}, normal, faceUV(b, q))
		}
		emit := func(a, b, c uint16) {
			if flip {
				m.tri(a, c, b)
			} else {
				m.tri(a, b, c)
			}
		}
		for i := range hole {
			j := (i + 1) % len(hole)
			hi, hj := at(hole[i]), at(hole[j])
			prev := at(rim[i])
			a0 := angleOf(hole[i].Sub(hc))
			span := angleBetween(a0, angleOf(hole[j].Sub(hc)))
			for _, k := range cornersWithin(cornerAngle, a0, span) {
				c := at(outer[k])
				emit(hi, prev, c)
				prev = c
			}
			rj := at(rim[j])
			emit(hi, prev, rj)
			emit(hi, rj, hj)
		}
	}
	face(zf, mgl32.Vec3{0, 0, 1}, false)
	face(zb, mgl32.Vec3{0, 0, -1}, true)

	side := func(pts []mgl32.Vec2, inward bool) {
		var perim float32
		for i := range pts {
			perim += pts[(i+1)%len(pts)].Sub(pts[i]).Len()
		}
		var run float32
		for i := range pts {
			a, c := pts[i], pts[(i+1)%len(pts)]
			edge := c.Sub(a)
			l := edge.Len()
			if l == 0 {
				continue
			}
			// Outward normal of a counterclockwise contour edge.
			n := mgl32.Vec3{edge[1] / l, -edge[0] / l, 0}
			if inward {
				n = n.Mul(-1)
			}
			u0, u1 := run/perim, (run+l)/perim
			run += l
			af := m.add(mgl32.Vec3{a[0], a[1], zf}, n, mgl32.Vec2{u0, 0})
			ab := m.add(mgl32.Vec3{a[0], a[1], zb}, n, mgl32.Vec2{u0, 1})
			cf := m.add(mgl32.Vec3{c[0], c[1], zf}, n, mgl32.Vec2{u1, 0})
			cb := m.add(mgl32.Vec3{c[0], c[1], zb}, n, mgl32.Vec2{u1, 1})
			if inward {
				m.tri(af, cf, cb)
				m.tri(af, cb, ab)
			} else {
				m.tri(af, ab, cb)
				m.tri(af, cb, cf)
			}
		}
	}
	side(outer, false)
	side(hole, true)
	return m
}

// rayHit returns the first point where the ray from origin along dir leaves the convex polygon.
func rayHit(poly []mgl32.Vec2, origin, dir mgl32.Vec2) mgl32.Vec2 {
	best := float32(math32.Inf(1))
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		e := b.Sub(a)
		den := dir[0]*e[1] - dir[1]*e[0]
		if math32.Abs(den) < 1e-9 {
			continue
		}
		w := a.Sub(origin)
		t := (w[0]*e[1] - w[1]*e[0]) / den
		u := (w[0]*dir[1] - w[1]*dir[0]) / den
		if t > 0 && u >= -1e-5 && u <= 1+1e-5 && t < best {
			best = t
		}
	}
	if math32.IsInf(best, 1) {
		return origin.Add(dir)
	}
	return origin.Add(dir.Mul(best))
}

func angleOf(v mgl32.Vec2) float32 {
	return math32.Atan2(v[1], v[0])
}

// angleBetween returns the counterclockwise sweep from a to b in [0, 2π).
func angleBetween(a, b float32) float32 {
	d := math32.Mod(b-a, 2*math32.Pi)
	if d < 0 {
		d += 2 * math32.Pi
	}
	return d
}

// cornersWithin returns the indices of the corners strictly inside the sweep (a0, a0+span),
// ordered counterclockwise.
func cornersWithin(angles []float32, a0, span float32) []int {
	var idx []int
	var rel []float32
	for k, a := range angles {
		d := angleBetween(a0, a)
		if d <= 1e-6 || d >= span-1e-6 {
			continue
		}
		// Insertion keeps the list sorted by sweep.
		pos := len(rel)
		for pos > 0 && rel[pos-1] > d {
			pos--
		}
		rel = append(rel, 0)
		idx = append(idx, 0)
		copy(rel[pos+1:], rel[pos:])
		copy(idx[pos+1:], idx[pos:])
		rel[pos], idx[pos] = d, k
	}
	return idx
}
