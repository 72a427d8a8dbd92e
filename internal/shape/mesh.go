package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list in the layout raylib uploads: xyz positions and normals,
// uv texture coordinates and 16-bit indices.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

// UV returns the texture coordinate of vertex i.
func (m *Mesh) UV(i int) mgl32.Vec2 {
	return mgl32.Vec2{m.UVs[2*i], m.UVs[2*i+1]}
}

// Triangle returns the vertex indices of triangle t.
func (m *Mesh) Triangle(t int) (a, b, c int) {
	return int(m.Indices[3*t]), int(m.Indices[3*t+1]), int(m.Indices[3*t+2])
}

func (m *Mesh) add(p mgl32.Vec3, n mgl32.Vec3, uv mgl32.Vec2) uint16 {
	idx := uint16(m.VertexCount())
	m.Positions = append(m.Positions, p[0], p[1], p[2])
	m.Normals = append(m.Normals, n[0], n[1], n[2])
	m.UVs = append(m.UVs, uv[0], uv[1])
	return idx
}

func (m *Mesh) tri(a, b, c uint16) {
	m.Indices = append(m.Indices, a, b, c)
}

// MaxVertices is the largest vertex count addressable with 16-bit indices.
const MaxVertices = 1 << 16

// recomputeNormals replaces the normals with area-weighted vertex normals of the triangles.
func (m *Mesh) recomputeNormals() {
	acc := make([]mgl32.Vec3, m.VertexCount())
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		pa, pb, pc := m.Vertex(a), m.Vertex(b), m.Vertex(c)
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	for i, n := range acc {
		if n.Len() > 0 {
			n = n.Normalize()
		} else {
			n = mgl32.Vec3{0, 0, 1}
		}
		m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2] = n[0], n[1], n[2]
	}
}

// faceUV maps a contour point into [0,1]² over b, with v = 0 at the top edge so images
// uploaded top row first appear upright.
func faceUV(b Bounds, q mgl32.Vec2) mgl32.Vec2 {
	w, h := b.Size()
	u, v := float32(0.5), float32(0.5)
	if w > 0 {
		u = (q[0] - b.Min[0]) / w
	}
	if h > 0 {
		v = (b.Max[1] - q[1]) / h
	}
	return mgl32.Vec2{u, v}
}

// Fill triangulates the star-shaped contour pts into a face in the z = 0 plane facing +z,
// using rings concentric copies toward the bounds center so displacement fields have
// interior samples. dome, when non-nil, offsets each vertex along +z.
func Fill(pts []mgl32.Vec2, rings int, dome func(x, y float32) float32) *Mesh {
	m := &Mesh{}
	if len(pts) < 3 {
		return m
	}
	if IsClockwise(pts) {
		pts = Reversed(pts)
	}
	if rings < 1 {
		rings = 1
	}
	for rings > 1 && len(pts)*rings+1 > MaxVertices {
		rings--
	}
	b := BoundsOf(pts)
	c := b.Center()
	z := func(q mgl32.Vec2) float32 {
		if dome == nil {
			return 0
		}
		return dome(q[0], q[1])
	}
	n := len(pts)
	normal := mgl32.Vec3{0, 0, 1}
	for r := 0; r < rings; r++ {
		s := 1 - float32(r)/float32(rings)
		for _, q := range pts {
			p := c.Add(q.Sub(c).Mul(s))
			m.add(mgl32.Vec3{p[0], p[1], z(p)}, normal, faceUV(b, p))
		}
	}
	center := m.add(mgl32.Vec3{c[0], c[1], z(c)}, normal, faceUV(b, c))
	for r := 0; r < rings-1; r++ {
		outer := uint16(r * n)
		inner := uint16((r + 1) * n)
		for i := 0; i < n; i++ {
			j := uint16((i + 1) % n)
			ii := uint16(i)
			m.tri(outer+ii, outer+j, inner+j)
			m.tri(outer+ii, inner+j, inner+ii)
		}
	}
	last := uint16((rings - 1) * n)
	for i := 0; i < n; i++ {
		j := uint16((i + 1) % n)
		m.tri(last+uint16(i), last+j, center)
	}
	if dome != nil {
		m.recomputeNormals()
	}
	return m
}

// OpenCylinder returns a capless cylinder around the y axis, centered on the origin, whose
// normals point inward so it reads as an enclosure from inside.
func OpenCylinder(radius, height float32, segments int) *Mesh {
	m := &Mesh{}
	segments = max(segments, 3)
	h := height / 2
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		a := u * 2 * math32.Pi
		x, z := math32.Sin(a)*radius, math32.Cos(a)*radius
		n := mgl32.Vec3{-math32.Sin(a), 0, -math32.Cos(a)}
		m.add(mgl32.Vec3{x, h, z}, n, mgl32.Vec2{u, 0})
		m.add(mgl32.Vec3{x, -h, z}, n, mgl32.Vec2{u, 1})
	}
	for i := 0; i < segments; i++ {
		top, bottom := uint16(2*i), uint16(2*i+1)
		nextTop, nextBottom := top+2, bottom+2
		// Counterclockwise seen from the axis.
		m.tri(top, nextBottom, bottom)
		m.tri(top, nextTop, nextBottom)
	}
	return m
}

// Disc returns a filled circle of the given radius in the z = 0 plane facing +z.
func Disc(radius float32, segments int) *Mesh {
	return Fill(Circle(2*radius, 2*radius).Points(max(segments/4, 1)), 1, nil)
}

// Ring returns a flat annulus between inner and outer in the z = 0 plane facing +z. UVs map
// the outer square's extent, like Disc.
func Ring(inner, outer float32, segments int) *Mesh {
	m := &Mesh{}
	segments = max(segments, 3)
	inner = max(inner, 0)
	if outer <= inner {
		return m
	}
	normal := mgl32.Vec3{0, 0, 1}
	uv := func(x, y float32) mgl32.Vec2 {
		return mgl32.Vec2{0.5 + x/(2*outer), 0.5 - y/(2*outer)}
	}
	for i := 0; i <= segments; i++ {
		a := float32(i) / float32(segments) * 2 * math32.Pi
		c, s := math32.Cos(a), math32.Sin(a)
		m.add(mgl32.Vec3{c * outer, s * outer, 0}, normal, uv(c*outer, s*outer))
		m.add(mgl32.Vec3{c * inner, s * inner, 0}, normal, uv(c*inner, s*inner))
	}
	for i := 0; i < segments; i++ {
		o, in := uint16(2*i), uint16(2*i+1)
		m.tri(o, o+2, in+2)
		m.tri(o, in+2, in)
	}
	return m
}
