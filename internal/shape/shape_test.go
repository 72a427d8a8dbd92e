package shape

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func nearly(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func TestCornersNeverExceedLimit(t *testing.T) {
	sizes := [][2]float32{{4.94, 8}, {1, 1}, {0.2, 5}, {10, 0.3}}
	radii := []float32{0, 0.01, 0.5, 2, 4, 50, -3}
	for _, sz := range sizes {
		limit := min(sz[0], sz[1]) * MaxCornerRatio
		for _, top := range radii {
			for _, side := range radii {
				d := Descriptor{Width: sz[0], Height: sz[1], Top: top, Bottom: side, Left: side, Right: top}
				tl, tr, br, bl := d.Corners()
				for _, r := range []float32{tl, tr, br, bl} {
					if r < 0 || r > limit+1e-6 {
						t.Fatalf("size %v radii (%v,%v): corner %v outside [0,%v]", sz, top, side, r, limit)
					}
				}
			}
		}
	}
}

func TestCornerUsesSmallerSide(t *testing.T) {
	d := Descriptor{Width: 4.94, Height: 8, Top: 4, Bottom: 0, Left: 4, Right: 2}
	tl, tr, br, bl := d.Corners()
	limit := float32(4.94 * MaxCornerRatio)
	if !nearly(tl, limit, 1e-5) || tr != 2 || br != 0 || bl != 0 {
		t.Fatalf("corners = %v %v %v %v", tl, tr, br, bl)
	}
}

func TestRoundedRectStaysInsideBounds(t *testing.T) {
	p := RoundedRect(4, 6, 100, 100, 100, 100)
	pts := p.Points(16)
	b := BoundsOf(pts)
	if b.Min[0] < -2-1e-5 || b.Max[0] > 2+1e-5 || b.Min[1] < -3-1e-5 || b.Max[1] > 3+1e-5 {
		t.Fatalf("bounds %+v escape the 4x6 rectangle", b)
	}
	if !IsClockwise(pts) {
		t.Fatal("rounded rect should run clockwise")
	}
	if !nearly(pts[0][0], -2+4*MaxCornerRatio, 1e-5) || pts[0][1] != 3 {
		t.Fatalf("contour starts at %v, want the top-left corner end", pts[0])
	}
}

func TestRoundedRectSharpCornersAreRectangle(t *testing.T) {
	pts := RoundedRect(2, 2, 0, 0, 0, 0).Points(8)
	if len(pts) != 4 {
		t.Fatalf("got %d points, want 4", len(pts))
	}
	if a := SignedArea(pts); !nearly(a, -4, 1e-5) {
		t.Fatalf("area = %v, want -4", a)
	}
}

func TestArchRadiusClamp(t *testing.T) {
	cases := []struct {
		w, h, r, want float32
	}{
		{10, 20, 0, 2},
		{10, 20, 3, 3},
		{10, 20, 6, 5},
		{3.23, 5.19, 1.65, 1.615},
	}
	for _, c := range cases {
		if got := ArchRadius(c.w, c.h, c.r); !nearly(got, c.want, 1e-5) {
			t.Errorf("ArchRadius(%v,%v,%v) = %v, want %v", c.w, c.h, c.r, got, c.want)
		}
	}
}

func TestArchHasFlatBottom(t *testing.T) {
	pts := Arch(4, 6, 1.5).Points(12)
	var bottom int
	for _, q := range pts {
		if nearly(q[1], -3, 1e-6) {
			bottom++
		}
	}
	if bottom != 2 {
		t.Fatalf("%d points on the bottom edge, want 2", bottom)
	}
	b := BoundsOf(pts)
	if !nearly(b.Max[1], 3, 1e-5) {
		t.Fatalf("arch top = %v, want 3", b.Max[1])
	}
}

func TestCircleRadius(t *testing.T) {
	pts := Circle(3, 5).Points(16)
	if len(pts) != 64 {
		t.Fatalf("got %d points, want 64", len(pts))
	}
	for _, q := range pts {
		if !nearly(q.Len(), 1.5, 1e-4) {
			t.Fatalf("point %v at radius %v, want 1.5", q, q.Len())
		}
	}
	if IsClockwise(pts) {
		t.Fatal("circle should run counterclockwise")
	}
}

func TestDomeZeroAtRimPositiveAtCenter(t *testing.T) {
	b := Bounds{Min: mgl32.Vec2{-2, -3}, Max: mgl32.Vec2{2, 3}}
	for _, depth := range []float32{0.01, 0.2, 1, 7} {
		f := DomeField(b, depth)
		if c := f(0, 0); c <= 0 || !nearly(c, depth*DomeScale, 1e-6) {
			t.Fatalf("depth %v: center = %v", depth, c)
		}
		for _, q := range [][2]float32{{2, 0}, {-2, 0}, {0, 3}, {0, -3}, {2, 3}, {5, 5}} {
			if z := f(q[0], q[1]); z != 0 {
				t.Fatalf("depth %v: rim point %v has z = %v", depth, q, z)
			}
		}
	}
}

func TestDomeDegenerateBounds(t *testing.T) {
	f := DomeField(Bounds{}, 1)
	if z := f(0, 0); z <= 0 {
		t.Fatalf("center of a degenerate face = %v", z)
	}
}

func TestCarveHoleOppositeWinding(t *testing.T) {
	outer := Rect(16, 10)
	for name, hole := range map[string]*Path{
		"arch":    Arch(3.23, 5.19, 1.65),
		"rounded": RoundedRect(3.23, 5.19, 1.65, 1.65, 1.65, 1.65),
		"circle":  Circle(3.23, 5.19),
	} {
		s := CarveHole(outer, hole)
		if IsClockwise(s.Outer) == IsClockwise(s.Hole) {
			t.Errorf("%s: hole winds the same way as the outer contour", name)
		}
		if len(s.Hole) != HoleSamples {
			t.Errorf("%s: %d hole samples", name, len(s.Hole))
		}
	}
}

func TestFillCoversContour(t *testing.T) {
	pts := RoundedRect(4, 6, 1, 1, 1, 1).Points(12)
	m := Fill(pts, 4, nil)
	if m.VertexCount() != len(pts)*4+1 {
		t.Fatalf("vertices = %d", m.VertexCount())
	}
	var area float32
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		pa, pb, pc := m.Vertex(a), m.Vertex(b), m.Vertex(c)
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		if n[2] < -1e-6 {
			t.Fatalf("triangle %d faces away from +z", i)
		}
		area += n[2] / 2
	}
	if want := -SignedArea(pts); !nearly(area, want, 1e-3) {
		t.Fatalf("filled area %v, contour area %v", area, want)
	}
	for i := 0; i < m.VertexCount(); i++ {
		uv := m.UV(i)
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Fatalf("uv %v out of range", uv)
		}
	}
}

func TestFillAppliesDome(t *testing.T) {
	d := Descriptor{Width: 4, Height: 6, Top: 1, Bottom: 1, Left: 1, Right: 1, Dome: 0.2}
	pts := d.Contour().Points(12)
	m := Fill(pts, 6, DomeField(BoundsOf(pts), d.Dome))
	center := m.Vertex(m.VertexCount() - 1)
	if !nearly(center[2], 0.2*DomeScale, 1e-6) {
		t.Fatalf("center z = %v", center[2])
	}
	for i := range pts {
		if z := m.Vertex(i)[2]; z != 0 {
			t.Fatalf("rim vertex %d has z = %v", i, z)
		}
	}
}

func TestExtrudeSlab(t *testing.T) {
	s := CarveHole(Rect(16, 10), Arch(3.23, 5.19, 1.65))
	depth := float32(0.41)
	m := Extrude(s, depth)
	zf := depth / 2
	if m.TriangleCount() == 0 {
		t.Fatal("no triangles")
	}
	if m.VertexCount() >= MaxVertices {
		t.Fatalf("too many vertices: %d", m.VertexCount())
	}
	var front float32
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		pa, pb, pc := m.Vertex(a), m.Vertex(b), m.Vertex(c)
		if pa[2] == zf && pb[2] == zf && pc[2] == zf {
			front += pb.Sub(pa).Cross(pc.Sub(pa))[2] / 2
		}
	}
	holeArea := math32.Abs(SignedArea(s.Hole))
	if want := 160 - holeArea; !nearly(front, want, 0.05) {
		t.Fatalf("front face area %v, want %v", front, want)
	}
}

func TestSpacedPointsEven(t *testing.T) {
	pts := Rect(2, 2).SpacedPoints(8)
	if len(pts) != 8 {
		t.Fatalf("got %d points", len(pts))
	}
	for i := range pts {
		d := pts[(i+1)%len(pts)].Sub(pts[i]).Len()
		if !nearly(d, 1, 1e-4) {
			t.Fatalf("gap %d = %v, want 1", i, d)
		}
	}
}

func TestOpenCylinderNormalsInward(t *testing.T) {
	m := OpenCylinder(11, 15, 32)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Vertex(i)
		n := mgl32.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
		if n.Dot(mgl32.Vec3{p[0], 0, p[2]}) >= 0 {
			t.Fatalf("vertex %d normal %v points outward", i, n)
		}
	}
}

func TestRingStaysInAnnulus(t *testing.T) {
	m := Ring(0.3, 0.5, 48)
	if m.TriangleCount() != 96 {
		t.Fatalf("triangles = %d, want 96", m.TriangleCount())
	}
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Vertex(i)
		r := math32.Hypot(p[0], p[1])
		if r < 0.3-1e-5 || r > 0.5+1e-5 || p[2] != 0 {
			t.Fatalf("vertex %d at %v outside annulus", i, p)
		}
		uv := m.UV(i)
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Fatalf("uv %v out of range", uv)
		}
	}
	for tr := 0; tr < m.TriangleCount(); tr++ {
		a, b, c := m.Triangle(tr)
		pa, pb, pc := m.Vertex(a), m.Vertex(b), m.Vertex(c)
		if n := pb.Sub(pa).Cross(pc.Sub(pa)); n[2] <= 0 {
			t.Fatalf("triangle %d faces away from +z", tr)
		}
	}
	if Ring(0.5, 0.5, 12).VertexCount() != 0 {
		t.Fatal("an empty annulus should have no vertices")
	}
}
