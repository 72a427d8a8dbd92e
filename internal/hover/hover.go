// Package hover casts the pointer into the scene and blends each panel's hover value toward
// whether the pointer is over it.
package hover

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/shape"
)

// Blend factors of the two hover styles.
const (
	RingFactor      = 0.12
	ImmersiveFactor = 0.13
)

// Blend moves value toward target by factor, the exponential step every smoothed value uses.
func Blend(value, target, factor float32) float32 {
	return value + (target-value)*factor
}

// Camera is a perspective camera. Fovy is the vertical field of view in degrees.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32
	Aspect   float32
	Near     float32
	Far      float32
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	up := c.Up
	if up.Len() == 0 {
		up = mgl32.Vec3{0, 1, 0}
	}
	return mgl32.LookAtV(c.Position, c.Target, up)
}

// Projection returns the perspective matrix.
func (c Camera) Projection() mgl32.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	near, far := c.Near, c.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = 1000
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, near, far)
}

// Ray is a half line with a unit direction.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t along r.
func (r Ray) At(t float32) mgl32.Vec3 { return r.Origin.Add(r.Dir.Mul(t)) }

// Ray returns the ray through the pointer at normalized device coordinates (x right, y up,
// both in [-1, 1]).
func (c Camera) Ray(x, y float32) Ray {
	inv := c.Projection().Mul4(c.View()).Inv()
	near := mgl32.TransformCoordinate(mgl32.Vec3{x, y, -1}, inv)
	far := mgl32.TransformCoordinate(mgl32.Vec3{x, y, 1}, inv)
	return Ray{Origin: c.Position, Dir: far.Sub(near).Normalize()}
}

const epsilon = 1e-7

// IntersectTriangle is Möller–Trumbore against the front face of (a, b, c), counterclockwise
// seen from the ray. t is the hit distance and (u, v) the barycentric weights of b and c.
func IntersectTriangle(r Ray, a, b, c mgl32.Vec3) (t, u, v float32, ok bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if det < epsilon {
		return 0, 0, 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u = s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	q := s.Cross(e1)
	v = r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	t = e2.Dot(q) * inv
	if t <= epsilon {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// Target is one pickable surface: a mesh and its model matrix.
type Target struct {
	Mesh  *shape.Mesh
	Model mgl32.Mat4
}

// Hit is the nearest intersection of a pick.
type Hit struct {
	Index    int
	Distance float32
	Point    mgl32.Vec3
	UV       mgl32.Vec2
}

// Pick intersects r with every target and returns the nearest hit.
func Pick(r Ray, targets []Target) (Hit, bool) {
	best := Hit{Index: -1}
	found := false
	for i, tg := range targets {
		if tg.Mesh == nil {
			continue
		}
		world := func(k int) mgl32.Vec3 {
			return mgl32.TransformCoordinate(tg.Mesh.Vertex(k), tg.Model)
		}
		for tri := 0; tri < tg.Mesh.TriangleCount(); tri++ {
			ia, ib, ic := tg.Mesh.Triangle(tri)
			t, u, v, ok := IntersectTriangle(r, world(ia), world(ib), world(ic))
			if !ok || (found && t >= best.Distance) {
				continue
			}
			w := 1 - u - v
			uv := tg.Mesh.UV(ia).Mul(w).Add(tg.Mesh.UV(ib).Mul(u)).Add(tg.Mesh.UV(ic).Mul(v))
			best = Hit{Index: i, Distance: t, Point: r.At(t), UV: uv}
			found = true
		}
	}
	return best, found
}

// Resolver tracks the hover value of every panel.
type Resolver struct {
	Factor  float32
	Values  []float32
	Targets []float32

	hit    Hit
	hasHit bool
}

// NewResolver returns a resolver for n panels blending with factor.
func NewResolver(n int, factor float32) *Resolver {
	return &Resolver{Factor: factor, Values: make([]float32, n), Targets: make([]float32, n)}
}

// Resize changes the panel count, keeping the values of surviving panels.
func (r *Resolver) Resize(n int) {
	for len(r.Values) < n {
		r.Values = append(r.Values, 0)
		r.Targets = append(r.Targets, 0)
	}
	r.Values = r.Values[:n]
	r.Targets = r.Targets[:n]
	if r.hasHit && r.hit.Index >= n {
		r.hasHit = false
	}
}

// Update picks with ray and sets the hit panel's target to 1 and every other target to 0. A
// nil ray (pointer outside the view) clears every target.
func (r *Resolver) Update(ray *Ray, targets []Target) {
	r.hasHit = false
	if ray != nil {
		r.hit, r.hasHit = Pick(*ray, targets)
	}
	for i := range r.Targets {
		r.Targets[i] = 0
	}
	if r.hasHit && r.hit.Index < len(r.Targets) {
		r.Targets[r.hit.Index] = 1
	}
}

// Step blends every value toward its target once.
func (r *Resolver) Step() {
	for i := range r.Values {
		r.Values[i] = Blend(r.Values[i], r.Targets[i], r.Factor)
	}
}

// Hit returns the current hit, if any.
func (r *Resolver) Hit() (Hit, bool) { return r.hit, r.hasHit }

// Index returns the hovered panel or -1.
func (r *Resolver) Index() int {
	if !r.hasHit {
		return -1
	}
	return r.hit.Index
}
