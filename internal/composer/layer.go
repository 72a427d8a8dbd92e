package composer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/material"
	"github.com/Jayesh2401/museum/internal/shape"
	"github.com/Jayesh2401/museum/internal/texture"
)

// Layer is one drawable: a mesh or a closed polyline with its uniforms. Local places it in its
// parent's frame (a panel, the accretion group or the world for props).
type Layer struct {
	Name string
	Mesh *shape.Mesh
	// Line is a closed polyline; the first point is repeated at the end.
	Line     []mgl32.Vec3
	Offset   float32
	Local    mgl32.Mat4
	Uniforms material.Uniforms

	DoubleSided  bool
	Additive     bool
	NoDepthWrite bool
}

// Kind returns the shading program of l.
func (l *Layer) Kind() material.Kind { return l.Uniforms.Kind() }

// Blend returns how l composites onto the frame.
func (l *Layer) Blend() material.Blend {
	if l.Additive {
		return material.BlendAdditive
	}
	return l.Kind().Blend()
}

// DepthWrite reports whether l writes the depth buffer.
func (l *Layer) DepthWrite() bool {
	return !l.NoDepthWrite && l.Kind().DepthWrite()
}

// place is the local frame of a face copy pushed forward by z and scaled in its plane.
func place(z, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, z).Mul4(mgl32.Scale3D(scale, scale, 1))
}

// flat lays a z-facing disc or ring into the xz plane at height y.
func flat(y float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, y, 0).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90)))
}

// outline lifts contour points to z.
func outline(pts []mgl32.Vec2, z float32) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, len(pts)+1)
	for _, p := range pts {
		out = append(out, mgl32.Vec3{p[0], p[1], z})
	}
	if len(pts) > 0 {
		out = append(out, out[0])
	}
	return out
}

// Releaser frees GPU resources held for meshes and textures. The render backend implements it.
type Releaser interface {
	ReleaseMesh(m *shape.Mesh)
	ReleaseTexture(e *texture.Entry)
}

// noRelease is used when the composer runs without a GPU backend.
type noRelease struct{}

func (noRelease) ReleaseMesh(*shape.Mesh)       {}
func (noRelease) ReleaseTexture(*texture.Entry) {}
