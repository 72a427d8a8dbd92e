// Package render draws arenas with raylib. GPU resources are created on first draw, after the
// window and its OpenGL context exist, and freed when the composer releases them.
package render

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/composer"
	"github.com/Jayesh2401/museum/internal/hover"
	"github.com/Jayesh2401/museum/internal/material"
	"github.com/Jayesh2401/museum/internal/shape"
	"github.com/Jayesh2401/museum/internal/texture"
)

// Cloud opacities of the point kinds that carry no opacity of their own.
const (
	DustOpacity  = 0.92
	SparkOpacity = 1
)

// Stats counts what the last Draw submitted.
type Stats struct {
	Layers int
	Lines  int
	Points int
}

type program struct {
	shader rl.Shader
	mtl    rl.Material
	bind   *binder
}

// Backend is the raylib renderer. It implements composer.Releaser.
type Backend struct {
	up       *uploads
	programs map[material.Kind]*program
	bloom    bloom
	camera   rl.Camera3D
	logf     texture.Logf
	stats    Stats
}

var _ composer.Releaser = (*Backend)(nil)

// New returns a backend. logf may be nil.
func New(logf texture.Logf) *Backend {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Backend{
		up:       newUploads(),
		programs: make(map[material.Kind]*program),
		logf:     logf,
	}
}

// ReleaseMesh frees the GPU copy of m.
func (b *Backend) ReleaseMesh(m *shape.Mesh) { b.up.dropMesh(m) }

// ReleaseTexture frees the GPU copy of e.
func (b *Backend) ReleaseTexture(e *texture.Entry) { b.up.dropTexture(e) }

// Stats returns the counts of the last frame.
func (b *Backend) Stats() Stats { return b.stats }

// Close frees every GPU resource. Call before the window closes.
func (b *Backend) Close() {
	b.up.close()
	for k, p := range b.programs {
		if p != nil {
			rl.UnloadShader(p.shader)
		}
		delete(b.programs, k)
	}
	b.bloom.close()
}

// program returns the compiled program of k, or nil when k has none or it failed to compile.
func (b *Backend) program(k material.Kind) *program {
	if p, ok := b.programs[k]; ok {
		return p
	}
	vs, fs, ok := material.Program(k)
	if !ok {
		b.programs[k] = nil
		return nil
	}
	shader := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(shader) {
		b.logf("render: %s program failed to compile", k)
		b.programs[k] = nil
		return nil
	}
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = shader
	p := &program{shader: shader, mtl: mtl, bind: newBinder(shader)}
	b.programs[k] = p
	return p
}

func camera3D(c hover.Camera) rl.Camera3D {
	up := c.Up
	if up.Len() == 0 {
		up = mgl32.Vec3{0, 1, 0}
	}
	return rl.Camera3D{
		Position:   toVector(c.Position),
		Target:     toVector(c.Target),
		Up:         toVector(up),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// backToFront orders panels by decreasing distance from eye so translucent stacks blend over
// what is behind them.
func backToFront(panels []*composer.Panel, eye mgl32.Vec3) []*composer.Panel {
	out := append([]*composer.Panel(nil), panels...)
	dist := func(p *composer.Panel) float32 {
		return mgl32.Vec3{p.World[12], p.World[13], p.World[14]}.Sub(eye).LenSqr()
	}
	sort.SliceStable(out, func(i, j int) bool { return dist(out[i]) > dist(out[j]) })
	return out
}

// Draw renders a. It must be called between BeginDrawing and EndDrawing.
func (b *Backend) Draw(a *composer.Arena) {
	if a == nil {
		return
	}
	b.stats = Stats{}
	b.camera = camera3D(a.Camera)

	offscreen := b.bloom.begin(a.Bloom, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	rl.ClearBackground(toColor(a.Background, 1))
	rl.BeginMode3D(b.camera)

	for _, l := range a.Props {
		b.drawLayer(l, l.Local)
	}
	if acc := a.Accretion; acc != nil {
		world := acc.World()
		for _, l := range acc.Layers {
			b.drawLayer(l, world.Mul4(l.Local))
		}
	}
	for _, p := range backToFront(a.Panels, a.Camera.Position) {
		if p.Opacity <= 0 {
			continue
		}
		for _, l := range p.Layers {
			b.drawLayer(l, p.LayerWorld(l))
		}
	}
	b.drawClouds(a)

	rl.EndMode3D()
	if offscreen {
		b.bloom.end(a.Bloom)
	}
}

func (b *Backend) drawLayer(l *composer.Layer, world mgl32.Mat4) {
	if len(l.Line) > 1 {
		b.drawLine(l, world)
		return
	}
	mesh, ok := b.up.mesh(l.Mesh)
	if !ok {
		return
	}
	p := b.program(l.Kind())
	if p == nil {
		return
	}
	p.bind.reset()
	l.Uniforms.Bind(p.bind)
	rl.SetMaterialTexture(&p.mtl, rl.MapAlbedo, b.up.texture(p.bind.texture))

	if l.Blend() == material.BlendAdditive {
		rl.BeginBlendMode(rl.BlendAdditive)
	} else {
		rl.BeginBlendMode(rl.BlendAlpha)
	}
	if !l.DepthWrite() {
		rl.DisableDepthMask()
	}
	if l.DoubleSided {
		rl.DisableBackfaceCulling()
	}
	rl.DrawMesh(mesh, p.mtl, toMatrix(world))
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
	rl.EndBlendMode()
	b.stats.Layers++
}

func (b *Backend) drawLine(l *composer.Layer, world mgl32.Mat4) {
	var lc lineColor
	l.Uniforms.Bind(&lc)
	col := vec4Color(lc.color)
	if col.A == 0 {
		return
	}
	if l.Blend() == material.BlendAdditive {
		rl.BeginBlendMode(rl.BlendAdditive)
	} else {
		rl.BeginBlendMode(rl.BlendAlpha)
	}
	prev := toVector(mgl32.TransformCoordinate(l.Line[0], world))
	for _, pt := range l.Line[1:] {
		next := toVector(mgl32.TransformCoordinate(pt, world))
		rl.DrawLine3D(prev, next, col)
		prev = next
	}
	rl.EndBlendMode()
	b.stats.Lines++
}

// cloud is one batch of camera-facing point sprites.
type cloud struct {
	uniforms  *material.SpriteUniforms
	world     mgl32.Mat4
	positions []float32
	size      func(i int) float32
	tint      func(i int) rl.Color
}

func (b *Backend) drawClouds(a *composer.Arena) {
	if f := a.Field; f != nil && a.Config.Particles.Enabled {
		world := mgl32.HomogRotate3DY(f.Yaw)
		for _, l := range f.Layers {
			spr := a.Sprites[l.Look]
			glow, core := toColor(l.GlowColor, 1), toColor(l.CoreColor, 1)
			b.drawCloud(cloud{
				uniforms:  &material.SpriteUniforms{SpriteKind: material.KindParticle, Texture: spr, Opacity: l.GlowOpacity},
				world:     world,
				positions: l.Positions,
				size:      func(int) float32 { return l.GlowSize },
				tint:      func(int) rl.Color { return glow },
			})
			b.drawCloud(cloud{
				uniforms:  &material.SpriteUniforms{SpriteKind: material.KindParticle, Texture: spr, Opacity: l.CoreOpacity},
				world:     world,
				positions: l.Positions,
				size:      func(int) float32 { return l.CoreSize },
				tint:      func(int) rl.Color { return core },
			})
		}
	}
	if acc := a.Accretion; acc != nil && acc.Dust != nil {
		d := acc.Dust
		b.drawCloud(cloud{
			uniforms:  &material.SpriteUniforms{SpriteKind: material.KindDust, Texture: a.Sprites[texture.LookDust], Opacity: DustOpacity},
			world:     acc.DustWorld(),
			positions: d.Positions,
			size:      d.Size,
			tint:      func(i int) rl.Color { return toColor(d.Color(i), 1) },
		})
	}
	for _, p := range a.Panels {
		s := p.Sparks
		if s == nil {
			continue
		}
		b.drawCloud(cloud{
			uniforms:  &material.SpriteUniforms{SpriteKind: material.KindSpark, Texture: a.Sprites[texture.LookSpark], Opacity: SparkOpacity * p.Opacity},
			world:     p.SparkWorld(),
			positions: s.Positions,
			size:      s.Size,
			tint:      func(i int) rl.Color { return toColor(s.Color, s.Alpha[i]) },
		})
	}
}

func (b *Backend) drawCloud(c cloud) {
	n := len(c.positions) / 3
	if n == 0 || c.uniforms.Opacity <= 0 {
		return
	}
	p := b.program(c.uniforms.Kind())
	if p == nil {
		return
	}
	p.bind.reset()
	c.uniforms.Bind(p.bind)
	tex := b.up.texture(p.bind.texture)

	rl.BeginShaderMode(p.shader)
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DisableDepthMask()
	for i := 0; i < n; i++ {
		pt := mgl32.Vec3{c.positions[3*i], c.positions[3*i+1], c.positions[3*i+2]}
		rl.DrawBillboard(b.camera, tex, toVector(mgl32.TransformCoordinate(pt, c.world)), c.size(i), c.tint(i))
	}
	rl.EndBlendMode()
	rl.EndShaderMode()
	rl.EnableDepthMask()
	b.stats.Points += n
}
