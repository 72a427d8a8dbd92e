package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/material"
	"github.com/Jayesh2401/museum/internal/texture"
)

// binder implements material.Binder over one program. Locations are looked up once per name
// and cached; names the program does not declare resolve to -1 and are skipped.
type binder struct {
	locs   map[string]int32
	lookup func(name string) int32
	set    func(loc int32, v []float32, kind rl.ShaderUniformDataType)

	// texture is the last texture bound to texture0; the backend puts it on the material.
	texture *texture.Entry
}

var _ material.Binder = (*binder)(nil)

func newBinder(shader rl.Shader) *binder {
	return &binder{
		locs:   make(map[string]int32),
		lookup: func(name string) int32 { return rl.GetShaderLocation(shader, name) },
		set: func(loc int32, v []float32, kind rl.ShaderUniformDataType) {
			rl.SetShaderValue(shader, loc, v, kind)
		},
	}
}

func (b *binder) loc(name string) int32 {
	if l, ok := b.locs[name]; ok {
		return l
	}
	l := b.lookup(name)
	b.locs[name] = l
	return l
}

// reset clears the per-draw texture.
func (b *binder) reset() { b.texture = nil }

func (b *binder) Float(name string, v float32) {
	if l := b.loc(name); l >= 0 {
		b.set(l, []float32{v}, rl.ShaderUniformFloat)
	}
}

func (b *binder) Vec2(name string, v mgl32.Vec2) {
	if l := b.loc(name); l >= 0 {
		b.set(l, []float32{v[0], v[1]}, rl.ShaderUniformVec2)
	}
}

func (b *binder) Vec3(name string, v mgl32.Vec3) {
	if l := b.loc(name); l >= 0 {
		b.set(l, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3)
	}
}

func (b *binder) Vec4(name string, v mgl32.Vec4) {
	if l := b.loc(name); l >= 0 {
		b.set(l, []float32{v[0], v[1], v[2], v[3]}, rl.ShaderUniformVec4)
	}
}

// Texture records t. Every program samples a single texture0, which raylib binds from the
// material's albedo map.
func (b *binder) Texture(name string, t *texture.Entry) {
	if name == "texture0" {
		b.texture = t
	}
}

// lineColor captures an outline's color; outlines are drawn as lines without a program.
type lineColor struct {
	color mgl32.Vec4
}

func (c *lineColor) Float(string, float32)          {}
func (c *lineColor) Vec2(string, mgl32.Vec2)        {}
func (c *lineColor) Vec3(string, mgl32.Vec3)        {}
func (c *lineColor) Texture(string, *texture.Entry) {}

func (c *lineColor) Vec4(name string, v mgl32.Vec4) {
	if name == "lineColor" {
		c.color = v
	}
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector(v mgl32.Vec3) rl.Vector3 { return rl.NewVector3(v[0], v[1], v[2]) }

// toColor converts a float color and alpha into 8-bit raylib channels.
func toColor(c material.Color, a float32) rl.Color {
	ch := c.RGBA8(a)
	return rl.NewColor(ch[0], ch[1], ch[2], ch[3])
}

func vec4Color(v mgl32.Vec4) rl.Color {
	return toColor(material.Color{R: v[0], G: v[1], B: v[2]}, v[3])
}
