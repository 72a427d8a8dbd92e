package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with float channels in [0,1], the form shaders consume.
type Color struct {
	R, G, B float32
}

// White is the neutral tint.
var White = Color{1, 1, 1}

// Hex parses a "#rrggbb" or "#rgb" string. Invalid input yields fallback.
func Hex(s string, fallback Color) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return FromColorful(c)
}

// MustHex parses s and falls back to white.
func MustHex(s string) Color {
	return Hex(s, White)
}

// FromColorful converts a go-colorful color, clamping it into gamut.
func FromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{float32(c.R), float32(c.G), float32(c.B)}
}

// Colorful returns c as a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// HSL builds a color from hue in turns (wrapped into [0,1)), saturation and lightness.
func HSL(hueTurns, s, l float32) Color {
	h := float64(hueTurns) - float64(int(hueTurns))
	if h < 0 {
		h++
	}
	return FromColorful(colorful.Hsl(h*360, float64(s), float64(l)))
}

// Lerp mixes c toward o by t in RGB, like GLSL mix.
func (c Color) Lerp(o Color, t float32) Color {
	return FromColorful(c.Colorful().BlendRgb(o.Colorful(), float64(t)))
}

// Scale multiplies every channel by k without clamping.
func (c Color) Scale(k float32) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Vec3 returns c as a shader vec3.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// Vec4 returns c with alpha a as a shader vec4.
func (c Color) Vec4(a float32) mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, a}
}

// RGBA8 returns c as 8-bit channels with alpha a in [0,1].
func (c Color) RGBA8(a float32) [4]uint8 {
	ch := func(v float32) uint8 {
		return uint8(clamp01(v)*255 + 0.5)
	}
	return [4]uint8{ch(c.R), ch(c.G), ch(c.B), ch(a)}
}
