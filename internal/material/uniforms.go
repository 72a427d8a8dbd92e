package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/texture"
)

// Binder receives uniform values by their GLSL name. The GPU backend implements it on top of
// shader locations; tests record the calls.
type Binder interface {
	Float(name string, v float32)
	Vec2(name string, v mgl32.Vec2)
	Vec3(name string, v mgl32.Vec3)
	Vec4(name string, v mgl32.Vec4)
	Texture(name string, t *texture.Entry)
}

// Uniforms is the typed parameter block of one layer.
type Uniforms interface {
	Kind() Kind
	Bind(b Binder)
}

// ImageUniforms shades a panel face with its picture.
type ImageUniforms struct {
	Texture *texture.Entry
	Tint    Color
	Repeat  mgl32.Vec2
	Offset  mgl32.Vec2
	Opacity float32
}

// NewImage returns image uniforms showing t untinted over the full UV range.
func NewImage(t *texture.Entry) *ImageUniforms {
	return &ImageUniforms{Texture: t, Tint: White, Repeat: mgl32.Vec2{1, 1}, Opacity: 1}
}

func (u *ImageUniforms) Kind() Kind { return KindImage }

func (u *ImageUniforms) Bind(b Binder) {
	b.Texture("texture0", u.Texture)
	b.Vec3("tint", u.Tint.Vec3())
	b.Vec2("repeat", u.Repeat)
	b.Vec2("offset", u.Offset)
	b.Float("opacity", u.Opacity)
}

// ArtifactUniforms shades an immersive arch card: rippling surface, contrast lift with focus,
// caustics and a pointer-following gloss.
type ArtifactUniforms struct {
	Texture *texture.Entry
	Repeat  mgl32.Vec2
	Offset  mgl32.Vec2
	Time    float32
	Hover   float32
	Focus   float32
	Opacity float32
	Pointer mgl32.Vec2
}

// NewArtifact returns artifact uniforms for t at rest.
func NewArtifact(t *texture.Entry) *ArtifactUniforms {
	return &ArtifactUniforms{Texture: t, Repeat: mgl32.Vec2{1, 1}, Opacity: 1}
}

func (u *ArtifactUniforms) Kind() Kind { return KindArtifact }

// WaveStrength is the vertex ripple amplitude for the current hover and focus.
func (u *ArtifactUniforms) WaveStrength() float32 {
	return 0.04 + u.Hover*0.22 + u.Focus*0.03
}

func (u *ArtifactUniforms) Bind(b Binder) {
	b.Texture("texture0", u.Texture)
	b.Vec2("repeat", u.Repeat)
	b.Vec2("offset", u.Offset)
	b.Float("time", u.Time)
	b.Float("hover", u.Hover)
	b.Float("focus", u.Focus)
	b.Float("opacity", u.Opacity)
	b.Vec2("pointer", u.Pointer)
	b.Float("waveStrength", u.WaveStrength())
	b.Float("waveSway", u.Hover*0.03)
}

// WaterUniforms is the ripple overlay drawn just in front of an image face. It is also the
// hover surface of its panel.
type WaterUniforms struct {
	Texture    *texture.Entry
	Time       float32
	Strength   float32
	Speed      float32
	Opacity    float32
	Repeat     mgl32.Vec2
	Offset     mgl32.Vec2
	Hover      float32
	HoverUV    mgl32.Vec2
	HoverColor Color
}

// DefaultHoverColor is the water hover tint before the pointer has touched a panel.
var DefaultHoverColor = Color{0x6a / 255.0, 0xa9 / 255.0, 1}

// NewWater returns water uniforms over t.
func NewWater(t *texture.Entry, strength, speed, opacity float32) *WaterUniforms {
	return &WaterUniforms{
		Texture:    t,
		Strength:   strength,
		Speed:      speed,
		Opacity:    opacity,
		Repeat:     mgl32.Vec2{1, 1},
		HoverUV:    mgl32.Vec2{0.5, 0.5},
		HoverColor: DefaultHoverColor,
	}
}

func (u *WaterUniforms) Kind() Kind { return KindWater }

func (u *WaterUniforms) Bind(b Binder) {
	b.Texture("texture0", u.Texture)
	b.Float("time", u.Time)
	b.Float("strength", u.Strength)
	b.Float("speed", u.Speed)
	b.Float("opacity", u.Opacity)
	b.Vec2("repeat", u.Repeat)
	b.Vec2("offset", u.Offset)
	b.Float("hover", u.Hover)
	b.Vec2("hoverUv", u.HoverUV)
	b.Vec3("hoverColor", u.HoverColor.Vec3())
}

// GlowUniforms is one backlight band behind a panel.
type GlowUniforms struct {
	Color    Color
	Strength float32
}

func (u *GlowUniforms) Kind() Kind { return KindGlow }

func (u *GlowUniforms) Bind(b Binder) {
	b.Vec3("glowColor", u.Color.Vec3())
	b.Float("strength", u.Strength)
}

// GlassUniforms is one transmissive plate in front of a panel.
type GlassUniforms struct {
	Tint         Color
	Opacity      float32
	Roughness    float32
	Transmission float32
	Ior          float32
	Thickness    float32
	ViewPos      mgl32.Vec3
}

func (u *GlassUniforms) Kind() Kind { return KindGlass }

// F0 is the normal-incidence reflectance implied by the index of refraction.
func (u *GlassUniforms) F0() float32 {
	r := (u.Ior - 1) / (u.Ior + 1)
	return r * r
}

func (u *GlassUniforms) Bind(b Binder) {
	b.Vec3("tint", u.Tint.Vec3())
	b.Float("opacity", u.Opacity)
	b.Float("roughness", u.Roughness)
	b.Float("transmission", u.Transmission)
	b.Float("f0", u.F0())
	b.Float("thickness", u.Thickness)
	b.Vec3("viewPos", u.ViewPos)
}

// OutlineUniforms colors a contour polyline. Hot outlines pulse with time.
type OutlineUniforms struct {
	Color     Color
	Opacity   float32
	BaseAlpha float32
	Hot       bool
}

func (u *OutlineUniforms) Kind() Kind { return KindOutline }

func (u *OutlineUniforms) Bind(b Binder) {
	b.Vec4("lineColor", u.Color.Vec4(u.Opacity))
}

// PortalUniforms drives the fractal energy field of a portal core or its outer ring.
type PortalUniforms struct {
	Time         float32
	Inner        Color
	Outer        Color
	CoreStrength float32
	RingStrength float32
	NoiseScale   float32
	FlowSpeed    float32
	Opacity      float32
}

func (u *PortalUniforms) Kind() Kind { return KindPortal }

func (u *PortalUniforms) Bind(b Binder) {
	b.Float("time", u.Time)
	b.Vec3("innerColor", u.Inner.Vec3())
	b.Vec3("outerColor", u.Outer.Vec3())
	b.Float("coreStrength", u.CoreStrength)
	b.Float("ringStrength", u.RingStrength)
	b.Float("noiseScale", u.NoiseScale)
	b.Float("flowSpeed", u.FlowSpeed)
	b.Float("opacity", u.Opacity)
}

// DiskUniforms drives the accretion disk: a hot band around RingRadius with a black core
// inside HoleSize. Radii are in the disk's normalized [0,1] space.
type DiskUniforms struct {
	Time       float32
	ColorA     Color
	ColorB     Color
	HoleSize   float32
	RingRadius float32
	SpinSpeed  float32
	Glow       float32
}

func (u *DiskUniforms) Kind() Kind { return KindDisk }

func (u *DiskUniforms) Bind(b Binder) {
	b.Float("time", u.Time)
	b.Vec3("colorA", u.ColorA.Vec3())
	b.Vec3("colorB", u.ColorB.Vec3())
	b.Float("holeSize", u.HoleSize)
	b.Float("ringRadius", u.RingRadius)
	b.Float("spin", u.SpinSpeed)
	b.Float("glow", u.Glow)
}

// SpriteUniforms is shared by the point-sprite kinds; per-point color and alpha travel with
// the vertices.
type SpriteUniforms struct {
	SpriteKind Kind
	Texture    *texture.Entry
	Opacity    float32
}

func (u *SpriteUniforms) Kind() Kind { return u.SpriteKind }

func (u *SpriteUniforms) Bind(b Binder) {
	b.Texture("texture0", u.Texture)
	b.Float("opacity", u.Opacity)
}

// LitUniforms shades enclosure surfaces with a hemisphere, key and rim light.
type LitUniforms struct {
	Color         Color
	Opacity       float32
	Metalness     float32
	Roughness     float32
	HemiIntensity float32
	KeyIntensity  float32
	RimIntensity  float32
	ViewPos       mgl32.Vec3
	Texture       *texture.Entry
	TextureMix    float32
	Emissive      float32
}

func (u *LitUniforms) Kind() Kind { return KindLit }

func (u *LitUniforms) Bind(b Binder) {
	b.Vec4("baseColor", u.Color.Vec4(u.Opacity))
	b.Float("metalness", u.Metalness)
	b.Float("roughness", u.Roughness)
	b.Float("hemiIntensity", u.HemiIntensity)
	b.Float("keyIntensity", u.KeyIntensity)
	b.Float("rimIntensity", u.RimIntensity)
	b.Vec3("viewPos", u.ViewPos)
	b.Texture("texture0", u.Texture)
	b.Float("textureMix", u.TextureMix)
	b.Float("emissive", u.Emissive)
}

// FloorGridUniforms shades the immersive floor: drifting grid lines over a vignette.
type FloorGridUniforms struct {
	Time float32
}

func (u *FloorGridUniforms) Kind() Kind { return KindFloorGrid }

func (u *FloorGridUniforms) Bind(b Binder) {
	b.Float("time", u.Time)
}
