package config

import (
	"regexp"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Limits that keep a configuration renderable. Values outside them are clamped, never rejected.
const (
	MinFrameCount = 1
	MaxFrameCount = 64
	minDimension  = 0.05
	minFitScale   = 0.05
)

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func atLeast(v, lo float32) float32 {
	if v < lo {
		return lo
	}
	return v
}

func color(v, fallback string) string {
	if hexColorRe.MatchString(v) {
		return v
	}
	return fallback
}

// Clamp returns a copy of c with every out-of-range field pulled to its nearest valid value.
// Unknown themes become plain, unknown fit modes become cover and malformed colors fall back
// to the theme default.
func (c SceneConfig) Clamp() SceneConfig {
	out := c.Clone()
	if _, ok := ParseTheme(string(out.Theme)); !ok {
		out.Theme = ThemePlain
	}
	def := Default(out.Theme)

	if out.FrameCount < MinFrameCount {
		out.FrameCount = MinFrameCount
	}
	if out.FrameCount > MaxFrameCount {
		out.FrameCount = MaxFrameCount
	}
	out.FrameWidth = atLeast(out.FrameWidth, minDimension)
	out.FrameHeight = atLeast(out.FrameHeight, minDimension)
	out.FrameDepth = atLeast(out.FrameDepth, 0)
	// The inset may shrink the face to the minimum but never invert it.
	maxInset := (min(out.FrameWidth, out.FrameHeight) - minDimension) / 1.4
	out.FrameInset = clampf(out.FrameInset, 0, atLeast(maxInset, 0))
	if out.FrameGap <= 0 {
		out.FrameGap = def.FrameGap
	}
	out.RoundTop = atLeast(out.RoundTop, 0)
	out.RoundBottom = atLeast(out.RoundBottom, 0)
	out.RoundLeft = atLeast(out.RoundLeft, 0)
	out.RoundRight = atLeast(out.RoundRight, 0)
	out.ArchRadius = atLeast(out.ArchRadius, 0)

	out.WallRadius = atLeast(out.WallRadius, out.FrameDepth+minDimension)
	out.WallHeight = atLeast(out.WallHeight, minDimension)

	switch out.ImageFitMode {
	case FitCover, FitFill:
	default:
		out.ImageFitMode = FitCover
	}
	if out.ImageFitWidth <= 0 {
		out.ImageFitWidth = 1
	}
	if out.ImageFitHeight <= 0 {
		out.ImageFitHeight = 1
	}
	out.ImageFitWidth = atLeast(out.ImageFitWidth, minFitScale)
	out.ImageFitHeight = atLeast(out.ImageFitHeight, minFitScale)

	out.WaterStrength = atLeast(out.WaterStrength, 0)
	out.WaterOpacity = clampf(out.WaterOpacity, 0, 1)
	out.LineOpacity = clampf(out.LineOpacity, 0, 1)
	out.LineHotOpacity = clampf(out.LineHotOpacity, 0, 1)
	out.GlassOpacity1 = clampf(out.GlassOpacity1, 0, 1)
	out.GlassOpacity2 = clampf(out.GlassOpacity2, 0, 1)
	out.GlassOpacity3 = clampf(out.GlassOpacity3, 0, 1)
	out.GlassTransmission = clampf(out.GlassTransmission, 0, 1)
	out.GlassRoughness = clampf(out.GlassRoughness, 0, 1)
	out.GlassIor = clampf(out.GlassIor, 1, 2.333)
	out.GlassThickness = atLeast(out.GlassThickness, 0)
	out.CardGlassOpacity = clampf(out.CardGlassOpacity, 0, 1)
	out.GlowStrength = atLeast(out.GlowStrength, 0)
	out.BloomThreshold = clampf(out.BloomThreshold, 0, 1)
	out.BloomStrength = atLeast(out.BloomStrength, 0)
	out.BloomRadius = atLeast(out.BloomRadius, 0)

	out.CameraFov = clampf(out.CameraFov, 10, 120)

	out.BlackHoleSize = clampf(out.BlackHoleSize, 0, 0.98)
	out.BlackHoleRingRadius = clampf(out.BlackHoleRingRadius, 0, 0.98)

	switch out.HoleShape {
	case HoleArch, HoleRounded, HoleCircle:
	default:
		out.HoleShape = HoleArch
	}
	out.HoleWallWidth = atLeast(out.HoleWallWidth, minDimension)
	out.HoleWallHeight = atLeast(out.HoleWallHeight, minDimension)
	out.HoleWallDepth = atLeast(out.HoleWallDepth, 0.01)
	// The hole keeps a rim of solid wall on every side.
	out.HoleWidth = clampf(out.HoleWidth, minDimension, out.HoleWallWidth*0.9)
	out.HoleHeight = clampf(out.HoleHeight, minDimension, out.HoleWallHeight*0.9)
	out.HoleRadius = atLeast(out.HoleRadius, 0)

	out.WallColor = color(out.WallColor, def.WallColor)
	out.FrameColor = color(out.FrameColor, def.FrameColor)
	out.FloorColor = color(out.FloorColor, def.FloorColor)
	out.RoofColor = color(out.RoofColor, def.RoofColor)
	out.SceneTint = color(out.SceneTint, def.SceneTint)
	out.ImageTint = color(out.ImageTint, "#ffffff")
	out.GlassTint = color(out.GlassTint, "#89bcff")
	out.BlackHoleColorA = color(out.BlackHoleColorA, "#ff7e1d")
	out.BlackHoleColorB = color(out.BlackHoleColorB, "#ffd067")
	out.BlackHoleDustColorA = color(out.BlackHoleDustColorA, "#ff8f24")
	out.BlackHoleDustColorB = color(out.BlackHoleDustColorB, "#ffe29f")
	for i, g := range out.GlowColors {
		out.GlowColors[i] = color(g, DefaultGlowColors[i%len(DefaultGlowColors)])
	}
	for i, p := range out.PortalPalettes {
		d := DefaultPortalPalettes[i%len(DefaultPortalPalettes)]
		out.PortalPalettes[i] = PortalPalette{Inner: color(p.Inner, d.Inner), Outer: color(p.Outer, d.Outer)}
	}

	out.Particles = out.Particles.Clamp()
	return out
}

// Clamp returns p with counts and ratios pulled into range.
func (p ParticleConfig) Clamp() ParticleConfig {
	def := DefaultParticles()
	if p.Count < 0 {
		p.Count = 0
	}
	if p.Count > 20000 {
		p.Count = 20000
	}
	p.Size = atLeast(p.Size, 0.001)
	p.Opacity = clampf(p.Opacity, 0, 1)
	p.Glow = atLeast(p.Glow, 0)
	p.Randomness = atLeast(p.Randomness, 0)
	p.Radius = atLeast(p.Radius, 0)
	p.Travel = atLeast(p.Travel, 0)
	p.SpreadY = atLeast(p.SpreadY, 0)
	p.Twinkle = clampf(p.Twinkle, 0, 1)
	p.ColorA = color(p.ColorA, def.ColorA)
	p.ColorB = color(p.ColorB, def.ColorB)
	return p
}
