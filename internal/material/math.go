package material

import (
	"github.com/chewxy/math32"
)

// CPU mirrors of the shader math. The composer and driver use them for effects computed per
// tick (hot outline pulse, hover tint) and tests use them to pin the constants.

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func fract(v float32) float32 {
	return v - math32.Floor(v)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep is the GLSL cubic Hermite ease between e0 and e1. e0 > e1 gives the falling edge.
func Smoothstep(e0, e1, x float32) float32 {
	if e0 == e1 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// Hash maps a lattice point to a pseudo-random value in [0,1).
func Hash(x, y float32) float32 {
	px, py := fract(x*123.34), fract(y*456.21)
	d := px*(px+45.32) + py*(py+45.32)
	px += d
	py += d
	return fract(px * py)
}

// ValueNoise is smooth lattice noise in [0,1].
func ValueNoise(x, y float32) float32 {
	ix, iy := math32.Floor(x), math32.Floor(y)
	fx, fy := x-ix, y-iy
	a := Hash(ix, iy)
	b := Hash(ix+1, iy)
	c := Hash(ix, iy+1)
	d := Hash(ix+1, iy+1)
	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)
	return lerp(a, b, ux) + (c-a)*uy*(1-ux) + (d-b)*ux*uy
}

// FbmOctaves, FbmAmplitude and FbmLacunarity shape the portal flow field.
const (
	FbmOctaves    = 4
	FbmAmplitude  = 0.55
	FbmLacunarity = 2.06
)

// Fbm sums FbmOctaves octaves of ValueNoise, halving the amplitude each octave. The result
// lies in [0, 1.03125).
func Fbm(x, y float32) float32 {
	var v float32
	amp := float32(FbmAmplitude)
	for i := 0; i < FbmOctaves; i++ {
		v += amp * ValueNoise(x, y)
		x *= FbmLacunarity
		y *= FbmLacunarity
		amp *= 0.5
	}
	return v
}

// GlowAlpha is the backlight alpha at (u, v): a soft ring band plus a hard core band near the
// edge of the face.
func GlowAlpha(u, v, strength float32) float32 {
	edge := max(math32.Abs(u-0.5), math32.Abs(v-0.5)) * 2
	ring := Smoothstep(0.55, 0.98, edge)
	core := Smoothstep(0.86, 1, edge)
	return (ring*0.35 + core*0.65) * strength
}

// EdgeMask fades the water overlay to zero on every UV border.
func EdgeMask(u, v float32) float32 {
	return Smoothstep(0, 0.2, u) * Smoothstep(1, 0.8, u) * Smoothstep(0, 0.2, v) * Smoothstep(1, 0.8, v)
}

// HoverRadius is the UV radius of the water hover disturbance.
func HoverRadius(strength float32) float32 {
	return 0.16 + strength*0.07
}

// HoverMask is the hover disturbance weight at distance d from the hover point.
func HoverMask(d, strength, hover float32) float32 {
	return Smoothstep(HoverRadius(strength), 0, d) * hover
}

// HoverColor is the tint the water takes under the pointer; the hue walks across the face with u.
func HoverColor(u float32) Color {
	return HSL(0.52+u*0.28, 0.65, 0.52)
}

// DiskBand is the Gaussian brightness of the accretion disk at normalized distance d.
func DiskBand(d, ringRadius float32) float32 {
	x := (d - ringRadius) * 10
	return math32.Exp(-x * x)
}

// HorizonMask is the event-horizon falloff multiplied into the disk color: 1 inside the
// horizon edge, 0 beyond holeSize + 0.09.
func HorizonMask(d, holeSize float32) float32 {
	return Smoothstep(holeSize+0.09, holeSize+0.015, d)
}

// CoreMask is how strongly the disk color is pulled to black at distance d.
func CoreMask(d, holeSize float32) float32 {
	return Smoothstep(holeSize+0.05, holeSize, d)
}

// HotOpacity is the pulsing opacity of the second outline of a panel at baseAngle.
func HotOpacity(base, t, baseAngle float32) float32 {
	return base * (0.65 + 0.5*math32.Abs(math32.Sin(t*1.2+baseAngle)))
}
