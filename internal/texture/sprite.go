package texture

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/anthonynsimon/bild/blur"
)

// Look selects a procedural point sprite. The first ParticleLooks are the particle cloud's
// layers; LookDust and LookSpark are the accretion dust and portal rim sparks.
type Look int

const (
	LookSmoke Look = iota
	LookSoft
	LookFlare
	LookRing
	LookDot
	LookDust
	LookSpark
)

// ParticleLooks is the number of looks the particle cloud cycles through.
const ParticleLooks = 5

// SpriteSize is the edge of generated sprites.
const SpriteSize = 64

// Sprite returns a size×size white sprite whose alpha carries the look; vertex colors tint it.
func Sprite(look Look, size int) *image.RGBA {
	if size <= 0 {
		size = SpriteSize
	}
	var alpha func(dx, dy, d float64) float64
	switch look {
	case LookSmoke:
		return smoke(size)
	case LookSoft:
		alpha = func(_, _, d float64) float64 { return smoothstep(1, 0, d) * smoothstep(1, 0, d) }
	case LookFlare:
		alpha = func(dx, dy, d float64) float64 {
			cross := math.Max(math.Exp(-math.Abs(dx)*18), math.Exp(-math.Abs(dy)*18))
			return math.Min(1, smoothstep(0.35, 0, d)+cross*smoothstep(1, 0.2, d))
		}
	case LookRing:
		alpha = func(_, _, d float64) float64 { return math.Exp(-math.Pow((d-0.62)*7, 2)) + smoothstep(0.25, 0, d)*0.6 }
	case LookDot:
		alpha = func(_, _, d float64) float64 { return smoothstep(0.5, 0.3, d) }
	case LookDust:
		alpha = func(_, _, d float64) float64 { return smoothstep(0.52, 0, d/2) * 0.78 }
	case LookSpark:
		alpha = func(_, _, d float64) float64 {
			core := smoothstep(0.38, 0, d/2)
			halo := smoothstep(0.64, 0.08, d/2)
			return math.Min(1, core*0.8+halo*0.5)
		}
	default:
		alpha = func(_, _, d float64) float64 { return smoothstep(1, 0, d) }
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			a := alpha(dx, dy, math.Hypot(dx, dy))
			img.Set(x, y, color.NRGBA{255, 255, 255, uint8(clamp01(a)*255 + 0.5)})
		}
	}
	return img
}

// smoke stamps a few seeded blobs, blurs them together and fades the result radially.
func smoke(size int) *image.RGBA {
	rng := rand.New(rand.NewSource(7))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for i := 0; i < 9; i++ {
		cx := half + (rng.Float64()-0.5)*half*0.7
		cy := half + (rng.Float64()-0.5)*half*0.7
		r := half * (0.18 + rng.Float64()*0.22)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / r
				if d >= 1 {
					continue
				}
				old := float64(img.RGBAAt(x, y).A) / 255
				a := math.Min(1, old+(1-d)*0.45)
				img.Set(x, y, color.NRGBA{255, 255, 255, uint8(a*255 + 0.5)})
			}
		}
	}
	img = blur.Gaussian(img, float64(size)/16)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			a := float64(img.RGBAAt(x, y).A) / 255 * smoothstep(1, 0.6, d)
			img.Set(x, y, color.NRGBA{255, 255, 255, uint8(clamp01(a)*255 + 0.5)})
		}
	}
	return img
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
