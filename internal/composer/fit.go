package composer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/texture"
)

// MinRepeat is the smallest UV repeat a fit may produce on either axis.
const MinRepeat = 0.05

// Fit is the UV window an image is sampled through on a panel face.
type Fit struct {
	Repeat mgl32.Vec2
	Offset mgl32.Vec2
}

// FullFit samples the whole image.
var FullFit = Fit{Repeat: mgl32.Vec2{1, 1}}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FitImage maps an imgW × imgH image onto a shapeW × shapeH face. Cover crops the wider axis
// so the image keeps its aspect; fill stretches it. The fit width and height then scale the
// window, which is clamped to [MinRepeat, 1] and centered. An image without size gets
// FullFit.
func FitImage(imgW, imgH int, shapeW, shapeH float32, mode config.FitMode, fitW, fitH float32) Fit {
	if imgW <= 0 || imgH <= 0 {
		return FullFit
	}
	imageAspect := float32(imgW) / float32(imgH)
	shapeAspect := shapeW / max(shapeH, 0.001)

	rx, ry := float32(1), float32(1)
	if mode != config.FitFill {
		if imageAspect > shapeAspect {
			rx = shapeAspect / imageAspect
		} else {
			ry = imageAspect / shapeAspect
		}
	}
	rx = clampf(rx*fitW, MinRepeat, 1)
	ry = clampf(ry*fitH, MinRepeat, 1)
	return Fit{
		Repeat: mgl32.Vec2{rx, ry},
		Offset: mgl32.Vec2{(1 - rx) * 0.5, (1 - ry) * 0.5},
	}
}

// fitTarget is a uniform pair that receives a fit.
type fitTarget struct {
	repeat, offset *mgl32.Vec2
}

// pendingFit waits for its texture to settle before writing the fit into its targets.
type pendingFit struct {
	entry   *texture.Entry
	w, h    float32
	targets []fitTarget
}

func (p *pendingFit) apply(cfg config.SceneConfig) {
	f := FullFit
	if img := p.entry.Image(); img != nil {
		b := img.Bounds()
		f = FitImage(b.Dx(), b.Dy(), p.w, p.h, cfg.ImageFitMode, cfg.ImageFitWidth, cfg.ImageFitHeight)
	}
	for _, t := range p.targets {
		*t.repeat = f.Repeat
		*t.offset = f.Offset
	}
}
