// Package particles animates the point clouds drawn as additive billboards: the free
// floating cloud, the accretion dust disk and the portal rim sparks. Every cloud keeps its
// per-point parameters in parallel slices and rewrites one shared position slice per tick.
package particles

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/material"
	"github.com/Jayesh2401/museum/internal/texture"
)

// MinPerLayer is the smallest number of points in one cloud layer.
const MinPerLayer = 20

// FieldYawRate is the slow spin of the whole cloud, radians per second.
const FieldYawRate = 0.014

// Layer is one sprite look of the cloud. Positions holds xyz per point and feeds both the core
// and the glow pass.
type Layer struct {
	Look      texture.Look
	CoreColor material.Color
	GlowColor material.Color
	CoreSize  float32
	GlowSize  float32
	OrbitBase float32

	BaseRadius []float32
	BaseAngle  []float32
	BaseY      []float32
	Phase      []float32
	Speed      []float32
	Positions  []float32

	CoreOpacity float32
	GlowOpacity float32
}

// Len returns the number of points in l.
func (l *Layer) Len() int { return len(l.BaseRadius) }

// Field is the particle cloud built from one ParticleConfig.
type Field struct {
	cfg    config.ParticleConfig
	Layers []*Layer
	// Yaw is the cloud's rotation about the y axis.
	Yaw float32
}

// NewField samples a cloud for cfg. A disabled config yields an empty field.
func NewField(cfg config.ParticleConfig, rng *rand.Rand) *Field {
	f := &Field{cfg: cfg}
	if !cfg.Enabled {
		return f
	}
	a := material.Hex(cfg.ColorA, material.White)
	b := material.Hex(cfg.ColorB, material.White)
	perLayer := max(MinPerLayer, cfg.Count/texture.ParticleLooks)
	for li := 0; li < texture.ParticleLooks; li++ {
		fl := float32(li)
		l := &Layer{
			Look:       texture.Look(li),
			CoreColor:  a.Lerp(b, fl/float32(texture.ParticleLooks-1)),
			GlowColor:  b,
			CoreSize:   cfg.Size * (0.84 + fl*0.14),
			GlowSize:   cfg.Size * (1.9 + cfg.Glow*0.75 + fl*0.12),
			OrbitBase:  0.06 + fl*0.015,
			BaseRadius: make([]float32, perLayer),
			BaseAngle:  make([]float32, perLayer),
			BaseY:      make([]float32, perLayer),
			Phase:      make([]float32, perLayer),
			Speed:      make([]float32, perLayer),
			Positions:  make([]float32, 3*perLayer),
		}
		for i := 0; i < perLayer; i++ {
			r := cfg.Radius + (rng.Float32()-0.5)*cfg.Radius*cfg.Randomness
			angle := rng.Float32() * 2 * math32.Pi
			y := (rng.Float32() - 0.5) * cfg.SpreadY
			l.BaseRadius[i] = r
			l.BaseAngle[i] = angle
			l.BaseY[i] = y
			l.Phase[i] = rng.Float32() * 2 * math32.Pi
			l.Speed[i] = 0.45 + rng.Float32()*1.7
			l.Positions[3*i] = math32.Sin(angle) * r
			l.Positions[3*i+1] = y
			l.Positions[3*i+2] = math32.Cos(angle) * r
		}
		f.Layers = append(f.Layers, l)
	}
	f.Update(0)
	return f
}

// Config returns the parameters the field was built from.
func (f *Field) Config() config.ParticleConfig { return f.cfg }

// Count returns the total number of points.
func (f *Field) Count() int {
	n := 0
	for _, l := range f.Layers {
		n += l.Len()
	}
	return n
}

// Update moves every point to its position at time t and sets the twinkle opacities.
func (f *Field) Update(t float32) {
	c := f.cfg
	for _, l := range f.Layers {
		for i := range l.BaseRadius {
			angle := l.BaseAngle[i] + t*c.SpinSpeed*l.OrbitBase*l.Speed[i]
			r := l.BaseRadius[i] + math32.Sin(t*l.Speed[i]+l.Phase[i])*c.Travel
			l.Positions[3*i] = math32.Sin(angle) * r
			l.Positions[3*i+1] = l.BaseY[i] + math32.Cos(t*l.Speed[i]*0.7+l.Phase[i]*1.3)*c.Travel*0.2
			l.Positions[3*i+2] = math32.Cos(angle) * r
		}
		wave := Twinkle(t, l.OrbitBase, l.Phase[0])
		l.CoreOpacity = c.Opacity * (0.65 + wave*c.Twinkle*0.35)
		l.GlowOpacity = c.Opacity * 0.22 * c.Glow * (0.56 + wave*c.Twinkle*0.44)
	}
	f.Yaw = t * FieldYawRate
}

// Twinkle is the shared opacity wave of a layer, in [0.12, 1].
func Twinkle(t, orbitBase, phase float32) float32 {
	return 0.56 + 0.44*math32.Sin(t*(1.5+orbitBase*10)+phase)
}
