package particles

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/Jayesh2401/museum/internal/material"
)

// DustCount is the number of points orbiting the accretion core.
const DustCount = 1400

// PixelWorld converts a point size in pixels at unit depth to a world-space billboard edge.
const PixelWorld = 0.006

// Dust is the flat cloud orbiting the accretion disk. Inner points orbit faster.
type Dust struct {
	Radius []float32
	Angle  []float32
	Speed  []float32
	Height []float32
	// Mix blends ColorA (inner) toward ColorB (outer).
	Mix       []float32
	Positions []float32

	ColorA material.Color
	ColorB material.Color
}

// NewDust samples count dust points.
func NewDust(count int, a, b material.Color, rng *rand.Rand) *Dust {
	d := &Dust{
		Radius:    make([]float32, count),
		Angle:     make([]float32, count),
		Speed:     make([]float32, count),
		Height:    make([]float32, count),
		Mix:       make([]float32, count),
		Positions: make([]float32, 3*count),
		ColorA:    a,
		ColorB:    b,
	}
	for i := 0; i < count; i++ {
		r := 0.7 + rng.Float32()*1.8
		d.Radius[i] = r
		d.Angle[i] = rng.Float32() * 2 * math32.Pi
		d.Speed[i] = 0.2 + (2.5-r)*0.22 + rng.Float32()*0.08
		d.Height[i] = (rng.Float32() - 0.5) * 0.08
		d.Mix[i] = min(max((r-0.7)*2.1, 0), 1)
	}
	d.Update(0)
	return d
}

// Len returns the number of points.
func (d *Dust) Len() int { return len(d.Radius) }

// Update moves every point to its position at time t.
func (d *Dust) Update(t float32) {
	for i, r := range d.Radius {
		a, s := d.Angle[i], d.Speed[i]
		spin := a + t*s
		warp := math32.Sin(t*s*2.2+a*4) * 0.055
		d.Positions[3*i] = math32.Sin(spin) * (r + warp)
		d.Positions[3*i+1] = d.Height[i] + math32.Sin(t*(0.7+s)+a*8)*0.018
		d.Positions[3*i+2] = math32.Cos(spin) * (r + warp)
	}
}

// Color returns the tint of point i.
func (d *Dust) Color(i int) material.Color {
	return d.ColorA.Lerp(d.ColorB, d.Mix[i])
}

// Size returns the billboard size of point i; inner points are larger.
func (d *Dust) Size(i int) float32 {
	return (5 + (1-d.Mix[i])*7) * PixelWorld
}
