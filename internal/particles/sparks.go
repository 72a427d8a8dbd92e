package particles

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/material"
)

// SparkEdgeSamples is the number of contour samples sparks are scattered along; each sample
// carries two sparks.
const SparkEdgeSamples = 160

// Sparks flicker around the rim of one portal panel, in the panel's local frame.
type Sparks struct {
	Base  []mgl32.Vec3
	Scale []float32
	Speed []float32
	Phase []float32

	Positions []float32
	Alpha     []float32

	Color material.Color
	// Spin and Z are the group's roll and forward offset, animated per tick.
	Spin float32
	Z    float32
}

// NewSparks scatters two sparks per edge point with a small jitter.
func NewSparks(edge []mgl32.Vec2, color material.Color, rng *rand.Rand) *Sparks {
	n := 2 * len(edge)
	s := &Sparks{
		Base:      make([]mgl32.Vec3, n),
		Scale:     make([]float32, n),
		Speed:     make([]float32, n),
		Phase:     make([]float32, n),
		Positions: make([]float32, 3*n),
		Alpha:     make([]float32, n),
		Color:     color,
		Z:         SparkZ,
	}
	for i := 0; i < n; i++ {
		p := edge[i%len(edge)]
		s.Base[i] = mgl32.Vec3{
			p[0] + (rng.Float32()-0.5)*0.18,
			p[1] + (rng.Float32()-0.5)*0.18,
			(rng.Float32() - 0.5) * 0.4,
		}
		s.Scale[i] = 0.3 + rng.Float32()
		s.Speed[i] = 0.7 + rng.Float32()*1.6
		s.Phase[i] = rng.Float32() * 2 * math32.Pi
	}
	s.Update(0, 0)
	return s
}

// SparkZ is the rest offset of the spark group in front of the face.
const SparkZ = 0.07

// Len returns the number of sparks.
func (s *Sparks) Len() int { return len(s.Base) }

// Update advances every spark to time t for a panel at baseAngle.
func (s *Sparks) Update(t, baseAngle float32) {
	for i, b := range s.Base {
		lt := t*s.Speed[i] + s.Phase[i]
		s.Positions[3*i] = b[0] + math32.Cos(lt*1.35)*0.07
		s.Positions[3*i+1] = b[1] + math32.Sin(lt*1.6)*0.07
		s.Positions[3*i+2] = b[2] + math32.Sin(lt)*0.34
		life := 0.5 + 0.5*math32.Sin(lt*2.2)
		s.Alpha[i] = min((0.42+life*0.72)*(0.4+s.Scale[i]*0.6), 1)
	}
	s.Z = SparkZ + math32.Sin(t*2.4+baseAngle)*0.012
}

// Step applies the per-tick roll.
func (s *Sparks) Step() { s.Spin += 0.0022 }

// Size returns the billboard size of spark i.
func (s *Sparks) Size(i int) float32 {
	return (6 + s.Scale[i]*14) * PixelWorld
}
