package anim

import (
	"github.com/chewxy/math32"
)

// Smoothing factors applied once per tick.
const (
	RotationSmoothing = 0.1
	ProgressSmoothing = 0.07
	PointerSmoothing  = 0.1
)

// NormalizeAngle wraps a into (-π, π].
func NormalizeAngle(a float32) float32 {
	const tau = 2 * math32.Pi
	a = math32.Mod(a, tau)
	if a <= -math32.Pi {
		a += tau
	} else if a > math32.Pi {
		a -= tau
	}
	return a
}

// Nav is the navigation state: the ring rotation and the scroll progress, each with the target
// it approaches. It outlives scene rebuilds.
type Nav struct {
	Rotation       float32
	TargetRotation float32
	Progress       float32
	TargetProgress float32
}

// Strategy decides how navigation maps to each panel's signed angular distance from the view
// direction, and how input moves the navigation targets.
type Strategy interface {
	Name() string
	// Distance returns the signed distance of panel i of n, placed at base, in (-π, π].
	Distance(i, n int, base float32, nav Nav) float32
	// Jump sets the target so panel i becomes active.
	Jump(i, n int, base float32, nav *Nav)
	// Wheel applies a scroll delta.
	Wheel(deltaY, strength float32, nav *Nav)
	// Step advances the smoothed value one tick toward its target.
	Step(nav *Nav)
}

// RotationStrategy measures each panel's base angle plus the ring rotation against a fixed
// reference direction. The wheel turns the ring.
type RotationStrategy struct {
	Reference float32
}

func (RotationStrategy) Name() string { return "rotation" }

func (s RotationStrategy) Distance(_, _ int, base float32, nav Nav) float32 {
	return NormalizeAngle(base + nav.Rotation - s.Reference)
}

// Jump aims the rotation so base lines up with the reference, without wrapping.
func (s RotationStrategy) Jump(_, _ int, base float32, nav *Nav) {
	nav.TargetRotation = s.Reference - base
}

func (RotationStrategy) Wheel(deltaY, strength float32, nav *Nav) {
	nav.TargetRotation += deltaY * strength
}

func (RotationStrategy) Step(nav *Nav) {
	nav.Rotation += (nav.TargetRotation - nav.Rotation) * RotationSmoothing
}

// ProgressStrategy maps a progress ratio in [0, 1] across the panel indices; panel i sits
// (i - progress·(n-1))·Spacing away from the view direction.
type ProgressStrategy struct {
	Spacing float32
}

func (ProgressStrategy) Name() string { return "progress" }

func (s ProgressStrategy) Distance(i, n int, _ float32, nav Nav) float32 {
	return NormalizeAngle((float32(i) - IndexProgress(nav.Progress, n)) * s.Spacing)
}

func (ProgressStrategy) Jump(i, n int, _ float32, nav *Nav) {
	if n < 2 {
		nav.TargetProgress = 0
		return
	}
	nav.TargetProgress = clamp01(float32(i) / float32(n-1))
}

func (ProgressStrategy) Wheel(deltaY, strength float32, nav *Nav) {
	nav.TargetProgress = clamp01(nav.TargetProgress + deltaY*strength)
}

func (ProgressStrategy) Step(nav *Nav) {
	nav.Progress += (nav.TargetProgress - nav.Progress) * ProgressSmoothing
}

// IndexProgress is progress scaled to a fractional panel index.
func IndexProgress(progress float32, n int) float32 {
	return progress * float32(max(n-1, 0))
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// ActiveIndex returns the index whose distance has the smallest magnitude; ties keep the
// lowest index. It returns -1 for no panels.
func ActiveIndex(distances []float32) int {
	best, bestAbs := -1, math32.Inf(1)
	for i, d := range distances {
		if a := math32.Abs(d); a < bestAbs {
			best, bestAbs = i, a
		}
	}
	return best
}
