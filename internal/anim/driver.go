// Package anim runs the per-tick animation: shader time, navigation smoothing, hover
// blending, focus staging, active index and particle advance, in that order.
package anim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/material"
)

// Frame is what one tick hands to the scene.
type Frame struct {
	Time      float32
	Dt        float32
	Nav       Nav
	Pointer   mgl32.Vec2
	Distances []float32
	Active    int
}

// Stage is the scene side of a tick. The driver calls Hover, then Stage, then Advance.
type Stage interface {
	// BaseAngles returns every panel's placement angle; its length is the panel count.
	BaseAngles() []float32
	// Hover re-resolves the pointer and blends hover values.
	Hover(f *Frame)
	// Stage derives focus from f.Distances and writes every layer's uniforms.
	Stage(f *Frame)
	// Advance moves the particle clouds and other free animation.
	Advance(f *Frame)
}

// Driver owns the animation clock and the navigation state.
type Driver struct {
	strategy Strategy
	nav      Nav
	time     float32

	pointer       mgl32.Vec2
	pointerTarget mgl32.Vec2

	distances []float32
	active    int

	// OnActive is called whenever the active index changes.
	OnActive func(int)
}

// NewDriver returns a driver using s, with the ring at rotation (target and current).
func NewDriver(s Strategy, rotation float32) *Driver {
	return &Driver{strategy: s, nav: Nav{Rotation: rotation, TargetRotation: rotation}, active: -1}
}

// Strategy returns the active-index strategy.
func (d *Driver) Strategy() Strategy { return d.strategy }

// SetStrategy swaps the strategy; the navigation state is kept.
func (d *Driver) SetStrategy(s Strategy) { d.strategy = s }

// Nav returns the navigation state.
func (d *Driver) Nav() Nav { return d.nav }

// Time returns the animation clock in seconds.
func (d *Driver) Time() float32 { return d.time }

// Active returns the last active index, or -1 before the first tick.
func (d *Driver) Active() int { return d.active }

// Pointer returns the smoothed pointer.
func (d *Driver) Pointer() mgl32.Vec2 { return d.pointer }

// Wheel applies a scroll delta through the strategy.
func (d *Driver) Wheel(deltaY, strength float32) {
	d.strategy.Wheel(deltaY, strength, &d.nav)
}

// JumpTo targets panel i of stage. Out of range indices are ignored.
func (d *Driver) JumpTo(i int, stage Stage) {
	base := stage.BaseAngles()
	if i < 0 || i >= len(base) {
		return
	}
	d.strategy.Jump(i, len(base), base[i], &d.nav)
}

// ShiftRotation moves the rotation target by delta, used when the ring's offset changes.
func (d *Driver) ShiftRotation(delta float32) {
	d.nav.TargetRotation += delta
}

// PointTo sets the pointer target in normalized device coordinates.
func (d *Driver) PointTo(p mgl32.Vec2) { d.pointerTarget = p }

// ReleasePointer recenters the pointer target.
func (d *Driver) ReleasePointer() { d.pointerTarget = mgl32.Vec2{} }

// Tick advances one frame of dt seconds and drives stage through it.
func (d *Driver) Tick(dt float32, stage Stage) {
	if dt < 0 {
		dt = 0
	}
	d.time += dt
	d.strategy.Step(&d.nav)
	d.pointer = d.pointer.Add(d.pointerTarget.Sub(d.pointer).Mul(PointerSmoothing))

	f := &Frame{Time: d.time, Dt: dt, Nav: d.nav, Pointer: d.pointer, Active: d.active}
	stage.Hover(f)

	base := stage.BaseAngles()
	d.distances = d.distances[:0]
	for i, b := range base {
		d.distances = append(d.distances, d.strategy.Distance(i, len(base), b, d.nav))
	}
	f.Distances = d.distances
	stage.Stage(f)

	if active := ActiveIndex(d.distances); active != d.active {
		d.active = active
		if d.OnActive != nil {
			d.OnActive(active)
		}
	}
	f.Active = d.active
	stage.Advance(f)
}

// Focus is 1 for a panel facing the view and falls to 0 at 1.55 rad.
func Focus(distance float32) float32 {
	if distance < 0 {
		distance = -distance
	}
	return material.Smoothstep(1.55, 0, distance)
}

// Visibility is 1 within 0.45 rad of the view and 0 beyond 2.25 rad.
func Visibility(distance float32) float32 {
	if distance < 0 {
		distance = -distance
	}
	return material.Smoothstep(2.25, 0.45, distance)
}

// FocusScale is the staged scale of a panel with the given focus.
func FocusScale(focus float32) float32 { return 0.86 + focus*0.34 }

// FocusOpacity is the staged opacity of a panel with the given visibility.
func FocusOpacity(visible float32) float32 { return 0.08 + visible*0.92 }
