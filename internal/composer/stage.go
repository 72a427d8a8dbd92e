package composer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/anim"
	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/hover"
	"github.com/Jayesh2401/museum/internal/material"
)

// Camera and parallax constants.
const (
	CameraNear = 0.1
	CameraFar  = 100
	// ImmersiveFar reaches the immersive backdrop.
	ImmersiveFar = 120

	ParallaxX = 0.4
	ParallaxY = 0.2
)

var _ anim.Stage = (*Composer)(nil)

// SetAspect sets the viewport's width / height.
func (c *Composer) SetAspect(aspect float32) {
	if aspect > 0 {
		c.aspect = aspect
	}
	if c.arena != nil {
		c.arena.Camera.Aspect = c.aspect
	}
}

// SetPointer records the raw pointer in normalized device coordinates.
func (c *Composer) SetPointer(p mgl32.Vec2) {
	c.pointer = p
	c.pointerIn = true
}

// ClearPointer records that the pointer left the view.
func (c *Composer) ClearPointer() { c.pointerIn = false }

// HoverIndex returns the hovered panel or -1.
func (c *Composer) HoverIndex() int { return c.hover.Index() }

// HoverValues returns the blended hover value of every panel.
func (c *Composer) HoverValues() []float32 { return c.hover.Values }

func (c *Composer) camera(pointer mgl32.Vec2) hover.Camera {
	cfg := c.arena.Config
	cam := hover.Camera{
		Position: mgl32.Vec3{cfg.CameraX, cfg.CameraY, cfg.CameraZ},
		Target:   mgl32.Vec3{0, cfg.CameraLookY, 1},
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     cfg.CameraFov,
		Aspect:   c.aspect,
		Near:     CameraNear,
		Far:      CameraFar,
	}
	switch cfg.Theme {
	case config.ThemeWall:
		cam.Target = mgl32.Vec3{0, cfg.CameraLookY, 0}
	case config.ThemeImmersive:
		cam.Position[0] += pointer[0] * ParallaxX
		cam.Position[1] += pointer[1] * ParallaxY
		cam.Target = mgl32.Vec3{0, cfg.CameraLookY, cfg.RingCenterZ}
		cam.Far = ImmersiveFar
	}
	return cam
}

// place recomputes every panel's world transform.
func (c *Composer) place(a *Arena) {
	ring := a.RingWorld()
	for _, p := range a.Panels {
		local := mgl32.Translate3D(p.Position[0], p.Position[1], p.Position[2]).
			Mul4(mgl32.HomogRotate3DY(p.Yaw)).
			Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
		if a.Config.Theme == config.ThemeImmersive {
			p.World = local
		} else {
			p.World = ring.Mul4(local)
		}
	}
}

// BaseAngles returns every panel's placement angle.
func (c *Composer) BaseAngles() []float32 {
	if c.arena == nil {
		return nil
	}
	out := make([]float32, len(c.arena.Panels))
	for i, p := range c.arena.Panels {
		out[i] = p.BaseAngle
	}
	return out
}

// Hover picks the panel under the pointer and blends every panel's hover value. The ring
// themes pick with the raw pointer, the immersive theme with the smoothed one.
func (c *Composer) Hover(f *anim.Frame) {
	a := c.arena
	if a == nil {
		return
	}
	immersive := a.Config.Theme == config.ThemeImmersive
	if !immersive {
		a.Rotation = f.Nav.Rotation
		c.place(a)
	}
	a.Camera = c.camera(f.Pointer)

	var ray *hover.Ray
	if c.pointerIn {
		p := c.pointer
		if immersive {
			p = f.Pointer
		}
		r := a.Camera.Ray(p[0], p[1])
		ray = &r
	}
	c.hover.Update(ray, a.Targets())
	c.hover.Step()

	if hit, ok := c.hover.Hit(); ok {
		if p := a.Panels[hit.Index]; p.water != nil {
			// Mesh UVs run top down; the water program's hover point is y-up.
			p.water.HoverUV = mgl32.Vec2{hit.UV[0], 1 - hit.UV[1]}
			p.water.HoverColor = material.HoverColor(hit.UV[0])
		}
	}
	for i, p := range a.Panels {
		p.Hover = c.hover.Values[i]
		if p.water != nil {
			p.water.Hover = p.Hover
		}
	}
}

// Stage writes the time, focus and per-panel animation of one tick.
func (c *Composer) Stage(f *anim.Frame) {
	a := c.arena
	if a == nil {
		return
	}
	for _, t := range a.clocks {
		*t = f.Time
	}
	for _, v := range a.viewers {
		*v = a.Camera.Position
	}

	if a.Config.Theme == config.ThemeImmersive {
		c.stageImmersive(a, f)
		return
	}
	cfg := a.Config
	for i, p := range a.Panels {
		if i < len(f.Distances) {
			p.Focus = anim.Focus(f.Distances[i])
		}
		if p.hot != nil {
			p.hot.Opacity = material.HotOpacity(cfg.LineHotOpacity, f.Time, p.BaseAngle)
		}
		c.swayCard(a, p, f.Time)
		wave := math32.Sin(f.Time*1.15 + p.BaseAngle)
		for _, w := range p.waves {
			w.layer.Local = w.rest.Mul4(mgl32.HomogRotate3DZ(wave * w.amount))
		}
	}
}

// ArcAngle returns the unwrapped angle of immersive panel i of n at progress.
func ArcAngle(i, n int, progress, spacing float32) float32 {
	return (float32(i) - anim.IndexProgress(progress, n)) * spacing
}

func (c *Composer) stageImmersive(a *Arena, f *anim.Frame) {
	cfg := a.Config
	n := len(a.Panels)
	for _, p := range a.Panels {
		theta := ArcAngle(p.Index, n, f.Nav.Progress, cfg.SpacingAngle)
		abs := math32.Abs(theta)
		p.Position = mgl32.Vec3{
			math32.Sin(theta) * cfg.RingRadius,
			cfg.YOffset + math32.Sin(theta*0.5)*0.06,
			cfg.RingCenterZ + math32.Cos(theta)*cfg.RingRadius,
		}
		// Panels turn toward the viewer so their front faces stay pickable.
		p.Yaw = theta
		p.Focus = anim.Focus(abs)
		p.Scale = anim.FocusScale(p.Focus)
		p.Opacity = anim.FocusOpacity(anim.Visibility(abs))
		if u := p.artifact; u != nil {
			u.Hover = p.Hover
			u.Focus = p.Focus
			u.Opacity = p.Opacity
			u.Pointer = f.Pointer
		}
	}
	c.place(a)
}

// swayCard rocks and bobs the card overlay of p.
func (c *Composer) swayCard(a *Arena, p *Panel, t float32) {
	if len(p.card) == 0 {
		return
	}
	rot := math32.Sin(t*0.35+p.BaseAngle) * 0.018
	y := -p.Height*a.Config.CardYOffset + math32.Sin(t*0.8+p.BaseAngle)*0.06
	for _, cl := range p.card {
		cl.layer.Local = mgl32.Translate3D(0, y, cl.z).Mul4(mgl32.HomogRotate3DZ(rot * cl.sway))
	}
}

// Advance moves the particle clouds, sparks and spinning groups.
func (c *Composer) Advance(f *anim.Frame) {
	a := c.arena
	if a == nil {
		return
	}
	if a.Field != nil && a.Config.Particles.Enabled {
		a.Field.Update(f.Time)
	}
	for _, p := range a.Panels {
		if p.Sparks != nil {
			p.Sparks.Update(f.Time, p.BaseAngle)
			p.Sparks.Step()
		}
	}
	if acc := a.Accretion; acc != nil {
		acc.Spin += a.Config.BlackHoleSpinSpeed * SpinPerTick
		if acc.Dust != nil {
			acc.Dust.Update(f.Time)
		}
	}
	if a.halo != nil {
		a.haloRot += HaloSpin
		a.halo.Local = flat(-2.98).Mul4(mgl32.HomogRotate3DZ(a.haloRot))
	}
}

// SparkWorld returns the transform of p's spark group.
func (p *Panel) SparkWorld() mgl32.Mat4 {
	if p.Sparks == nil {
		return p.World
	}
	return p.World.Mul4(mgl32.Translate3D(0, 0, p.Sparks.Z)).Mul4(mgl32.HomogRotate3DZ(p.Sparks.Spin))
}

// DustWorld returns the transform of the accretion dust.
func (a *Accretion) DustWorld() mgl32.Mat4 {
	return a.World().Mul4(mgl32.Translate3D(0, a.DustOffset, 0))
}
