package composer

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/hover"
	"github.com/Jayesh2401/museum/internal/material"
	"github.com/Jayesh2401/museum/internal/particles"
	"github.com/Jayesh2401/museum/internal/shape"
	"github.com/Jayesh2401/museum/internal/texture"
)

// Clearance is the gap kept between a panel's back and the enclosure wall.
const Clearance = 0.02

// SpinPerTick is how far the accretion group turns per tick for each unit of spin speed.
const SpinPerTick = 0.0024

// HaloSpin is the per-tick roll of the wall theme's floor halo.
const HaloSpin = 0.0016

// AngularStep returns the angle between neighbouring panels.
func AngularStep(count int, gap float32) float32 {
	if count < 1 {
		return 0
	}
	return 2 * math32.Pi / float32(count) * gap
}

// BaseRadius returns the distance from the ring axis to every panel holder.
func BaseRadius(cfg config.SceneConfig) float32 {
	return cfg.WallRadius - cfg.FrameDepth/2 - Clearance + cfg.DepthOffset
}

// Panel is one placed gallery panel. Index is its placement order and the identity used by
// the active-index and hover systems.
type Panel struct {
	Index     int
	BaseAngle float32
	// Width and Height are the face size after the inset.
	Width, Height float32

	// Position and Yaw place the holder in the ring frame; Scale is the staged size.
	Position mgl32.Vec3
	Yaw      float32
	Scale    float32
	// World is the holder's transform for the current tick.
	World mgl32.Mat4

	Contour []mgl32.Vec2
	Face    *shape.Mesh
	Texture *texture.Entry
	// Layers are sorted by Offset, back to front in the holder frame.
	Layers []*Layer
	Sparks *particles.Sparks

	Focus   float32
	Opacity float32
	Hover   float32

	path     *shape.Path
	pick     *Layer
	water    *material.WaterUniforms
	artifact *material.ArtifactUniforms
	hot      *material.OutlineUniforms
	card     []cardLayer
	waves    []waveLayer
}

type cardLayer struct {
	layer *Layer
	z     float32
	sway  float32
}

type waveLayer struct {
	layer  *Layer
	rest   mgl32.Mat4
	amount float32
}

func (p *Panel) addLayer(l *Layer) *Layer {
	if l.Local == (mgl32.Mat4{}) {
		l.Local = place(l.Offset, 1)
	}
	p.Layers = append(p.Layers, l)
	return l
}

func (p *Panel) sortLayers() {
	sort.SliceStable(p.Layers, func(i, j int) bool { return p.Layers[i].Offset < p.Layers[j].Offset })
}

// LayerWorld returns the world transform of l, one of p's layers.
func (p *Panel) LayerWorld(l *Layer) mgl32.Mat4 {
	return p.World.Mul4(l.Local)
}

// Target returns p's hover surface in world space.
func (p *Panel) Target() hover.Target {
	if p.pick == nil {
		return hover.Target{}
	}
	return hover.Target{Mesh: p.pick.Mesh, Model: p.LayerWorld(p.pick)}
}

// Accretion is the black-hole group of the accretion theme: a disk, a glow ring, the horizon
// and an orbiting dust cloud, spinning about the y axis.
type Accretion struct {
	Position mgl32.Vec3
	Spin     float32
	Layers   []*Layer
	Dust     *particles.Dust
	// DustOffset lifts the dust above the disk plane.
	DustOffset float32
}

// World returns the group transform.
func (a *Accretion) World() mgl32.Mat4 {
	return mgl32.Translate3D(a.Position[0], a.Position[1], a.Position[2]).Mul4(mgl32.HomogRotate3DY(a.Spin))
}

// Bloom is the post-pass setting of a dark theme. Zero strength disables it.
type Bloom struct {
	Strength, Radius, Threshold float32
}

// Arena is everything one rebuild produced. The composer replaces it wholesale; nothing else
// keeps references into a dropped arena.
type Arena struct {
	Config config.SceneConfig
	Panels []*Panel
	// Props are world-space layers: the enclosure, floors, backdrops and the carved wall.
	Props     []*Layer
	Accretion *Accretion
	Field     *particles.Field
	// Sprites holds the billboard textures shared by every cloud.
	Sprites map[texture.Look]*texture.Entry

	// Rotation is the ring's current yaw.
	Rotation   float32
	Camera     hover.Camera
	Background material.Color
	Bloom      Bloom

	owned   []*texture.Entry
	pending []*pendingFit
	clocks  []*float32
	viewers []*mgl32.Vec3
	halo    *Layer
	haloRot float32
}

// PanelCount returns the number of panels.
func (a *Arena) PanelCount() int { return len(a.Panels) }

// RingWorld returns the ring frame's transform.
func (a *Arena) RingWorld() mgl32.Mat4 { return mgl32.HomogRotate3DY(a.Rotation) }

// Targets returns every panel's hover surface in index order.
func (a *Arena) Targets() []hover.Target {
	out := make([]hover.Target, len(a.Panels))
	for i, p := range a.Panels {
		out[i] = p.Target()
	}
	return out
}

// Pending returns the number of image fits still waiting on their texture.
func (a *Arena) Pending() int { return len(a.pending) }

// ResolvePendingFits writes the fit of every panel whose texture has settled since the last
// call and drops it from the pending list.
func (a *Arena) ResolvePendingFits() int {
	n := 0
	keep := a.pending[:0]
	for _, p := range a.pending {
		if !p.entry.Ready() {
			keep = append(keep, p)
			continue
		}
		p.apply(a.Config)
		n++
	}
	for i := len(keep); i < len(a.pending); i++ {
		a.pending[i] = nil
	}
	a.pending = keep
	return n
}

// Meshes returns every mesh the arena owns, each once.
func (a *Arena) Meshes() []*shape.Mesh {
	seen := map[*shape.Mesh]bool{}
	var out []*shape.Mesh
	add := func(ls []*Layer) {
		for _, l := range ls {
			if l.Mesh != nil && !seen[l.Mesh] {
				seen[l.Mesh] = true
				out = append(out, l.Mesh)
			}
		}
	}
	add(a.Props)
	for _, p := range a.Panels {
		add(p.Layers)
	}
	if a.Accretion != nil {
		add(a.Accretion.Layers)
	}
	return out
}

// Release hands every GPU resource the arena owns to r. Shared textures from the cache and the
// sprite set outlive the arena and are not released.
func (a *Arena) Release(r Releaser) {
	for _, m := range a.Meshes() {
		r.ReleaseMesh(m)
	}
	for _, e := range a.owned {
		r.ReleaseTexture(e)
	}
	a.Panels = nil
	a.Props = nil
	a.Accretion = nil
	a.owned = nil
	a.pending = nil
	a.clocks = nil
	a.viewers = nil
	a.halo = nil
}

func (a *Arena) clock(t *float32) { a.clocks = append(a.clocks, t) }

func (a *Arena) viewer(v *mgl32.Vec3) { a.viewers = append(a.viewers, v) }

func (a *Arena) own(e *texture.Entry) *texture.Entry {
	a.owned = append(a.owned, e)
	return e
}
