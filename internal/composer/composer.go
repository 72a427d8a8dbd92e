// Package composer turns a SceneConfig into an Arena: the placed panels with their layer
// stacks, the enclosure and the theme's scene-level groups. Rebuilds are synchronous and
// destructive; the previous arena's GPU resources are released before the new one is built.
package composer

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/anim"
	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/hover"
	"github.com/Jayesh2401/museum/internal/material"
	"github.com/Jayesh2401/museum/internal/particles"
	"github.com/Jayesh2401/museum/internal/shape"
	"github.com/Jayesh2401/museum/internal/texture"
)

const (
	// FaceCurveSegments is how finely face corners are sampled.
	FaceCurveSegments = 36
	// FaceRings is the number of concentric rings a face is filled with.
	FaceRings = 8
	// ArtifactRings gives the immersive cards enough interior vertices for their ripple.
	ArtifactRings = 24
	// OutlineSegments is the number of evenly spaced points on each outline polyline.
	OutlineSegments = 84
	// InsetFactor is how much of the frame inset each face side loses.
	InsetFactor = 1.4
)

// ImmersiveFloorY is the height of the immersive floor grid.
const ImmersiveFloorY = -2.35

var cardGlassTint = material.MustHex("#98c3ff")

// Composer builds arenas. It keeps the particle field across rebuilds while the particle
// parameters stay the same.
type Composer struct {
	cache    *texture.Cache
	release  Releaser
	typeface texture.Typeface
	sprites  map[texture.Look]*texture.Entry

	arena *Arena
	field *particles.Field

	hover     *hover.Resolver
	aspect    float32
	pointer   mgl32.Vec2
	pointerIn bool
	last      config.SceneConfig
}

// New returns a composer loading images through cache and releasing through r. A nil r
// releases nothing.
func New(cache *texture.Cache, r Releaser) *Composer {
	if r == nil {
		r = noRelease{}
	}
	c := &Composer{
		cache:   cache,
		release: r,
		sprites: map[texture.Look]*texture.Entry{},
		hover:   hover.NewResolver(0, hover.RingFactor),
		aspect:  16.0 / 9.0,
	}
	for look := texture.LookSmoke; look <= texture.LookSpark; look++ {
		c.sprites[look] = texture.Static(texture.Sprite(look, texture.SpriteSize))
	}
	return c
}

// SetReleaser replaces the releaser used by later rebuilds.
func (c *Composer) SetReleaser(r Releaser) {
	if r == nil {
		r = noRelease{}
	}
	c.release = r
}

// SetTypeface sets the face card labels are drawn with. Nil uses the bitmap face.
func (c *Composer) SetTypeface(tf texture.Typeface) { c.typeface = tf }

// Arena returns the current arena, or nil before the first rebuild.
func (c *Composer) Arena() *Arena { return c.arena }

// Field returns the particle field.
func (c *Composer) Field() *particles.Field { return c.field }

// Close releases the current arena.
func (c *Composer) Close() {
	if c.arena != nil {
		c.arena.Release(c.release)
		c.arena = nil
	}
}

// Rebuild releases the current arena and builds a new one from cfg. cfg is clamped first.
func (c *Composer) Rebuild(cfg config.SceneConfig) *Arena {
	cfg = cfg.Clamp()
	if c.arena != nil {
		c.arena.Release(c.release)
		c.arena = nil
	}
	if c.field == nil || config.ParticlesChanged(c.last, cfg) {
		c.field = particles.NewField(cfg.Particles, rand.New(rand.NewSource(cfg.Particles.Seed)))
	}

	a := &Arena{
		Config:     cfg,
		Field:      c.field,
		Sprites:    c.sprites,
		Background: material.Hex(cfg.SceneTint, material.Color{}),
	}
	rng := rand.New(rand.NewSource(cfg.Particles.Seed + 1))

	switch cfg.Theme {
	case config.ThemeImmersive:
		c.buildImmersive(a)
	case config.ThemeWall:
		c.buildWall(a)
	default:
		c.buildEnclosure(a)
		step := AngularStep(cfg.FrameCount, cfg.FrameGap)
		for i := 0; i < cfg.FrameCount; i++ {
			p := c.ringPanel(a, i, float32(i)*step)
			switch cfg.Theme {
			case config.ThemeWater:
				c.waterLayers(a, p)
			case config.ThemeGlass:
				c.glassLayers(a, p)
			case config.ThemePortal, config.ThemeAccretion:
				c.portalLayers(a, p, rng)
			default:
				c.plainLayers(a, p)
			}
			p.sortLayers()
			a.Panels = append(a.Panels, p)
		}
		if cfg.Theme == config.ThemeAccretion {
			c.buildAccretion(a, rng)
		}
		a.Rotation = mgl32.DegToRad(cfg.RotationOffsetDeg)
	}
	if cfg.Theme == config.ThemeGlass || cfg.Theme == config.ThemePortal || cfg.Theme == config.ThemeAccretion {
		a.Bloom = Bloom{Strength: cfg.BloomStrength, Radius: cfg.BloomRadius, Threshold: cfg.BloomThreshold}
	}

	a.ResolvePendingFits()
	c.arena = a
	c.last = cfg
	c.hover.Resize(len(a.Panels))
	c.hover.Factor = hover.RingFactor
	if cfg.Theme == config.ThemeImmersive {
		c.hover.Factor = hover.ImmersiveFactor
	}
	a.Camera = c.camera(mgl32.Vec2{})
	if cfg.Theme == config.ThemeImmersive {
		c.stageImmersive(a, &anim.Frame{})
	} else {
		c.place(a)
	}
	return a
}

// imageFor returns the texture of picture i, cycling through the configured images. Without
// images every panel gets the fallback for label.
func (c *Composer) imageFor(a *Arena, i int, label string) *texture.Entry {
	imgs := a.Config.Images
	if len(imgs) == 0 {
		return c.cache.Get("", label)
	}
	return c.cache.Get(imgs[i%len(imgs)], label)
}

func cardFor(cfg config.SceneConfig, i int) config.Card {
	cards := cfg.Cards
	if len(cards) == 0 {
		cards = config.DefaultCards
	}
	return cards[i%len(cards)]
}

func glowFor(cfg config.SceneConfig, i int) material.Color {
	colors := cfg.GlowColors
	if len(colors) == 0 {
		colors = config.DefaultGlowColors
	}
	return material.MustHex(colors[i%len(colors)])
}

func paletteFor(cfg config.SceneConfig, i int) config.PortalPalette {
	ps := cfg.PortalPalettes
	if len(ps) == 0 {
		ps = config.DefaultPortalPalettes
	}
	return ps[i%len(ps)]
}

// lit returns enclosure-style uniforms lit by the configured lights.
func lit(a *Arena, hex string, opacity, metalness, roughness float32) *material.LitUniforms {
	u := &material.LitUniforms{
		Color:         material.MustHex(hex),
		Opacity:       opacity,
		Metalness:     metalness,
		Roughness:     roughness,
		HemiIntensity: a.Config.HemiIntensity,
		KeyIntensity:  a.Config.KeyIntensity,
		RimIntensity:  a.Config.RimIntensity,
	}
	a.viewer(&u.ViewPos)
	return u
}

// solid returns an unlit flat color.
func solid(col material.Color, opacity float32) *material.ImageUniforms {
	u := material.NewImage(nil)
	u.Tint = col
	u.Opacity = opacity
	return u
}

func (c *Composer) buildEnclosure(a *Arena) {
	cfg := a.Config
	r, h := cfg.WallRadius, cfg.WallHeight
	dark := cfg.Theme != config.ThemePlain && cfg.Theme != config.ThemeWater

	wall := &Layer{Name: "wall", Mesh: shape.OpenCylinder(r, h, 128), Local: mgl32.Ident4()}
	floor := &Layer{Name: "floor", DoubleSided: true, Local: flat(-h / 2)}
	roof := &Layer{Name: "roof", DoubleSided: true, Local: flat(h / 2)}
	if dark {
		wall.Uniforms = lit(a, cfg.WallColor, 1, 0.05, 0.93)
		floor.Mesh = shape.Disc(r*1.24, 96)
		floor.Uniforms = lit(a, cfg.FloorColor, 0.95, 0.2, 0.1)
		roof.Mesh = shape.Disc(r*1.24, 96)
		roof.Uniforms = lit(a, cfg.RoofColor, 0.7, 0.12, 0.16)
	} else {
		wall.Uniforms = lit(a, cfg.WallColor, 1, 0.06, 0.92)
		floor.Mesh = shape.Disc(r*1.2, 96)
		floor.Uniforms = lit(a, cfg.FloorColor, 1, 0.35, 0.06)
		roof.Mesh = floor.Mesh
		roof.Uniforms = lit(a, cfg.RoofColor, 1, 0.35, 0.06)
	}
	a.Props = append(a.Props, wall, floor, roof)
	if cfg.Theme == config.ThemeGlass {
		a.Props = append(a.Props, &Layer{
			Name:         "floor-glow",
			Mesh:         shape.Disc(r*1.16, 96),
			Local:        flat(-h/2 + 0.02),
			Uniforms:     solid(material.MustHex("#2b5da9"), 0.28),
			DoubleSided:  true,
			Additive:     true,
			NoDepthWrite: true,
		})
	}
}

// ringPanel places panel i at angle on the ring and builds its face.
func (c *Composer) ringPanel(a *Arena, i int, angle float32) *Panel {
	cfg := a.Config
	r := BaseRadius(cfg)
	p := &Panel{
		Index:     i,
		BaseAngle: angle,
		Width:     cfg.FrameWidth - cfg.FrameInset*InsetFactor,
		Height:    cfg.FrameHeight - cfg.FrameInset*InsetFactor,
		Position:  mgl32.Vec3{math32.Sin(angle) * r, cfg.YOffset, math32.Cos(angle) * r},
		Yaw:       angle + math32.Pi,
		Scale:     1,
		Opacity:   1,
	}
	path := shape.RoundedRect(p.Width, p.Height, cfg.RoundTop, cfg.RoundBottom, cfg.RoundLeft, cfg.RoundRight)
	p.path = path
	p.Contour = path.Points(FaceCurveSegments)
	p.Face = shape.Fill(p.Contour, FaceRings, shape.DomeField(shape.BoundsOf(p.Contour), cfg.FrameDepth))
	return p
}

// imageFace adds the picture layer at z and registers its fit.
func (c *Composer) imageFace(a *Arena, p *Panel, z float32) (*material.ImageUniforms, *pendingFit) {
	u := material.NewImage(p.Texture)
	u.Tint = material.MustHex(a.Config.ImageTint)
	p.addLayer(&Layer{Name: "image", Mesh: p.Face, Offset: z, Uniforms: u})
	fit := &pendingFit{entry: p.Texture, w: p.Width, h: p.Height}
	fit.targets = append(fit.targets, fitTarget{&u.Repeat, &u.Offset})
	a.pending = append(a.pending, fit)
	return u, fit
}

func (c *Composer) waterFace(a *Arena, p *Panel, z float32, fit *pendingFit) *Layer {
	cfg := a.Config
	u := material.NewWater(p.Texture, cfg.WaterStrength, cfg.WaterSpeed, cfg.WaterOpacity)
	a.clock(&u.Time)
	fit.targets = append(fit.targets, fitTarget{&u.Repeat, &u.Offset})
	p.water = u
	return p.addLayer(&Layer{Name: "water", Mesh: p.Face, Offset: z, Uniforms: u})
}

func (c *Composer) plainLayers(a *Arena, p *Panel) {
	cfg := a.Config
	if len(cfg.Images) == 0 {
		// Without pictures the face is the lit frame dome.
		u := lit(a, cfg.FrameColor, 1, clampf(cfg.FrameMetalness+0.15, 0, 1), clampf(cfg.FrameRoughness*0.6, 0.02, 1))
		p.pick = p.addLayer(&Layer{Name: "dome", Mesh: p.Face, Offset: 0.001, Uniforms: u})
		return
	}
	p.Texture = c.imageFor(a, p.Index, "")
	c.imageFace(a, p, 0.001)
	p.pick = p.Layers[len(p.Layers)-1]
}

func (c *Composer) waterLayers(a *Arena, p *Panel) {
	p.Texture = c.imageFor(a, p.Index, "")
	_, fit := c.imageFace(a, p, 0.001)
	p.pick = c.waterFace(a, p, 0.02, fit)
}

func (c *Composer) glowLayers(a *Arena, p *Panel, col material.Color) {
	cfg := a.Config
	add := func(name string, z, scale, strength float32) {
		p.addLayer(&Layer{
			Name:     name,
			Mesh:     p.Face,
			Offset:   z,
			Local:    place(z, scale),
			Uniforms: &material.GlowUniforms{Color: col, Strength: strength},
		})
	}
	add("glow-far", -0.045, cfg.GlowFarScale, cfg.GlowStrength*cfg.GlowFarBoost)
	add("glow-outer", -0.015, cfg.GlowOuterScale, cfg.GlowStrength*cfg.GlowOuterBoost)
	add("glow-inner", 0.01, 1.015, cfg.GlowStrength*0.95)
}

func (c *Composer) outlineLayers(a *Arena, p *Panel, col material.Color) {
	cfg := a.Config
	line := outline(p.path.SpacedPoints(OutlineSegments), 0.055)
	p.addLayer(&Layer{
		Name:     "outline",
		Line:     line,
		Offset:   0.055,
		Uniforms: &material.OutlineUniforms{Color: col, Opacity: cfg.LineOpacity, BaseAlpha: cfg.LineOpacity},
		Additive: true,
	})
	p.hot = &material.OutlineUniforms{Color: material.White, Opacity: cfg.LineHotOpacity, BaseAlpha: cfg.LineHotOpacity, Hot: true}
	p.addLayer(&Layer{
		Name:     "outline-hot",
		Line:     line,
		Offset:   0.055,
		Local:    place(0, 1.008),
		Uniforms: p.hot,
		Additive: true,
	})
}

func (c *Composer) glass(a *Arena, opacity, roughness, transmission, thickness float32) *material.GlassUniforms {
	cfg := a.Config
	u := &material.GlassUniforms{
		Tint:         material.MustHex(cfg.GlassTint),
		Opacity:      opacity,
		Roughness:    roughness,
		Transmission: transmission,
		Ior:          cfg.GlassIor,
		Thickness:    thickness,
	}
	a.viewer(&u.ViewPos)
	return u
}

func (c *Composer) glassLayers(a *Arena, p *Panel) {
	cfg := a.Config
	col := glowFor(cfg, p.Index)
	c.glowLayers(a, p, col)

	p.Texture = c.imageFor(a, p.Index, "")
	_, fit := c.imageFace(a, p, 0.001)
	p.pick = c.waterFace(a, p, 0.025, fit)

	r, tr, th := cfg.GlassRoughness, cfg.GlassTransmission, cfg.GlassThickness
	p.addLayer(&Layer{Name: "glass", Mesh: p.Face, Offset: 0.035, DoubleSided: true,
		Uniforms: c.glass(a, cfg.GlassOpacity1, r, tr, th)})
	p.addLayer(&Layer{Name: "glass-mid", Mesh: p.Face, Offset: 0.055, Local: place(0.055, 1.012), DoubleSided: true,
		Uniforms: c.glass(a, cfg.GlassOpacity2, clampf(r*0.8, 0, 0.35), tr, th*0.8)})
	p.addLayer(&Layer{Name: "glass-outer", Mesh: p.Face, Offset: 0.075, Local: place(0.075, 1.024), DoubleSided: true,
		Uniforms: c.glass(a, cfg.GlassOpacity3, clampf(r*1.1, 0, 0.4), clampf(tr*0.92, 0, 1), th*0.65)})

	c.outlineLayers(a, p, col)
	c.cardLayers(a, p)
}

func (c *Composer) cardLayers(a *Arena, p *Panel) {
	cfg := a.Config
	w, h := p.Width*cfg.CardScale, p.Height*cfg.CardScale
	plane := shape.Fill(shape.Rect(w, h).Points(1), 1, nil)
	glassPlane := shape.Fill(shape.Rect(w*1.03, h*1.03).Points(1), 1, nil)

	img := material.NewImage(c.imageFor(a, p.Index+3, ""))
	card := cardFor(cfg, p.Index)
	label := material.NewImage(a.own(texture.Static(texture.CardLabel(card.Title, card.Date, c.typeface))))

	glass := c.glass(a, cfg.CardGlassOpacity, 0.03, 0.88, cfg.GlassThickness)
	glass.Tint = cardGlassTint

	add := func(name string, mesh *shape.Mesh, z, sway float32, u material.Uniforms, noDepth bool) {
		l := p.addLayer(&Layer{Name: name, Mesh: mesh, Offset: z, Uniforms: u, NoDepthWrite: noDepth})
		p.card = append(p.card, cardLayer{layer: l, z: z, sway: sway})
	}
	add("card-image", plane, 0.165, 1, img, false)
	add("card-glass", glassPlane, 0.18, 0.75, glass, false)
	add("card-label", plane, 0.183, 1, label, true)
	c.swayCard(a, p, 0)
}

func (c *Composer) portalLayers(a *Arena, p *Panel, rng *rand.Rand) {
	cfg := a.Config
	col := glowFor(cfg, p.Index)
	pal := paletteFor(cfg, p.Index)

	p.addLayer(&Layer{Name: "face-back", Mesh: p.Face, Offset: 0, DoubleSided: true,
		Uniforms: solid(material.MustHex("#04070f"), 0.92)})
	c.glowLayers(a, p, col)

	core := &material.PortalUniforms{
		Inner:        material.MustHex(pal.Inner),
		Outer:        material.MustHex(pal.Outer),
		CoreStrength: cfg.PortalCoreStrength,
		RingStrength: cfg.PortalRingStrength,
		NoiseScale:   cfg.PortalNoiseScale,
		FlowSpeed:    cfg.PortalFlowSpeed,
		Opacity:      1,
	}
	ring := &material.PortalUniforms{
		Inner:        material.MustHex(pal.Outer),
		Outer:        material.White,
		CoreStrength: cfg.PortalCoreStrength * 0.75,
		RingStrength: cfg.PortalRingStrength * 1.15,
		NoiseScale:   cfg.PortalNoiseScale * 1.24,
		FlowSpeed:    cfg.PortalFlowSpeed * 1.1,
		Opacity:      1,
	}
	a.clock(&core.Time)
	a.clock(&ring.Time)
	vortex := c.glass(a, cfg.GlassOpacity1*0.75, cfg.GlassRoughness, clampf(cfg.GlassTransmission*0.75, 0, 1), cfg.GlassThickness*0.8)

	wave := func(l *Layer, amount float32) {
		p.waves = append(p.waves, waveLayer{layer: l, rest: l.Local, amount: amount})
	}
	p.pick = p.addLayer(&Layer{Name: "portal-core", Mesh: p.Face, Offset: 0.03, Uniforms: core})
	wave(p.pick, 0.04)
	wave(p.addLayer(&Layer{Name: "portal-ring", Mesh: p.Face, Offset: 0.04, Local: place(0.04, 1.03), Uniforms: ring}), -0.06)
	wave(p.addLayer(&Layer{Name: "portal-vortex", Mesh: p.Face, Offset: 0.055, Local: place(0.055, 1.012), DoubleSided: true, Uniforms: vortex}), 0.03)

	c.outlineLayers(a, p, col)

	p.Sparks = particles.NewSparks(p.path.SpacedPoints(particles.SparkEdgeSamples), material.MustHex(pal.Outer), rng)
}

func (c *Composer) buildAccretion(a *Arena, rng *rand.Rand) {
	cfg := a.Config
	r := cfg.WallRadius
	disk := &material.DiskUniforms{
		ColorA:     material.MustHex(cfg.BlackHoleColorA),
		ColorB:     material.MustHex(cfg.BlackHoleColorB),
		HoleSize:   cfg.BlackHoleSize,
		RingRadius: cfg.BlackHoleRingRadius,
		SpinSpeed:  cfg.BlackHoleSpinSpeed,
		Glow:       cfg.BlackHoleGlow,
	}
	a.clock(&disk.Time)
	acc := &Accretion{
		Position:   mgl32.Vec3{cfg.BlackHolePosX, cfg.BlackHolePosY, cfg.BlackHolePosZ},
		DustOffset: 0.01,
	}
	acc.Layers = []*Layer{
		{Name: "disk", Mesh: shape.Disc(r*0.46, 160), Local: flat(0), Uniforms: disk, DoubleSided: true},
		{Name: "horizon", Mesh: shape.Disc(r*cfg.BlackHoleSize*0.72, 96), Offset: 0.002, Local: flat(0.002),
			Uniforms: solid(material.Color{}, 0.98), DoubleSided: true, NoDepthWrite: true},
		{Name: "disk-glow", Mesh: shape.Ring(r*max(cfg.BlackHoleRingRadius-0.03, 0.02), r*(cfg.BlackHoleRingRadius+0.045), 128),
			Offset: 0.004, Local: flat(0.004), Uniforms: solid(material.MustHex(cfg.BlackHoleColorB), 0.4),
			DoubleSided: true, Additive: true, NoDepthWrite: true},
	}
	acc.Dust = particles.NewDust(particles.DustCount,
		material.MustHex(cfg.BlackHoleDustColorA), material.MustHex(cfg.BlackHoleDustColorB), rng)
	a.Accretion = acc
}

func (c *Composer) buildImmersive(a *Arena) {
	cfg := a.Config
	floor := &material.FloorGridUniforms{}
	a.clock(&floor.Time)
	a.Props = append(a.Props,
		&Layer{
			Name:         "floor-grid",
			Mesh:         shape.Fill(shape.Rect(56, 64).Points(1), 1, nil),
			Local:        mgl32.Translate3D(0, ImmersiveFloorY, cfg.RingCenterZ-2.8).Mul4(mgl32.HomogRotate3DX(-math32.Pi / 2)),
			Uniforms:     floor,
			NoDepthWrite: true,
		},
		&Layer{
			Name:     "backdrop",
			Mesh:     shape.OpenCylinder(22, 13, 64),
			Local:    mgl32.Translate3D(0, 1.5, cfg.RingCenterZ-2),
			Uniforms: lit(a, "#d0d8e7", 0.62, 0, 1),
		},
	)
	for i := 0; i < cfg.FrameCount; i++ {
		p := &Panel{
			Index:     i,
			BaseAngle: float32(i) * cfg.SpacingAngle,
			Width:     cfg.FrameWidth - cfg.FrameInset*InsetFactor,
			Height:    cfg.FrameHeight - cfg.FrameInset*InsetFactor,
			Scale:     1,
			Opacity:   1,
		}
		p.Contour = shape.Arch(p.Width, p.Height, cfg.ArchRadius).Points(FaceCurveSegments)
		p.Face = shape.Fill(p.Contour, ArtifactRings, nil)
		p.Texture = c.imageFor(a, i, cardFor(cfg, i).Title)
		u := material.NewArtifact(p.Texture)
		a.clock(&u.Time)
		p.artifact = u
		p.pick = p.addLayer(&Layer{Name: "artifact", Mesh: p.Face, Uniforms: u, DoubleSided: true})
		fit := &pendingFit{entry: p.Texture, w: p.Width, h: p.Height}
		fit.targets = append(fit.targets, fitTarget{&u.Repeat, &u.Offset})
		a.pending = append(a.pending, fit)
		a.Panels = append(a.Panels, p)
	}
}

// WallHole returns the opening carved into the wall theme's wall.
func WallHole(cfg config.SceneConfig) *shape.Path {
	switch cfg.HoleShape {
	case config.HoleCircle:
		return shape.Circle(cfg.HoleWidth, cfg.HoleHeight)
	case config.HoleRounded:
		r := cfg.HoleRadius
		return shape.RoundedRect(cfg.HoleWidth, cfg.HoleHeight, r, r, r, r)
	default:
		return shape.Arch(cfg.HoleWidth, cfg.HoleHeight, cfg.HoleRadius)
	}
}

func (c *Composer) buildWall(a *Arena) {
	cfg := a.Config
	carved := shape.CarveHole(shape.Rect(cfg.HoleWallWidth, cfg.HoleWallHeight), WallHole(cfg))
	a.Props = append(a.Props,
		&Layer{
			Name:     "wall",
			Mesh:     shape.Extrude(carved, cfg.HoleWallDepth),
			Local:    mgl32.HomogRotate3DY(mgl32.DegToRad(cfg.SceneRotationY)),
			Uniforms: lit(a, cfg.WallColor, 1, cfg.FrameMetalness, cfg.FrameRoughness),
		},
		&Layer{
			Name:        "floor",
			Mesh:        shape.Disc(16, 96),
			Local:       flat(-3.1),
			Uniforms:    lit(a, cfg.FloorColor, 1, 0.24, 0.08),
			DoubleSided: true,
		},
	)
	a.halo = &Layer{
		Name:         "halo",
		Mesh:         shape.Ring(2.2, 3.8, 80),
		Local:        flat(-2.98),
		Uniforms:     solid(material.White, 0.14),
		DoubleSided:  true,
		NoDepthWrite: true,
	}
	a.Props = append(a.Props, a.halo)
}
