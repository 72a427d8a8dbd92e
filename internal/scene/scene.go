// Package scene is the gallery's explicit context: it owns the texture cache, the composer and
// the animation driver, takes the host's input events and hands each frame to a Renderer.
// Nothing is global; a host may run several contexts side by side.
package scene

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/anim"
	"github.com/Jayesh2401/museum/internal/composer"
	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/deps"
	"github.com/Jayesh2401/museum/internal/texture"
)

// ErrTornDown is returned by calls that need a live context after Teardown.
var ErrTornDown = errors.New("scene: torn down")

// Renderer draws an arena and frees the GPU resources of dropped ones.
type Renderer interface {
	composer.Releaser
	Draw(a *composer.Arena)
}

// Options configure a Context.
type Options struct {
	Config config.SceneConfig
	// Fetcher loads images and dependency candidates.
	Fetcher texture.Fetcher
	// Renderer may be nil for a headless context.
	Renderer Renderer
	Logf     texture.Logf
	// Deps resolves the theme's runtime dependencies. Nil uses a resolver over Fetcher.
	Deps *deps.Resolver
	// OnActive is called whenever the active panel changes.
	OnActive func(int)
	// DepTimeout bounds each dependency candidate; zero keeps deps.DefaultTimeout.
	DepTimeout time.Duration
	// MaxTextureSize is the largest image edge kept after decoding; zero keeps the default.
	MaxTextureSize int
}

// Context is one running gallery.
type Context struct {
	opts     Options
	logf     texture.Logf
	cache    *texture.Cache
	composer *composer.Composer
	driver   *anim.Driver
	deps     *deps.Resolver
	loaded   map[string]bool

	// waiting resolves the dependencies of want, the config that replaces cfg once they load.
	waiting *deps.Pending
	want    config.SceneConfig

	cfg    config.SceneConfig
	ready  bool
	closed bool
}

// New returns a context for opts. Nothing is built until Init.
func New(opts Options) *Context {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = texture.NewRouter("")
	}
	resolver := opts.Deps
	if resolver == nil {
		resolver = deps.NewResolver(fetcher, logf)
	}
	if opts.DepTimeout > 0 {
		resolver.SetTimeout(opts.DepTimeout)
	}
	cache := texture.NewCache(fetcher, logf)
	cache.SetMaxSize(opts.MaxTextureSize)
	var release composer.Releaser
	if opts.Renderer != nil {
		release = opts.Renderer
	}
	return &Context{
		opts:     opts,
		logf:     logf,
		cache:    cache,
		composer: composer.New(cache, release),
		deps:     resolver,
		loaded:   make(map[string]bool),
		cfg:      opts.Config.Clamp(),
	}
}

// Init resolves the dependencies of the configured theme and builds the first arena. It runs
// before the loop starts and waits for the resolution. When a required dependency is
// unavailable the error is logged and returned and the context stays unbuilt, so the host can
// skip the variant.
func (c *Context) Init(ctx context.Context) error {
	if c.closed {
		return ErrTornDown
	}
	if need := c.missing(c.cfg.Theme); len(need) > 0 {
		res, err := c.deps.ResolveAll(ctx, need)
		if err == nil {
			err = c.install(res)
		}
		if err != nil {
			c.logf("scene: %s theme skipped: %v", c.cfg.Theme, err)
			return err
		}
	}
	c.driver = anim.NewDriver(strategyFor(c.cfg), mgl32.DegToRad(c.cfg.RotationOffsetDeg))
	c.driver.OnActive = c.opts.OnActive
	c.composer.Rebuild(c.cfg)
	c.ready = true
	c.logf("scene: %s theme with %d panels", c.cfg.Theme, c.composer.Arena().PanelCount())
	return nil
}

// missing returns the dependencies of theme that are not loaded yet.
func (c *Context) missing(theme config.Theme) []deps.Dependency {
	var out []deps.Dependency
	for _, d := range deps.ForTheme(theme) {
		if !c.loaded[d.Name] {
			out = append(out, d)
		}
	}
	return out
}

// install applies resolved payloads. A payload that does not parse makes its dependency
// unavailable.
func (c *Context) install(res []deps.Resolved) error {
	for _, r := range res {
		switch r.Name {
		case deps.LabelFontName:
			tf, err := deps.LoadFont(r.Data)
			if err != nil {
				return &deps.UnavailableError{Name: r.Name, Tried: 1, Last: err}
			}
			c.cache.SetTypeface(tf)
			c.composer.SetTypeface(tf)
		}
		c.loaded[r.Name] = true
		c.logf("scene: %s loaded from %s", r.Name, r.Source)
	}
	return nil
}

func strategyFor(cfg config.SceneConfig) anim.Strategy {
	if cfg.Theme == config.ThemeImmersive {
		return anim.ProgressStrategy{Spacing: cfg.SpacingAngle}
	}
	return anim.RotationStrategy{}
}

func (c *Context) live() bool { return c.ready && !c.closed }

// PointerMove records the pointer at normalized device coordinates.
func (c *Context) PointerMove(x, y float32) {
	if !c.live() {
		return
	}
	p := mgl32.Vec2{x, y}
	c.composer.SetPointer(p)
	c.driver.PointTo(p)
}

// PointerLeave records that the pointer left the view.
func (c *Context) PointerLeave() {
	if !c.live() {
		return
	}
	c.composer.ClearPointer()
	c.driver.ReleasePointer()
}

// Wheel applies a scroll delta.
func (c *Context) Wheel(deltaY float32) {
	if !c.live() {
		return
	}
	c.driver.Wheel(deltaY, c.cfg.ScrollRotateStrength)
}

// Resize tells the context the viewport size in pixels.
func (c *Context) Resize(w, h int) {
	if c.closed || w <= 0 || h <= 0 {
		return
	}
	c.composer.SetAspect(float32(w) / float32(h))
}

// JumpTo targets panel i. Out of range indices are ignored.
func (c *Context) JumpTo(i int) {
	if !c.live() {
		return
	}
	c.driver.JumpTo(i, c.composer)
}

// SetConfig replaces the configuration wholesale and rebuilds. The particle field is kept
// unless its parameters changed; a changed rotation offset moves the rotation target by the
// difference. It never waits on the network: when the new theme's dependencies are not loaded
// yet they resolve in the background under ctx, the current scene stays live and Update
// switches once they arrive. If they turn out unavailable the current scene is kept. A later
// SetConfig supersedes a config still waiting.
func (c *Context) SetConfig(ctx context.Context, cfg config.SceneConfig) error {
	if c.closed {
		return ErrTornDown
	}
	cfg = cfg.Clamp()
	if !c.ready {
		c.cfg = cfg
		return nil
	}
	if c.waiting != nil && c.want.Theme == cfg.Theme {
		c.want = cfg
		return nil
	}
	c.stopWaiting()
	if need := c.missing(cfg.Theme); len(need) > 0 {
		c.want = cfg
		c.waiting = c.deps.Start(ctx, need)
		c.logf("scene: %s theme waiting on %d dependency(ies)", cfg.Theme, len(need))
		return nil
	}
	c.apply(cfg)
	return nil
}

// PendingTheme reports the theme waiting on its dependencies, if any.
func (c *Context) PendingTheme() (config.Theme, bool) {
	if c.waiting == nil {
		return "", false
	}
	return c.want.Theme, true
}

func (c *Context) stopWaiting() {
	if c.waiting != nil {
		c.waiting.Cancel()
		c.waiting = nil
	}
}

// settle switches to the waiting config once its dependencies have resolved.
func (c *Context) settle() {
	if c.waiting == nil || !c.waiting.Ready() {
		return
	}
	cfg := c.want
	res, err := c.waiting.Result()
	c.waiting = nil
	if err == nil {
		err = c.install(res)
	}
	if err != nil {
		c.logf("scene: %s theme skipped: %v", cfg.Theme, err)
		return
	}
	c.apply(cfg)
}

func (c *Context) apply(cfg config.SceneConfig) {
	prev := c.cfg
	c.cfg = cfg
	if delta := cfg.RotationOffsetDeg - prev.RotationOffsetDeg; delta != 0 {
		c.driver.ShiftRotation(mgl32.DegToRad(delta))
	}
	if cfg.Theme != prev.Theme || cfg.SpacingAngle != prev.SpacingAngle {
		c.driver.SetStrategy(strategyFor(cfg))
	}
	c.composer.Rebuild(cfg)
}

// Config returns the clamped configuration in use.
func (c *Context) Config() config.SceneConfig { return c.cfg.Clone() }

// ActiveIndex returns the panel nearest the view direction, or -1.
func (c *Context) ActiveIndex() int {
	if !c.ready {
		return -1
	}
	return c.driver.Active()
}

// HoverIndex returns the panel under the pointer, or -1.
func (c *Context) HoverIndex() int {
	if !c.live() {
		return -1
	}
	return c.composer.HoverIndex()
}

// Pending returns how many textures are still loading.
func (c *Context) Pending() int { return c.cache.Pending() }

// Nav returns the navigation state.
func (c *Context) Nav() anim.Nav {
	if c.driver == nil {
		return anim.Nav{}
	}
	return c.driver.Nav()
}

// Arena returns the current arena, or nil.
func (c *Context) Arena() *composer.Arena {
	if !c.live() {
		return nil
	}
	return c.composer.Arena()
}

// Snapshot returns the configuration as indented JSON.
func (c *Context) Snapshot() ([]byte, error) {
	data, err := config.Export(c.cfg)
	if err != nil {
		return nil, fmt.Errorf("scene: snapshot: %w", err)
	}
	return data, nil
}

// Update advances the context by dt seconds: a config whose dependencies arrived is applied,
// settled images are applied and their fits written, then the driver runs one tick.
func (c *Context) Update(dt float32) {
	if !c.live() {
		return
	}
	c.settle()
	if c.cache.Poll() > 0 || c.composer.Arena().Pending() > 0 {
		c.composer.Arena().ResolvePendingFits()
	}
	c.driver.Tick(dt, c.composer)
}

// Draw hands the current arena to the renderer.
func (c *Context) Draw() {
	if !c.live() || c.opts.Renderer == nil {
		return
	}
	c.opts.Renderer.Draw(c.composer.Arena())
}

// Teardown stops the context: in-flight fetches are cancelled, the arena is released and
// later events are ignored. It is safe to call more than once.
func (c *Context) Teardown() {
	if c.closed {
		return
	}
	c.closed = true
	c.stopWaiting()
	c.cache.Close()
	c.composer.Close()
	c.logf("scene: torn down")
}
