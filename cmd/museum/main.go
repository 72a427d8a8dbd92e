package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Jayesh2401/museum/internal/commands"
	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/debug"
	"github.com/Jayesh2401/museum/internal/engineconfig"
	"github.com/Jayesh2401/museum/internal/env"
	"github.com/Jayesh2401/museum/internal/graphics"
	"github.com/Jayesh2401/museum/internal/logger"
	"github.com/Jayesh2401/museum/internal/render"
	"github.com/Jayesh2401/museum/internal/scene"
	"github.com/Jayesh2401/museum/internal/terminal"
	"github.com/Jayesh2401/museum/internal/texture"
)

func main() {
	themeFlag := flag.String("theme", "", "start theme (plain, water, glass, portal, accretion, immersive, wall)")
	presetFlag := flag.String("preset", "", "YAML or JSON scene preset")
	imagesFlag := flag.String("images", "", "directory of images to hang")
	exportFlag := flag.Bool("export", false, "print the resolved scene configuration as JSON and exit")
	savePrefs := flag.Bool("save-prefs", false, "write the resolved preferences to "+engineconfig.PrefsPath)
	flag.Parse()

	log := logger.New()
	keysSet, err := env.Load(".env")
	if err != nil {
		log.Log(err.Error())
	}
	if len(keysSet) > 0 {
		log.Logf("env: loaded %s", strings.Join(keysSet, ", "))
	}
	prefs, err := engineconfig.Load()
	if err != nil {
		log.Logf("%v; using defaults", err)
	}
	if applied := env.Apply(&prefs); len(applied) > 0 {
		log.Logf("env: applied %s", strings.Join(applied, ", "))
	}
	if *themeFlag != "" {
		prefs.Theme = *themeFlag
	}
	if *presetFlag != "" {
		prefs.PresetPath = *presetFlag
	}
	if *imagesFlag != "" {
		prefs.ImageDir = *imagesFlag
	}
	if *savePrefs {
		if err := engineconfig.Save(prefs); err != nil {
			log.Logf("prefs: %v", err)
		}
	}

	cfg, err := sceneConfig(prefs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *exportFlag {
		data, err := config.Export(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Stdout.Write(append(data, '\n'))
		return
	}

	backend := render.New(log.Logf)
	ctx := scene.New(scene.Options{
		Config:   cfg,
		Fetcher:  texture.NewRouter(prefs.AssetRoot),
		Renderer: backend,
		Logf:     log.Logf,
		OnActive: func(i int) { log.Logf("active panel %d", i) },

		DepTimeout:     prefs.DepTimeout(),
		MaxTextureSize: prefs.MaxTextureSize,
	})
	if err := ctx.Init(context.Background()); err != nil {
		// Skip the variant and show the plain gallery with the same images.
		plain := config.Default(config.ThemePlain)
		plain.Images, plain.Cards = cfg.Images, cfg.Cards
		if err := ctx.SetConfig(context.Background(), plain); err != nil {
			log.Logf("scene: %v", err)
		}
		if err := ctx.Init(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	reg := commands.NewRegistry()
	term := terminal.New(log, reg)
	commands.RegisterGallery(reg, ctx, log.Log)
	stdin := commands.ReadLines(os.Stdin)

	overlay := debug.New()
	overlay.SetShowFPS(prefs.ShowFPS)
	overlay.SetShowMemAlloc(prefs.ShowMemAlloc)
	overlay.ShowStats = prefs.ShowStats
	overlay.SetStatus(func() debug.Status {
		st := backend.Stats()
		var waiting string
		if th, ok := ctx.PendingTheme(); ok {
			waiting = string(th)
		}
		return debug.Status{
			Waiting: waiting,
			Theme:   string(ctx.Config().Theme),
			Active:  ctx.ActiveIndex(),
			Hover:   ctx.HoverIndex(),
			Pending: ctx.Pending(),
			Layers:  st.Layers,
			Lines:   st.Lines,
			Points:  st.Points,
		}
	})

	update := func(dt float32) {
		for drained := false; !drained; {
			select {
			case line, ok := <-stdin:
				if !ok {
					stdin = nil
					drained = true
					break
				}
				term.Submit(line)
			default:
				drained = true
			}
		}
		term.Update()
		if !term.IsOpen() {
			keys(ctx, reg, overlay, log)
		}
		ctx.Update(dt)
	}
	draw := func() {
		ctx.Draw()
		overlay.Draw()
		term.Draw()
	}
	graphics.Run(graphics.Window{
		Title:      "museum",
		Width:      prefs.Width,
		Height:     prefs.Height,
		Fullscreen: prefs.Fullscreen,
		OnClose: func() {
			ctx.Teardown()
			backend.Close()
		},
	}, ctx, update, draw)
}

// sceneConfig resolves the start configuration: the preset if any, else the theme defaults,
// with the theme and image directory overrides applied.
func sceneConfig(p engineconfig.Prefs) (config.SceneConfig, error) {
	theme, ok := config.ParseTheme(p.Theme)
	if p.Theme != "" && !ok {
		return config.SceneConfig{}, fmt.Errorf("unknown theme %q", p.Theme)
	}
	cfg := config.Default(theme)
	if p.PresetPath != "" {
		loaded, err := config.Load(p.PresetPath)
		if err != nil {
			return config.SceneConfig{}, err
		}
		cfg = loaded
		if p.Theme != "" {
			cfg.Theme = theme
		}
	}
	if p.ImageDir != "" {
		images, err := texture.ScanDir(p.ImageDir)
		if err != nil {
			return config.SceneConfig{}, err
		}
		cfg.Images = images
	}
	return cfg.Clamp(), nil
}

// keys handles the window shortcuts: arrows step the ring, T cycles themes, F3 toggles the
// overlay.
func keys(ctx *scene.Context, reg *commands.Registry, overlay *debug.Debug, log *logger.Logger) {
	if n := ctx.Config().FrameCount; n > 0 && ctx.ActiveIndex() >= 0 {
		if rl.IsKeyPressed(rl.KeyRight) {
			ctx.JumpTo((ctx.ActiveIndex() + 1) % n)
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			ctx.JumpTo((ctx.ActiveIndex() + n - 1) % n)
		}
	}
	if rl.IsKeyPressed(rl.KeyT) {
		if err := reg.ExecuteLine("theme"); err != nil {
			log.Log(err.Error())
		}
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		overlay.Toggle()
	}
}
