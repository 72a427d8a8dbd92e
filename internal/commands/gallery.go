package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Jayesh2401/museum/internal/config"
)

// Gallery is the part of a scene context the gallery commands drive.
type Gallery interface {
	JumpTo(i int)
	Config() config.SceneConfig
	SetConfig(ctx context.Context, cfg config.SceneConfig) error
	PendingTheme() (config.Theme, bool)
}

// RegisterGallery registers jump, theme, set and export against g. Command output goes to out,
// one line per call.
func RegisterGallery(reg *Registry, g Gallery, out func(string)) {
	if out == nil {
		out = func(string) {}
	}

	jump := flag.NewFlagSet("jump", flag.ContinueOnError)
	index := jump.Int("index", -1, "panel to bring to the front")
	reg.Register("jump", jump, func() error {
		i := *index
		if jump.NArg() > 0 {
			n, err := strconv.Atoi(jump.Arg(0))
			if err != nil {
				return fmt.Errorf("jump: %w", err)
			}
			i = n
		}
		if i < 0 {
			return fmt.Errorf("usage: jump -index <n>")
		}
		g.JumpTo(i)
		return nil
	})

	theme := flag.NewFlagSet("theme", flag.ContinueOnError)
	name := theme.String("name", "", "theme to switch to; empty cycles to the next one")
	keep := theme.Bool("keep", false, "keep the current values instead of the theme defaults")
	reg.Register("theme", theme, func() error {
		cur := g.Config()
		next, want := cur.Theme.Next(), *name
		if theme.NArg() > 0 {
			want = theme.Arg(0)
		}
		if want != "" {
			t, ok := config.ParseTheme(want)
			if !ok {
				return fmt.Errorf("theme: unknown theme %q", want)
			}
			next = t
		}
		cfg := cur.Clone()
		if !*keep {
			cfg = config.Default(next)
			cfg.Images = cur.Images
			cfg.Cards = cur.Cards
		}
		cfg.Theme = next
		if err := g.SetConfig(context.Background(), cfg); err != nil {
			return err
		}
		if th, waiting := g.PendingTheme(); waiting && th == next {
			out("theme " + string(next) + " (loading)")
			return nil
		}
		out("theme " + string(next))
		return nil
	})

	set := flag.NewFlagSet("set", flag.ContinueOnError)
	key := set.String("key", "", "field tag, e.g. frameGap or particles.count")
	value := set.String("value", "", "YAML scalar value")
	reg.Register("set", set, func() error {
		k, v := *key, *value
		if set.NArg() == 2 {
			k, v = set.Arg(0), set.Arg(1)
		}
		if k == "" || v == "" {
			return fmt.Errorf("usage: set -key <field> -value <value>")
		}
		cfg, err := g.Config().With(k, v)
		if err != nil {
			return err
		}
		return g.SetConfig(context.Background(), cfg)
	})

	export := flag.NewFlagSet("export", flag.ContinueOnError)
	asYAML := export.Bool("yaml", false, "write a YAML preset instead of JSON")
	path := export.String("o", "", "write to this file instead of the log")
	reg.Register("export", export, func() error {
		cfg := g.Config()
		var data []byte
		var err error
		if *asYAML {
			data, err = config.ExportYAML(cfg)
		} else {
			data, err = config.Export(cfg)
		}
		if err != nil {
			return err
		}
		if *path != "" {
			if err := os.WriteFile(*path, data, 0644); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			out("exported " + *path)
			return nil
		}
		out(string(data))
		return nil
	})
}
