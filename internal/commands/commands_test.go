package commands

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jayesh2401/museum/internal/config"
)

type fakeGallery struct {
	cfg    config.SceneConfig
	jumped []int
	sets   int
	// slow themes wait on dependencies instead of switching.
	slow    config.Theme
	waiting bool
}

func (g *fakeGallery) JumpTo(i int)               { g.jumped = append(g.jumped, i) }
func (g *fakeGallery) Config() config.SceneConfig { return g.cfg.Clone() }
func (g *fakeGallery) SetConfig(_ context.Context, cfg config.SceneConfig) error {
	g.sets++
	g.waiting = cfg.Theme == g.slow
	if !g.waiting {
		g.cfg = cfg
	}
	return nil
}

func (g *fakeGallery) PendingTheme() (config.Theme, bool) { return g.slow, g.waiting }

func newGallery(t *testing.T) (*Registry, *fakeGallery, *[]string) {
	t.Helper()
	reg := NewRegistry()
	g := &fakeGallery{cfg: config.Default(config.ThemePlain)}
	g.cfg.Images = []string{"a.png", "b.png"}
	var out []string
	RegisterGallery(reg, g, func(s string) { out = append(out, s) })
	return reg, g, &out
}

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		ok   bool
	}{
		{"jump 3", []string{"jump", "3"}, true},
		{"cmd jump 3", []string{"jump", "3"}, true},
		{"  set frameGap 0.5 ", []string{"set", "frameGap", "0.5"}, true},
		{"cmd", nil, false},
		{"   ", nil, false},
		{"cmdx", []string{"cmdx"}, true},
	}
	for _, tc := range cases {
		args, ok := Parse(tc.line)
		if ok != tc.ok || strings.Join(args, "|") != strings.Join(tc.args, "|") {
			t.Errorf("Parse(%q) = %q, %v; want %q, %v", tc.line, args, ok, tc.args, tc.ok)
		}
	}
}

func TestExecuteUnknownAndFlagReset(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Execute(nil); err == nil {
		t.Fatal("empty args should fail")
	}
	if err := reg.Execute([]string{"nope"}); err == nil {
		t.Fatal("unknown command should fail")
	}
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	n := fs.Int("n", 1, "")
	var seen []int
	reg.Register("count", fs, func() error { seen = append(seen, *n); return nil })
	for _, line := range []string{"count -n 5", "count"} {
		if err := reg.ExecuteLine(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if len(seen) != 2 || seen[0] != 5 || seen[1] != 1 {
		t.Fatalf("seen = %v, want [5 1]", seen)
	}
	if err := reg.ExecuteLine("count -bogus"); err == nil {
		t.Fatal("bad flag should fail")
	}
}

func TestJump(t *testing.T) {
	reg, g, _ := newGallery(t)
	if err := reg.ExecuteLine("cmd jump -index 3"); err != nil {
		t.Fatal(err)
	}
	if err := reg.ExecuteLine("jump 4"); err != nil {
		t.Fatal(err)
	}
	if len(g.jumped) != 2 || g.jumped[0] != 3 || g.jumped[1] != 4 {
		t.Fatalf("jumped = %v", g.jumped)
	}
	if err := reg.ExecuteLine("jump x"); err == nil {
		t.Fatal("non-numeric index should fail")
	}
	if err := reg.ExecuteLine("jump"); err == nil {
		t.Fatal("missing index should fail")
	}
}

func TestThemeSwitchKeepsImages(t *testing.T) {
	reg, g, out := newGallery(t)
	if err := reg.ExecuteLine("theme"); err != nil {
		t.Fatal(err)
	}
	if g.cfg.Theme != config.ThemeWater {
		t.Fatalf("theme = %s, want the next theme", g.cfg.Theme)
	}
	if len(g.cfg.Images) != 2 {
		t.Fatal("images should carry over")
	}
	if err := reg.ExecuteLine("cmd theme -name portal"); err != nil {
		t.Fatal(err)
	}
	if g.cfg.Theme != config.ThemePortal || (*out)[len(*out)-1] != "theme portal" {
		t.Fatalf("theme = %s, out = %v", g.cfg.Theme, *out)
	}
	if err := reg.ExecuteLine("theme nebula"); err == nil {
		t.Fatal("unknown theme should fail")
	}

	g.cfg.FrameGap = 0.77
	if err := reg.ExecuteLine("theme -keep glass"); err != nil {
		t.Fatal(err)
	}
	if g.cfg.Theme != config.ThemeGlass || g.cfg.FrameGap != 0.77 {
		t.Fatalf("-keep should keep values: %s %v", g.cfg.Theme, g.cfg.FrameGap)
	}
}

func TestSetField(t *testing.T) {
	reg, g, _ := newGallery(t)
	if err := reg.ExecuteLine("cmd set -key frameCount -value 12"); err != nil {
		t.Fatal(err)
	}
	if g.cfg.FrameCount != 12 || g.sets != 1 {
		t.Fatalf("frameCount = %d after %d sets", g.cfg.FrameCount, g.sets)
	}
	if err := reg.ExecuteLine("set noSuchField 1"); err == nil {
		t.Fatal("unknown field should fail")
	}
	if err := reg.ExecuteLine("set -key frameGap"); err == nil {
		t.Fatal("missing value should fail")
	}
	if g.sets != 1 {
		t.Fatal("a failed set must not reach the gallery")
	}
	if err := reg.ExecuteLine("set frameGap 1.5"); err != nil || g.cfg.FrameGap != 1.5 {
		t.Fatalf("positional set: %v, frameGap = %v", err, g.cfg.FrameGap)
	}
}

func TestExport(t *testing.T) {
	reg, g, out := newGallery(t)
	if err := reg.ExecuteLine("export"); err != nil {
		t.Fatal(err)
	}
	var got config.SceneConfig
	if err := json.Unmarshal([]byte((*out)[0]), &got); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if got.Theme != g.cfg.Theme {
		t.Fatalf("theme = %s", got.Theme)
	}

	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := reg.ExecuteLine("export -yaml -o " + path); err != nil {
		t.Fatal(err)
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Theme != g.cfg.Theme || len(loaded.Images) != 2 {
		t.Fatalf("loaded = %s %v", loaded.Theme, loaded.Images)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestReadLines(t *testing.T) {
	var got []string
	for line := range ReadLines(strings.NewReader("jump 1\ntheme water\n")) {
		got = append(got, line)
	}
	if len(got) != 2 || got[1] != "theme water" {
		t.Fatalf("lines = %q", got)
	}
}

func TestThemeReportsLoading(t *testing.T) {
	reg, g, out := newGallery(t)
	g.slow = config.ThemeImmersive
	if err := reg.ExecuteLine("theme -name immersive"); err != nil {
		t.Fatal(err)
	}
	if got := (*out)[len(*out)-1]; got != "theme immersive (loading)" {
		t.Fatalf("out = %q", got)
	}
	if g.cfg.Theme != config.ThemePlain {
		t.Fatal("the current theme stays until the dependencies arrive")
	}
}
