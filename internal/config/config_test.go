package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultUnknownThemeIsPlain(t *testing.T) {
	c := Default(Theme("nope"))
	if c.Theme != ThemePlain {
		t.Fatalf("theme = %q, want plain", c.Theme)
	}
	if c.FrameCount != 9 || c.FrameGap != 1.28 {
		t.Fatalf("unexpected plain defaults: count=%d gap=%v", c.FrameCount, c.FrameGap)
	}
}

func TestThemeNextWraps(t *testing.T) {
	last := Themes[len(Themes)-1]
	if got := last.Next(); got != Themes[0] {
		t.Fatalf("Next(%q) = %q, want %q", last, got, Themes[0])
	}
	if got := ThemePlain.Next(); got != ThemeWater {
		t.Fatalf("Next(plain) = %q, want water", got)
	}
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	a := Default(ThemeGlass)
	b := a.Clone()
	b.GlowColors[0] = "#000000"
	b.Cards[0].Title = "changed"
	if a.GlowColors[0] == "#000000" {
		t.Fatal("clone shares GlowColors with original")
	}
	if a.Cards[0].Title == "changed" {
		t.Fatal("clone shares Cards with original")
	}
}

func TestClampPullsValuesIntoRange(t *testing.T) {
	c := Default(ThemeGlass)
	c.FrameCount = -3
	c.WaterOpacity = 4
	c.ImageFitMode = "stretch"
	c.ImageFitWidth = 0
	c.GlassIor = 0.2
	c.WallColor = "blue"
	c.Theme = "unknown"
	c.Particles.Count = -10
	out := c.Clamp()
	if out.FrameCount != MinFrameCount {
		t.Errorf("FrameCount = %d", out.FrameCount)
	}
	if out.WaterOpacity != 1 {
		t.Errorf("WaterOpacity = %v", out.WaterOpacity)
	}
	if out.ImageFitMode != FitCover {
		t.Errorf("ImageFitMode = %q", out.ImageFitMode)
	}
	if out.ImageFitWidth != 1 {
		t.Errorf("ImageFitWidth = %v", out.ImageFitWidth)
	}
	if out.GlassIor != 1 {
		t.Errorf("GlassIor = %v", out.GlassIor)
	}
	if out.Theme != ThemePlain {
		t.Errorf("Theme = %q", out.Theme)
	}
	if out.WallColor != Default(ThemePlain).WallColor {
		t.Errorf("WallColor = %q", out.WallColor)
	}
	if out.Particles.Count != 0 {
		t.Errorf("Particles.Count = %d", out.Particles.Count)
	}
	// The input is left untouched.
	if c.FrameCount != -3 {
		t.Errorf("Clamp mutated its receiver")
	}
}

func TestClampInsetNeverInvertsFace(t *testing.T) {
	c := Default(ThemePlain)
	c.FrameWidth = 1
	c.FrameInset = 5
	out := c.Clamp()
	if face := out.FrameWidth - out.FrameInset*1.4; face <= 0 {
		t.Fatalf("face width %v after clamping inset %v", face, out.FrameInset)
	}
}

func TestParseOverlaysThemeDefaults(t *testing.T) {
	c, err := Parse([]byte("theme: portal\nframeCount: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme != ThemePortal || c.FrameCount != 5 {
		t.Fatalf("got theme=%q count=%d", c.Theme, c.FrameCount)
	}
	if c.PortalNoiseScale != 3.4 {
		t.Fatalf("portal defaults not applied: noise=%v", c.PortalNoiseScale)
	}
}

func TestLoadJSONPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.json")
	if err := os.WriteFile(path, []byte(`{"theme":"water","frameGap":1.5,"particles":{"count":10}}`), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme != ThemeWater || c.FrameGap != 1.5 || c.Particles.Count != 10 {
		t.Fatalf("unexpected preset: %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing preset")
	}
}

func TestExportUsesCamelCaseKeys(t *testing.T) {
	data, err := Export(Default(ThemeWater))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"frameCount", "wallRadius", "scrollRotateStrength", "particles"} {
		if _, ok := m[key]; !ok {
			t.Errorf("export missing key %q", key)
		}
	}
}

func TestWithSetsNestedField(t *testing.T) {
	c := Default(ThemeGlass)
	out, err := c.With("particles.count", "300")
	if err != nil {
		t.Fatal(err)
	}
	if out.Particles.Count != 300 {
		t.Fatalf("count = %d", out.Particles.Count)
	}
	if c.Particles.Count == 300 {
		t.Fatal("With mutated the original")
	}
	if !ParticlesChanged(c, out) {
		t.Fatal("ParticlesChanged = false")
	}
	out, err = c.With("frameGap", "1.4")
	if err != nil {
		t.Fatal(err)
	}
	if out.FrameGap != 1.4 {
		t.Fatalf("frameGap = %v", out.FrameGap)
	}
	if ParticlesChanged(c, out) {
		t.Fatal("ParticlesChanged = true for a frame edit")
	}
	if _, err := c.With("noSuchField", "1"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
