package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/engineconfig"
)

func TestSceneConfig(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	p := engineconfig.Default()
	p.Theme = "portal"
	p.ImageDir = dir
	cfg, err := sceneConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != config.ThemePortal || len(cfg.Images) != 2 || filepath.Base(cfg.Images[0]) != "a.jpg" {
		t.Fatalf("theme = %s, images = %v", cfg.Theme, cfg.Images)
	}

	preset := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(preset, []byte("theme: glass\nframeGap: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = sceneConfig(engineconfig.Prefs{PresetPath: preset})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != config.ThemeGlass || cfg.FrameGap != 1.5 {
		t.Fatalf("preset theme = %s, gap = %v", cfg.Theme, cfg.FrameGap)
	}

	if _, err := sceneConfig(engineconfig.Prefs{Theme: "nebula"}); err == nil {
		t.Fatal("unknown theme should fail")
	}
}
