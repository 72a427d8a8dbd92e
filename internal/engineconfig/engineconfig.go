package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// PrefsPath is the path to the viewer preferences file, relative to the process working directory.
const PrefsPath = "config/museum.json"

// Prefs holds viewer-only preferences (window, overlays, start theme, where images come from).
// Persisted across runs. Scene parameters live in presets and are handled by package config.
type Prefs struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Fullscreen   bool   `json:"fullscreen"`
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	ShowStats    bool   `json:"show_stats"`
	Theme        string `json:"theme,omitempty"`
	PresetPath   string `json:"preset,omitempty"`
	ImageDir     string `json:"image_dir,omitempty"`
	AssetRoot    string `json:"asset_root,omitempty"`
	// MaxTextureSize caps the longer side of decoded images in pixels; 0 keeps full size.
	MaxTextureSize int `json:"max_texture_px,omitempty"`
	// DepTimeoutSec bounds each optional asset fetch; 0 uses the resolver default.
	DepTimeoutSec int `json:"dep_timeout_sec,omitempty"`
}

// DepTimeout is DepTimeoutSec as a duration.
func (p Prefs) DepTimeout() time.Duration {
	return time.Duration(p.DepTimeoutSec) * time.Second
}

// Default returns default preferences (windowed 1280×720, overlays off). An empty Theme means
// the preset's theme, or plain without a preset.
func Default() Prefs {
	return Prefs{
		Width:  1280,
		Height: 720,
	}
}

// Load reads preferences from PrefsPath. A missing file gives Default() and no error; an
// unreadable or invalid one gives Default() and the error. No file is created.
func Load() (Prefs, error) {
	return LoadFile(PrefsPath)
}

// LoadFile is Load for an explicit path. Fields the file omits keep their defaults.
func LoadFile(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("prefs: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("prefs: %s: %w", path, err)
	}
	if p.MaxTextureSize < 0 {
		p.MaxTextureSize = 0
	}
	if p.DepTimeoutSec < 0 {
		p.DepTimeoutSec = 0
	}
	if p.Width <= 0 || p.Height <= 0 {
		d := Default()
		p.Width, p.Height = d.Width, d.Height
	}
	return p, nil
}

// Save writes preferences to PrefsPath, creating the config directory if needed.
func Save(p Prefs) error {
	return SaveFile(PrefsPath, p)
}

// SaveFile is Save for an explicit path.
func SaveFile(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
