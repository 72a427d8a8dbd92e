package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/Jayesh2401/museum/internal/engineconfig"
)

// Environment variables that override preferences.
const (
	VarTheme     = "MUSEUM_THEME"
	VarPreset    = "MUSEUM_PRESET"
	VarImageDir  = "MUSEUM_IMAGE_DIR"
	VarAssetRoot = "MUSEUM_ASSET_ROOT"
	VarShowFPS   = "MUSEUM_SHOW_FPS"
	VarShowStats = "MUSEUM_SHOW_STATS"
	VarMaxTex    = "MUSEUM_MAX_TEXTURE"
)

// Apply overrides p with any MUSEUM_* variables that are set and returns the names it applied.
// Values that do not parse are ignored.
func Apply(p *engineconfig.Prefs) []string {
	var applied []string
	lookup := func(key string) (string, bool) {
		v, ok := os.LookupEnv(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
			applied = append(applied, key)
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
				applied = append(applied, key)
			}
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				*dst = n
				applied = append(applied, key)
			}
		}
	}
	str(VarTheme, &p.Theme)
	str(VarPreset, &p.PresetPath)
	str(VarImageDir, &p.ImageDir)
	str(VarAssetRoot, &p.AssetRoot)
	boolean(VarShowFPS, &p.ShowFPS)
	boolean(VarShowStats, &p.ShowStats)
	integer(VarMaxTex, &p.MaxTextureSize)
	return applied
}
