package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jayesh2401/museum/internal/engineconfig"
)

func TestLoadSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "# comment\n\nMUSEUM_TEST_A=plain\nMUSEUM_TEST_B = \"quoted value\"\nexport MUSEUM_TEST_C='x=y'\nnot a pair\n=empty\nMUSEUM_TEST_D=\"mismatched'\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"MUSEUM_TEST_A", "MUSEUM_TEST_B", "MUSEUM_TEST_C", "MUSEUM_TEST_D"} {
		t.Setenv(k, "")
	}
	keys, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(keys, ","); got != "MUSEUM_TEST_A,MUSEUM_TEST_B,MUSEUM_TEST_C,MUSEUM_TEST_D" {
		t.Fatalf("keys = %s", got)
	}
	want := map[string]string{
		"MUSEUM_TEST_A": "plain",
		"MUSEUM_TEST_B": "quoted value",
		"MUSEUM_TEST_C": "x=y",
		"MUSEUM_TEST_D": "\"mismatched'",
	}
	for k, v := range want {
		if got := os.Getenv(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestLoadMissingAndUnreadable(t *testing.T) {
	keys, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err != nil || keys != nil {
		t.Fatalf("a missing file is not an error: %v %v", keys, err)
	}
	// A directory opens but cannot be scanned.
	_, err = Load(t.TempDir())
	if err == nil || !strings.HasPrefix(err.Error(), "env: ") {
		t.Fatalf("err = %v", err)
	}
}

func TestApplyOverridesPrefs(t *testing.T) {
	t.Setenv(VarTheme, " portal ")
	t.Setenv(VarImageDir, "photos")
	t.Setenv(VarShowFPS, "true")
	t.Setenv(VarShowStats, "maybe")
	t.Setenv(VarPreset, "")
	t.Setenv(VarAssetRoot, "")
	t.Setenv(VarMaxTex, "1024")

	p := engineconfig.Default()
	p.PresetPath = "keep.yaml"
	p.ShowStats = true
	applied := Apply(&p)

	if p.Theme != "portal" || p.ImageDir != "photos" || !p.ShowFPS || p.MaxTextureSize != 1024 {
		t.Fatalf("prefs = %+v", p)
	}
	if p.PresetPath != "keep.yaml" {
		t.Fatal("an empty variable must not clear the preset")
	}
	if !p.ShowStats {
		t.Fatal("an unparsable bool must be ignored")
	}
	if got := strings.Join(applied, ","); got != "MUSEUM_THEME,MUSEUM_IMAGE_DIR,MUSEUM_SHOW_FPS,MUSEUM_MAX_TEXTURE" {
		t.Fatalf("applied = %s", got)
	}
}
