package config

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Load reads a scene preset from path. YAML and JSON presets are both accepted (JSON is valid
// YAML). Fields the preset omits keep the defaults of the preset's theme. The result is clamped.
func Load(path string) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON preset over the defaults of its theme.
func Parse(data []byte) (SceneConfig, error) {
	var head struct {
		Theme Theme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return SceneConfig{}, fmt.Errorf("config: %w", err)
	}
	c := Default(head.Theme)
	if err := yaml.Unmarshal(data, &c); err != nil {
		return SceneConfig{}, fmt.Errorf("config: %w", err)
	}
	return c.Clamp(), nil
}

// Export returns the JSON snapshot of c handed to the caller for display or copying.
func Export(c SceneConfig) ([]byte, error) {
	return json.MarshalIndent(c, "", "\t")
}

// ExportYAML returns c as a YAML preset that Load accepts.
func ExportYAML(c SceneConfig) ([]byte, error) {
	return yaml.Marshal(c)
}

// With returns a copy of c whose field tagged key (e.g. "frameGap" or "particles.count") is
// set to the YAML scalar value. The result is clamped.
func (c SceneConfig) With(key, value string) (SceneConfig, error) {
	out := c.Clone()
	field, ok := fieldByTag(reflect.ValueOf(&out).Elem(), key)
	if !ok {
		return c, fmt.Errorf("config: unknown field %q", key)
	}
	ptr := reflect.New(field.Type())
	if err := yaml.Unmarshal([]byte(value), ptr.Interface()); err != nil {
		return c, fmt.Errorf("config: %s: %w", key, err)
	}
	field.Set(ptr.Elem())
	return out.Clamp(), nil
}

// fieldByTag resolves a dotted json tag path to a settable field.
func fieldByTag(v reflect.Value, path string) (reflect.Value, bool) {
	head, rest := path, ""
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			head, rest = path[:i], path[i+1:]
			break
		}
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if jsonName(t.Field(i).Tag.Get("json")) != head {
			continue
		}
		f := v.Field(i)
		if rest == "" {
			return f, true
		}
		if f.Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		return fieldByTag(f, rest)
	}
	return reflect.Value{}, false
}

func jsonName(tag string) string {
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}

// ParticlesChanged reports whether the particle parameters differ between a and b.
func ParticlesChanged(a, b SceneConfig) bool {
	return a.Particles != b.Particles
}
