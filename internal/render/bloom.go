package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/composer"
)

// bloom renders the frame into an offscreen target, draws it, then adds a thresholded blur of
// it on top. The target follows the screen size.
type bloom struct {
	target    rl.RenderTexture2D
	w, h      int32
	hasTarget bool

	shader  rl.Shader
	bind    *binder
	tried   bool
	enabled bool
}

// begin redirects drawing into the offscreen target when s is on. It reports whether it did.
func (b *bloom) begin(s composer.Bloom, w, h int32) bool {
	if s.Strength <= 0 || w <= 0 || h <= 0 || !b.ensureShader() {
		return false
	}
	if !b.hasTarget || b.w != w || b.h != h {
		if b.hasTarget {
			rl.UnloadRenderTexture(b.target)
		}
		b.target = rl.LoadRenderTexture(w, h)
		b.w, b.h = w, h
		b.hasTarget = true
	}
	rl.BeginTextureMode(b.target)
	return true
}

// end composites the target and its bloom onto the screen.
func (b *bloom) end(s composer.Bloom) {
	rl.EndTextureMode()
	// Render textures are stored bottom up.
	src := rl.NewRectangle(0, 0, float32(b.w), -float32(b.h))
	rl.DrawTextureRec(b.target.Texture, src, rl.NewVector2(0, 0), rl.White)

	b.bind.Float("threshold", s.Threshold)
	b.bind.Float("strength", s.Strength)
	b.bind.Float("radius", s.Radius)
	b.bind.Vec2("resolution", mgl32.Vec2{float32(b.w), float32(b.h)})
	rl.BeginShaderMode(b.shader)
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DrawTextureRec(b.target.Texture, src, rl.NewVector2(0, 0), rl.White)
	rl.EndBlendMode()
	rl.EndShaderMode()
}

func (b *bloom) ensureShader() bool {
	if b.tried {
		return b.enabled
	}
	b.tried = true
	b.shader = rl.LoadShaderFromMemory(quadVS, bloomFS)
	if !rl.IsShaderValid(b.shader) {
		return false
	}
	b.bind = newBinder(b.shader)
	b.enabled = true
	return true
}

func (b *bloom) close() {
	if b.hasTarget {
		rl.UnloadRenderTexture(b.target)
		b.hasTarget = false
	}
	if b.enabled {
		rl.UnloadShader(b.shader)
		b.enabled = false
	}
}

const (
	// quadVS matches raylib's batch layout for textured quads.
	quadVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;
uniform mat4 mvp;
out vec2 fragTexCoord;
out vec4 fragColor;
void main() {
  fragTexCoord = vertexTexCoord;
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	bloomFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform vec2 resolution;
uniform float threshold;
uniform float strength;
uniform float radius;
out vec4 finalColor;
vec3 bright(vec2 uv) {
  vec3 c = texture(texture0, uv).rgb;
  float l = max(c.r, max(c.g, c.b));
  return c * smoothstep(threshold, threshold + 0.25, l);
}
void main() {
  vec2 texel = (1.0 + radius * 6.0) / resolution;
  vec3 sum = vec3(0.0);
  float total = 0.0;
  for (int x = -3; x <= 3; x++) {
    for (int y = -3; y <= 3; y++) {
      float w = exp(-float(x * x + y * y) / 8.0);
      sum += bright(fragTexCoord + vec2(x, y) * texel) * w;
      total += w;
    }
  }
  finalColor = vec4(sum / total * strength, 1.0);
}
`
)
