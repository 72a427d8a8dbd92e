package render

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jayesh2401/museum/internal/composer"
	"github.com/Jayesh2401/museum/internal/material"
	"github.com/Jayesh2401/museum/internal/texture"
)

type setCall struct {
	loc  int32
	v    []float32
	kind rl.ShaderUniformDataType
}

func fakeBinder(known map[string]int32) (*binder, *[]setCall, *int) {
	var calls []setCall
	lookups := 0
	b := &binder{
		locs: make(map[string]int32),
		lookup: func(name string) int32 {
			lookups++
			if l, ok := known[name]; ok {
				return l
			}
			return -1
		},
		set: func(loc int32, v []float32, kind rl.ShaderUniformDataType) {
			calls = append(calls, setCall{loc, append([]float32(nil), v...), kind})
		},
	}
	return b, &calls, &lookups
}

func TestBinderCachesLocationsAndSkipsUnknown(t *testing.T) {
	b, calls, lookups := fakeBinder(map[string]int32{"opacity": 3, "repeat": 4, "tint": 5})
	tex := texture.Static(texture.Pixel())
	u := material.NewImage(tex)
	u.Opacity = 0.5

	u.Bind(b)
	u.Bind(b)
	if *lookups != 4 {
		t.Fatalf("lookups = %d, want one per name", *lookups)
	}
	// offset is not declared by the program and is skipped.
	if len(*calls) != 6 {
		t.Fatalf("set %d uniforms, want 6", len(*calls))
	}
	if b.texture != tex {
		t.Fatal("texture0 should be recorded for the material")
	}
	var sawOpacity bool
	for _, c := range *calls {
		if c.loc == 3 {
			sawOpacity = true
			if c.kind != rl.ShaderUniformFloat || c.v[0] != 0.5 {
				t.Fatalf("opacity call = %+v", c)
			}
		}
		if c.loc == 4 && (c.kind != rl.ShaderUniformVec2 || len(c.v) != 2) {
			t.Fatalf("repeat call = %+v", c)
		}
	}
	if !sawOpacity {
		t.Fatal("opacity not set")
	}
	b.reset()
	if b.texture != nil {
		t.Fatal("reset should clear the texture")
	}
}

func TestLineColorCapture(t *testing.T) {
	var lc lineColor
	u := &material.OutlineUniforms{Color: material.Color{R: 1, G: 0.5}, Opacity: 0.25}
	u.Bind(&lc)
	if lc.color != (mgl32.Vec4{1, 0.5, 0, 0.25}) {
		t.Fatalf("line color = %v", lc.color)
	}
	c := vec4Color(lc.color)
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 64 {
		t.Fatalf("rgba = %+v", c)
	}
}

func TestToMatrixKeepsColumns(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(4, 5, 6))
	r := toMatrix(m)
	if r.M12 != 1 || r.M13 != 2 || r.M14 != 3 {
		t.Fatalf("translation = %v %v %v", r.M12, r.M13, r.M14)
	}
	if r.M0 != 4 || r.M5 != 5 || r.M10 != 6 || r.M15 != 1 {
		t.Fatalf("diagonal = %v %v %v %v", r.M0, r.M5, r.M10, r.M15)
	}
}

func TestBackToFront(t *testing.T) {
	at := func(z float32) *composer.Panel {
		return &composer.Panel{World: mgl32.Translate3D(0, 0, z)}
	}
	near, mid, far := at(3), at(-2), at(-9)
	got := backToFront([]*composer.Panel{near, far, mid}, mgl32.Vec3{0, 0, 5})
	if got[0] != far || got[1] != mid || got[2] != near {
		t.Fatal("panels should run from farthest to nearest")
	}
}

func TestBackendBeforeWindowFreesNothing(t *testing.T) {
	b := New(nil)
	// Nothing was uploaded, so releases are no-ops and need no GL context.
	b.ReleaseMesh(nil)
	b.ReleaseTexture(texture.Static(texture.Pixel()))
	b.Draw(nil)
	if b.Stats() != (Stats{}) {
		t.Fatalf("stats = %+v", b.Stats())
	}
}
