package anim

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func nearly(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

// fakeStage records the order of the driver's calls.
type fakeStage struct {
	base  []float32
	calls []string
	last  *Frame
}

func (s *fakeStage) BaseAngles() []float32 { return s.base }
func (s *fakeStage) Hover(f *Frame)        { s.calls = append(s.calls, "hover") }
func (s *fakeStage) Stage(f *Frame) {
	s.calls = append(s.calls, "stage")
	if len(f.Distances) != len(s.base) {
		panic("distances missing at stage time")
	}
}
func (s *fakeStage) Advance(f *Frame) { s.calls = append(s.calls, "advance"); s.last = f }

func ring(n int, gap float32) []float32 {
	step := 2 * math32.Pi / float32(n) * gap
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) * step
	}
	return out
}

func TestNormalizeAngleRange(t *testing.T) {
	for _, a := range []float32{0, 1, -1, math32.Pi, -math32.Pi, 3 * math32.Pi, -7.5, 100, -100} {
		n := NormalizeAngle(a)
		if n <= -math32.Pi || n > math32.Pi {
			t.Fatalf("NormalizeAngle(%v) = %v outside (-π, π]", a, n)
		}
		if d := math32.Abs(math32.Sin(n) - math32.Sin(a)); d > 1e-4 {
			t.Fatalf("NormalizeAngle(%v) = %v is not the same direction", a, n)
		}
	}
	if n := NormalizeAngle(-math32.Pi); n != math32.Pi {
		t.Fatalf("-π normalized to %v", n)
	}
}

func TestNormalizeAnglePeriodic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a := (rng.Float32() - 0.5) * 40
		x, y := NormalizeAngle(a), NormalizeAngle(a+2*math32.Pi)
		d := math32.Abs(x - y)
		if d > 1e-4 && math32.Abs(d-2*math32.Pi) > 1e-4 {
			t.Fatalf("a=%v: %v vs %v", a, x, y)
		}
	}
}

func TestRotationConvergesWithoutOvershoot(t *testing.T) {
	s := RotationStrategy{}
	nav := Nav{Rotation: 1.3, TargetRotation: -2.2}
	prev := math32.Abs(nav.Rotation - nav.TargetRotation)
	for i := 0; i < 300; i++ {
		s.Step(&nav)
		gap := math32.Abs(nav.Rotation - nav.TargetRotation)
		if gap > prev {
			t.Fatalf("tick %d: gap grew %v -> %v", i, prev, gap)
		}
		if nav.Rotation < nav.TargetRotation {
			t.Fatalf("tick %d: overshoot to %v", i, nav.Rotation)
		}
		prev = gap
	}
}

func TestJumpToIndexThree(t *testing.T) {
	stage := &fakeStage{base: ring(9, 1.28)}
	d := NewDriver(RotationStrategy{}, 0)
	d.JumpTo(3, stage)
	// Three angular steps of (2π/9)·1.28, about -2.681.
	want := -3 * (2 * math32.Pi / 9) * 1.28
	if !nearly(d.Nav().TargetRotation, want, 1e-4) {
		t.Fatalf("target = %v", d.Nav().TargetRotation)
	}
	for i := 0; i < 200; i++ {
		d.Tick(1.0/60, stage)
	}
	if !nearly(d.Nav().Rotation, want, 1e-3) {
		t.Fatalf("rotation = %v", d.Nav().Rotation)
	}
	if d.Active() != 3 {
		t.Fatalf("active = %d", d.Active())
	}
	d.JumpTo(42, stage)
	if !nearly(d.Nav().TargetRotation, -2.684, 1e-3) {
		t.Fatal("out of range jump should be ignored")
	}
}

func TestActiveIndexOffsetInvariant(t *testing.T) {
	base := ring(9, 1.28)
	rng := rand.New(rand.NewSource(2))
	for k := 0; k < 100; k++ {
		rot := (rng.Float32() - 0.5) * 20
		off := (rng.Float32() - 0.5) * 10
		nav := Nav{Rotation: rot}
		a := make([]float32, len(base))
		b := make([]float32, len(base))
		for i, ang := range base {
			a[i] = RotationStrategy{}.Distance(i, len(base), ang, nav)
			b[i] = RotationStrategy{Reference: off}.Distance(i, len(base), ang+off, nav)
		}
		if ActiveIndex(a) != ActiveIndex(b) {
			t.Fatalf("rotation %v offset %v: %d vs %d", rot, off, ActiveIndex(a), ActiveIndex(b))
		}
	}
	if ActiveIndex(nil) != -1 {
		t.Fatal("empty ring")
	}
}

func TestProgressStrategy(t *testing.T) {
	s := ProgressStrategy{Spacing: 0.56}
	stage := &fakeStage{base: make([]float32, 10)}
	d := NewDriver(s, 0)
	d.JumpTo(4, stage)
	if !nearly(d.Nav().TargetProgress, 4.0/9, 1e-6) {
		t.Fatalf("target progress %v", d.Nav().TargetProgress)
	}
	for i := 0; i < 300; i++ {
		d.Tick(1.0/60, stage)
	}
	if d.Active() != 4 {
		t.Fatalf("active = %d", d.Active())
	}
	if dist := s.Distance(4, 10, 0, d.Nav()); !nearly(dist, 0, 1e-3) {
		t.Fatalf("distance of the jumped-to panel %v", dist)
	}
	d.Wheel(1e6, 0.0009)
	if d.Nav().TargetProgress != 1 {
		t.Fatalf("wheel should clamp progress, got %v", d.Nav().TargetProgress)
	}
	d.Wheel(-1e6, 0.0009)
	if d.Nav().TargetProgress != 0 {
		t.Fatalf("wheel should clamp progress, got %v", d.Nav().TargetProgress)
	}
	var nav Nav
	s.Jump(0, 1, 0, &nav)
	if nav.TargetProgress != 0 {
		t.Fatal("single panel jump")
	}
}

func TestTickOrderAndActiveCallback(t *testing.T) {
	stage := &fakeStage{base: ring(9, 1.28)}
	d := NewDriver(RotationStrategy{}, 0)
	var reported []int
	d.OnActive = func(i int) { reported = append(reported, i) }
	d.Tick(0.5, stage)
	d.Tick(0.25, stage)
	if got := strings.Join(stage.calls, ","); got != "hover,stage,advance,hover,stage,advance" {
		t.Fatalf("calls %s", got)
	}
	if len(reported) != 1 || reported[0] != 0 {
		t.Fatalf("reported %v", reported)
	}
	if !nearly(d.Time(), 0.75, 1e-6) || !nearly(stage.last.Time, 0.75, 1e-6) {
		t.Fatalf("time %v", d.Time())
	}
	d.Tick(-1, stage)
	if !nearly(d.Time(), 0.75, 1e-6) {
		t.Fatal("negative dt moved the clock")
	}
}

func TestWheelAndShift(t *testing.T) {
	d := NewDriver(RotationStrategy{}, -0.122)
	d.Wheel(100, 0.0018)
	if !nearly(d.Nav().TargetRotation, -0.122+0.18, 1e-5) {
		t.Fatalf("target %v", d.Nav().TargetRotation)
	}
	d.ShiftRotation(0.5)
	if !nearly(d.Nav().TargetRotation, 0.558, 1e-5) || !nearly(d.Nav().Rotation, -0.122, 1e-6) {
		t.Fatalf("nav %+v", d.Nav())
	}
}

func TestPointerSmoothing(t *testing.T) {
	stage := &fakeStage{}
	d := NewDriver(RotationStrategy{}, 0)
	d.PointTo(mgl32.Vec2{1, -1})
	d.Tick(0.016, stage)
	if p := d.Pointer(); !nearly(p[0], 0.1, 1e-6) || !nearly(p[1], -0.1, 1e-6) {
		t.Fatalf("pointer %v", p)
	}
	d.ReleasePointer()
	for i := 0; i < 300; i++ {
		d.Tick(0.016, stage)
	}
	if p := d.Pointer(); p.Len() > 1e-4 {
		t.Fatalf("pointer did not recenter: %v", p)
	}
}

func TestFocusStaging(t *testing.T) {
	if Focus(0) != 1 || Focus(-1.6) != 0 || Visibility(0.3) != 1 || Visibility(2.5) != 0 {
		t.Fatal("focus edges")
	}
	if !nearly(FocusScale(1), 1.2, 1e-6) || !nearly(FocusScale(0), 0.86, 1e-6) {
		t.Fatal("scale")
	}
	if !nearly(FocusOpacity(0), 0.08, 1e-6) || !nearly(FocusOpacity(1), 1, 1e-6) {
		t.Fatal("opacity")
	}
	if Focus(0.7) != Focus(-0.7) {
		t.Fatal("focus should be symmetric")
	}
}
