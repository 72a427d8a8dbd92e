package deps

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/texture"
)

// fakeFetcher serves payloads by source and records the order of attempts.
type fakeFetcher struct {
	mu    sync.Mutex
	data  map[string][]byte
	tried []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tried = append(f.tried, src)
	if d, ok := f.data[src]; ok {
		return d, nil
	}
	return nil, errors.New("missing " + src)
}

func TestResolveTriesInOrder(t *testing.T) {
	f := &fakeFetcher{data: map[string][]byte{"b": []byte("B"), "c": []byte("C")}}
	r := NewResolver(f, nil)
	got, err := r.Resolve(context.Background(), Dependency{Name: "x", Candidates: []string{"a", "b", "c"}})
	if err != nil {
		t.Fatal(err)
	}
	if got.Source != "b" || string(got.Data) != "B" {
		t.Fatalf("got %+v", got)
	}
	if strings.Join(f.tried, ",") != "a,b" {
		t.Fatalf("tried %v", f.tried)
	}
}

func TestResolveAllFailReturnsLast(t *testing.T) {
	var logged []string
	r := NewResolver(&fakeFetcher{}, func(format string, args ...any) { logged = append(logged, format) })
	_, err := r.Resolve(context.Background(), Dependency{Name: "font", Candidates: []string{"a", "b"}})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v", err)
	}
	var ue *UnavailableError
	if !errors.As(err, &ue) || ue.Tried != 2 || !strings.Contains(ue.Last.Error(), "missing b") {
		t.Fatalf("unavailable error = %+v", ue)
	}
	if len(logged) != 2 {
		t.Fatalf("logged %d failures", len(logged))
	}
}

func TestResolveNoCandidates(t *testing.T) {
	_, err := NewResolver(&fakeFetcher{}, nil).Resolve(context.Background(), Dependency{Name: "none"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v", err)
	}
}

func TestResolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &fakeFetcher{data: map[string][]byte{"a": nil}}
	_, err := NewResolver(f, nil).Resolve(ctx, Dependency{Name: "x", Candidates: []string{"a"}})
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if len(f.tried) != 0 {
		t.Fatal("canceled resolve should not fetch")
	}
}

func TestResolveAllKeepsOrder(t *testing.T) {
	f := &fakeFetcher{data: map[string][]byte{"a1": []byte("1"), "b2": []byte("2")}}
	r := NewResolver(f, nil)
	got, err := r.ResolveAll(context.Background(), []Dependency{
		{Name: "a", Candidates: []string{"a0", "a1"}},
		{Name: "b", Candidates: []string{"b2"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Name != "a" || string(got[0].Data) != "1" || got[1].Source != "b2" {
		t.Fatalf("got %+v", got)
	}
	if _, err := r.ResolveAll(context.Background(), []Dependency{{Name: "z", Candidates: []string{"q"}}}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadFont(t *testing.T) {
	tf, err := LoadFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := tf(72)
	if face == nil {
		t.Fatal("nil face")
	}
	if tf(72) != face {
		t.Fatal("faces should be reused per size")
	}
	if a := face.Metrics().Ascent.Ceil(); a < 50 || a > 80 {
		t.Fatalf("ascent %d for a 72px face", a)
	}
	img := texture.LabelFallback("Go", tf)
	if img.Bounds().Dx() != texture.LabelSize {
		t.Fatal("label fallback size")
	}
	if _, err := LoadFont([]byte("nope")); err == nil {
		t.Fatal("garbage should not parse")
	}
}

func TestLabelFontCandidates(t *testing.T) {
	d := LabelFont()
	if d.Name != LabelFontName || len(d.Candidates) < 3 {
		t.Fatalf("%+v", d)
	}
	if texture.IsRemote(d.Candidates[0]) || !texture.IsRemote(d.Candidates[len(d.Candidates)-1]) {
		t.Fatal("local candidates should come before remote ones")
	}
}

// stallFetcher blocks every fetch until release is closed or the attempt is cancelled.
type stallFetcher struct {
	release   chan struct{}
	data      []byte
	cancelled chan string
}

func (f *stallFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	select {
	case <-f.release:
		return f.data, nil
	case <-ctx.Done():
		f.cancelled <- src
		return nil, ctx.Err()
	}
}

func TestStartReturnsBeforeFetchesSettle(t *testing.T) {
	f := &stallFetcher{release: make(chan struct{}), data: goregular.TTF, cancelled: make(chan string, 8)}
	r := NewResolver(f, nil)
	p := r.Start(context.Background(), ForTheme(config.ThemeImmersive))
	if p.Ready() {
		t.Fatal("a stalled resolution should not be ready")
	}
	close(f.release)
	res, err := p.Result()
	if err != nil {
		t.Fatal(err)
	}
	if !p.Ready() || len(res) != 1 || res[0].Name != LabelFontName {
		t.Fatalf("res = %+v", res)
	}
	if _, err := LoadFont(res[0].Data); err != nil {
		t.Fatal(err)
	}
}

func TestCancelStopsPending(t *testing.T) {
	f := &stallFetcher{release: make(chan struct{}), cancelled: make(chan string, 8)}
	r := NewResolver(f, nil)
	p := r.Start(context.Background(), []Dependency{{Name: "x", Candidates: []string{"a", "b"}}})
	p.Cancel()
	if _, err := p.Result(); !errors.Is(err, ErrUnavailable) || !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	select {
	case src := <-f.cancelled:
		if src != "a" {
			t.Fatalf("cancelled %q", src)
		}
	case <-time.After(time.Second):
		t.Fatal("the in-flight fetch was not cancelled")
	}
}

func TestForTheme(t *testing.T) {
	for _, th := range config.Themes {
		ds := ForTheme(th)
		if want := th == config.ThemeImmersive; (len(ds) > 0) != want {
			t.Errorf("%s: %d dependencies", th, len(ds))
		}
	}
}

func TestSetTimeoutBoundsEachCandidate(t *testing.T) {
	f := &stallFetcher{release: make(chan struct{}), cancelled: make(chan string, 8)}
	r := NewResolver(f, nil)
	r.SetTimeout(20 * time.Millisecond)
	_, err := r.Resolve(context.Background(), Dependency{Name: "x", Candidates: []string{"a", "b"}})
	var ue *UnavailableError
	if !errors.As(err, &ue) || ue.Tried != 2 || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
}
