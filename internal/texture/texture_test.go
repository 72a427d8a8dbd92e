package texture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 10, 10, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// pollUntil polls c until e settles or a deadline passes.
func pollUntil(t *testing.T, c *Cache, e *Entry) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !e.Ready() {
		if time.Now().After(deadline) {
			t.Fatalf("entry %q never settled", e.URL)
		}
		c.Poll()
		time.Sleep(time.Millisecond)
	}
}

func TestCacheLoadsAndBumpsVersion(t *testing.T) {
	data := pngBytes(t, 8, 4)
	c := NewCache(FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return data, nil
	}), nil)
	defer c.Close()
	e := c.Get("a.png", "A")
	if e.Ready() || e.Image() != Placeholder() {
		t.Fatal("new entry should show the placeholder until polled")
	}
	if c.Get("a.png", "A") != e {
		t.Fatal("same url should return the same entry")
	}
	pollUntil(t, c, e)
	if e.Failed() || e.Version() != 1 {
		t.Fatalf("failed=%v version=%d", e.Failed(), e.Version())
	}
	if b := e.Image().Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("bounds = %v", b)
	}
	if c.Pending() != 0 {
		t.Fatalf("pending = %d", c.Pending())
	}
}

func TestCacheFailureUsesFallback(t *testing.T) {
	c := NewCache(FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return nil, errors.New("boom")
	}), nil)
	defer c.Close()
	labelled := c.Get("missing.png", "Orbit Minds")
	plain := c.Get("missing2.png", "")
	pollUntil(t, c, labelled)
	pollUntil(t, c, plain)
	if !labelled.Failed() || labelled.Image() == nil {
		t.Fatal("failed fetch should settle on a fallback image")
	}
	if b := labelled.Image().Bounds(); b.Dx() != LabelSize || b.Dy() != LabelSize {
		t.Fatalf("label fallback bounds = %v", b)
	}
	if plain.Image() != Placeholder() {
		t.Fatal("unlabelled failure should use the shared gradient")
	}
	if a := labelled.Image().RGBAAt(LabelSize/2, 5).A; a != 255 {
		t.Fatalf("fallback must be opaque, alpha %d", a)
	}
}

func TestCacheBadDataUsesFallback(t *testing.T) {
	c := NewCache(FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return []byte("not an image"), nil
	}), nil)
	defer c.Close()
	e := c.Get("x.png", "")
	pollUntil(t, c, e)
	if !e.Failed() {
		t.Fatal("undecodable data should fail")
	}
}

func TestEmptyURLSettlesImmediately(t *testing.T) {
	c := NewCache(FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		t.Error("empty url must not be fetched")
		return nil, nil
	}), nil)
	defer c.Close()
	e := c.Get("", "Signal Era")
	if !e.Ready() || !e.Failed() {
		t.Fatal("empty url should settle on the fallback at once")
	}
	if other := c.Get("", "Orbit Minds"); other == e {
		t.Fatal("labelled fallbacks should not share an entry")
	}
	if again := c.Get("", "Signal Era"); again != e {
		t.Fatal("same label should reuse its entry")
	}
}

func TestCloseDiscardsLateResults(t *testing.T) {
	release := make(chan struct{})
	data := pngBytes(t, 2, 2)
	c := NewCache(FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		<-release
		return data, nil
	}), nil)
	e := c.Get("slow.png", "")
	c.Close()
	close(release)
	time.Sleep(20 * time.Millisecond)
	if n := c.Poll(); n != 0 || e.Ready() {
		t.Fatalf("closed cache applied %d results", n)
	}
}

func TestPollNeverBlocks(t *testing.T) {
	c := NewCache(FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}), nil)
	c.Get("stalled.png", "")
	done := make(chan int)
	go func() { done <- c.Poll() }()
	select {
	case n := <-done:
		if n != 0 {
			t.Fatalf("applied %d", n)
		}
	case <-time.After(time.Second):
		t.Fatal("Poll blocked on a stalled fetch")
	}
	c.Close()
}

func TestGradientCorners(t *testing.T) {
	img := Gradient(64, 48, "#1f2741", "#516899")
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0x1f, 0x27, 0x41, 255}) {
		t.Fatalf("top-left = %v", got)
	}
	if got := img.RGBAAt(63, 47); got != (color.RGBA{0x51, 0x68, 0x99, 255}) {
		t.Fatalf("bottom-right = %v", got)
	}
}

func TestNonPositiveSizeIsPixel(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, -1}} {
		img := Gradient(sz[0], sz[1], "#000000", "#ffffff")
		if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 || img.RGBAAt(0, 0) != PixelColor {
			t.Fatalf("size %v gave %v", sz, b)
		}
	}
}

func TestFitDownscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 100))
	out := Fit(img, 200)
	if b := out.Bounds(); b.Dx() != 200 || b.Dy() != 50 {
		t.Fatalf("bounds = %v", b)
	}
	small := Fit(image.NewRGBA(image.Rect(0, 0, 10, 30)), 200)
	if b := small.Bounds(); b.Dx() != 10 || b.Dy() != 30 {
		t.Fatalf("small image resized to %v", b)
	}
}

func TestCardLabelTransparentTop(t *testing.T) {
	img := CardLabel("Rise of Blogging", "1986 - 2000", nil)
	if a := img.RGBAAt(900, 0).A; a != 0 {
		t.Fatalf("top alpha = %d", a)
	}
	if a := img.RGBAAt(900, CardLabelHeight-1).A; a < 240 {
		t.Fatalf("bottom alpha = %d", a)
	}
}

func TestLabelIsTruncatedAndDrawn(t *testing.T) {
	plain := Gradient(LabelSize, LabelSize, labelFrom, labelTo)
	img := LabelFallback("A very long label that keeps going", nil)
	c := LabelSize / 2
	changed := false
	for x := c - 200; x < c+200 && !changed; x++ {
		changed = img.RGBAAt(x, c) != plain.RGBAAt(x, c)
	}
	if !changed {
		t.Fatal("label text not drawn through the center")
	}
}

func TestHTTPFetcher(t *testing.T) {
	data := pngBytes(t, 3, 3)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != defaultUserAgent {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()
	f := NewHTTPFetcher()
	got, err := f.Fetch(context.Background(), srv.URL+"/ok.png")
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("fetch: %v (%d bytes)", err, len(got))
	}
	if _, err := f.Fetch(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Fatal("404 should fail")
	}
}

func TestRouterAndScanDir(t *testing.T) {
	dir := t.TempDir()
	data := pngBytes(t, 2, 2)
	for _, name := range []string{"b.png", "a.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := ScanDir(dir)
	if err != nil || len(files) != 2 || filepath.Base(files[0]) != "a.jpg" {
		t.Fatalf("ScanDir = %v, %v", files, err)
	}
	r := NewRouter(dir)
	got, err := r.Fetch(context.Background(), "b.png")
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("relative fetch: %v", err)
	}
	if _, err := r.Fetch(context.Background(), "file://"+filepath.Join(dir, "b.png")); err != nil {
		t.Fatalf("file url: %v", err)
	}
	if !IsRemote("HTTPS://x") || IsRemote("file:///x") {
		t.Fatal("IsRemote")
	}
}

func TestSpritesFadeOut(t *testing.T) {
	for look := LookSmoke; look <= LookSpark; look++ {
		img := Sprite(look, 32)
		corner := img.RGBAAt(0, 0).A
		if corner > 8 {
			t.Errorf("look %d corner alpha %d", look, corner)
		}
	}
	if Sprite(LookSoft, 32).RGBAAt(16, 16).A < 200 {
		t.Error("soft sprite should be bright at its center")
	}
}

func TestSharedURLKeepsEachLabel(t *testing.T) {
	c := NewCache(FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return nil, errors.New("gone")
	}), nil)
	defer c.Close()
	first := c.Get("shared.png", "Orbit Minds")
	second := c.Get("shared.png", "Quiet Tide")
	if first == second || c.Len() != 2 {
		t.Fatalf("entries = %d, want one per label", c.Len())
	}
	if c.Get("shared.png", "Quiet Tide") != second {
		t.Fatal("same url and label should return the same entry")
	}
	pollUntil(t, c, first)
	pollUntil(t, c, second)
	if first.Label != "Orbit Minds" || second.Label != "Quiet Tide" {
		t.Fatalf("labels = %q, %q", first.Label, second.Label)
	}
	if bytes.Equal(first.Image().Pix, second.Image().Pix) {
		t.Fatal("each panel should caption its own fallback")
	}
}

func TestMaxSizeDownscales(t *testing.T) {
	data := pngBytes(t, 8, 4)
	c := NewCache(FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return data, nil
	}), nil)
	defer c.Close()
	c.SetMaxSize(0)
	c.SetMaxSize(4)
	e := c.Get("big.png", "")
	pollUntil(t, c, e)
	if b := e.Image().Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 4x2", b)
	}
}

func TestGradientThinEdges(t *testing.T) {
	from, to := color.RGBA{0x1f, 0x27, 0x41, 255}, color.RGBA{0x51, 0x68, 0x99, 255}
	if got := Gradient(1, 1, "#1f2741", "#516899").RGBAAt(0, 0); got != from {
		t.Fatalf("1x1 = %v, want the start color", got)
	}
	col := Gradient(1, 16, "#1f2741", "#516899")
	if col.RGBAAt(0, 0) != from || col.RGBAAt(0, 15) != to {
		t.Fatalf("1x16 ends = %v %v", col.RGBAAt(0, 0), col.RGBAAt(0, 15))
	}
}
