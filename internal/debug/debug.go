package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

var title = cases.Title(language.English)

// Status is the scene state shown by the stats overlay.
type Status struct {
	Theme   string
	Waiting string
	Active  int
	Hover   int
	Pending int
	Layers  int
	Lines   int
	Points  int
}

// StatusLines formats s for the stats overlay. Index -1 prints as "-".
func StatusLines(s Status) []string {
	idx := func(i int) string {
		if i < 0 {
			return "-"
		}
		return fmt.Sprint(i)
	}
	out := []string{
		"Theme: " + title.String(s.Theme),
		fmt.Sprintf("Active: %s  Hover: %s", idx(s.Active), idx(s.Hover)),
		fmt.Sprintf("Layers: %d  Lines: %d  Points: %d", s.Layers, s.Lines, s.Points),
	}
	if s.Waiting != "" {
		out = append(out, "Switching to: "+title.String(s.Waiting))
	}
	if s.Pending > 0 {
		out = append(out, fmt.Sprintf("Loading: %d", s.Pending))
	}
	return out
}

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	status       func() Status
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStats    []string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetStatus sets the source of the stats overlay. It is called on the draw thread.
func (d *Debug) SetStatus(status func() Status) {
	d.status = status
}

// Toggle flips every overlay on or off together.
func (d *Debug) Toggle() {
	on := !(d.ShowFPS || d.ShowStats)
	d.ShowFPS, d.ShowStats = on, on && d.status != nil
}

// Draw renders any enabled debug overlays, right-aligned under each other at the top-right.
// Call after the scene in the draw loop. Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") || (d.ShowStats && d.lastStats == nil) {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(fpsPadding)
	line := func(text string) {
		if text == "" {
			return
		}
		w := rl.MeasureText(text, fpsFontSize)
		rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
		y += fpsLineHeight
	}

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		line(d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		line(d.lastMemText)
	}
	if d.ShowStats && d.status != nil {
		if update {
			d.lastStats = StatusLines(d.status())
		}
		for _, s := range d.lastStats {
			line(s)
		}
	}
}
