package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// WheelStep is the scroll delta one wheel notch produces, in the units browsers report.
const WheelStep = 100

// Window configures the window opened by Run.
type Window struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	FPS        int
	// OnClose runs after the loop ends, while the GL context still exists.
	OnClose func()
}

// Input receives the pointer, wheel and size events polled each frame. scene.Context
// implements it.
type Input interface {
	PointerMove(x, y float32)
	PointerLeave()
	Wheel(deltaY float32)
	Resize(w, h int)
}

// ToNDC converts a pixel position in a w×h view to normalized device coordinates: x right
// and y up, both in [-1, 1].
func ToNDC(px, py float32, w, h int) (x, y float32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return px/float32(w)*2 - 1, -(py/float32(h)*2 - 1)
}

// poller turns raylib's per-frame input state into Input events.
type poller struct {
	in      Input
	w, h    int
	onView  bool
	started bool
}

func (p *poller) poll() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if !p.started || w != p.w || h != p.h {
		p.w, p.h, p.started = w, h, true
		p.in.Resize(w, h)
	}
	if rl.IsCursorOnScreen() {
		m := rl.GetMousePosition()
		x, y := ToNDC(m.X, m.Y, w, h)
		p.in.PointerMove(x, y)
		p.onView = true
	} else if p.onView {
		p.in.PointerLeave()
		p.onView = false
	}
	// Wheel up turns the ring the way a browser's negative deltaY does.
	if move := rl.GetMouseWheelMove(); move != 0 {
		p.in.Wheel(-move * WheelStep)
	}
}

// Run opens the window and runs the single cooperative loop. Each frame it forwards input to
// in, calls update with the frame time, then clears the screen and calls draw. The loop ends
// when the window is closed; ESC is left to update.
func Run(win Window, in Input, update func(dt float32), draw func()) {
	if win.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	}
	w, h := win.Width, win.Height
	if win.Fullscreen {
		// Zero size opens at the monitor's resolution.
		w, h = 0, 0
	}
	title := win.Title
	if title == "" {
		title = "museum"
	}
	rl.InitWindow(int32(w), int32(h), title)
	defer func() {
		if win.OnClose != nil {
			win.OnClose()
		}
		rl.CloseWindow()
	}()

	rl.SetExitKey(rl.KeyNull)
	fps := win.FPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))

	p := &poller{in: in}
	for !rl.WindowShouldClose() {
		p.poll()
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
