package terminal

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"ebiten-reel/canvas"
	"ebiten-reel/config"
	"ebiten-reel/engine"
	"ebiten-reel/spawners"
)

var red = color.RGBA{0xff, 0, 0, 0xff}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSurfacePixelSize(t *testing.T) {
	s := NewSurface(8, 16)
	s.Resize(10, 4)

	w, h := s.PixelSize()
	if w != 80 || h != 64 {
		t.Errorf("Expected 80x64, got %vx%v", w, h)
	}
}

func TestFillRectUsesHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	s := NewSurface(8, 16)
	s.Resize(4, 2)

	// Top half of the first cell only
	s.FillRect(0, 0, 8, 8, red)
	s.Flush(screen)

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != upperHalf {
		t.Fatalf("Expected upper half block, got %q", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0xff, 0, 0) {
		t.Errorf("Expected red foreground, got %v", fg)
	}

	mainc, _, _, _ = screen.GetContent(1, 0)
	if mainc != ' ' {
		t.Errorf("Expected empty neighbour cell, got %q", mainc)
	}
}

func TestTranslucentFillBlendsOverExisting(t *testing.T) {
	screen := newSimScreen(t, 1, 1)
	s := NewSurface(8, 16)
	s.Resize(1, 1)

	s.FillRect(0, 0, 8, 16, color.RGBA{0xff, 0xff, 0xff, 0xff})
	s.FillRect(0, 0, 8, 16, canvas.MustHexColor("#ff000080"))
	s.Flush(screen)

	_, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	// 128 red plus white scaled by 127/255
	want := tcell.NewRGBColor(0xff, 0x7f, 0x7f)
	if fg != want || bg != want {
		t.Errorf("Expected blended %v over both halves, got fg %v bg %v", want, fg, bg)
	}
}

func TestBlendSaturatesStraightAlphaInput(t *testing.T) {
	screen := newSimScreen(t, 1, 1)
	s := NewSurface(8, 16)
	s.Resize(1, 1)

	s.FillRect(0, 0, 8, 16, color.RGBA{0xff, 0xff, 0xff, 0xff})
	s.FillRect(0, 0, 8, 16, color.RGBA{0xff, 0, 0, 0x80})
	s.Flush(screen)

	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0xff, 0x7f, 0x7f) {
		t.Errorf("Expected red channel to saturate at 0xff, got %v", fg)
	}
}

func TestSmallCircleStillVisible(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	s := NewSurface(8, 16)
	s.Resize(4, 2)

	// Far smaller than one sample and off-centre
	s.FillCircle(17, 20, 2, red)
	s.Flush(screen)

	mainc, _, _, _ := screen.GetContent(2, 1)
	if mainc != upperHalf {
		t.Errorf("Expected the sample under the centre lit, got %q", mainc)
	}
}

func TestClearResetsSamples(t *testing.T) {
	screen := newSimScreen(t, 2, 1)
	s := NewSurface(8, 16)
	s.Resize(2, 1)

	s.FillPolygon([]canvas.Point{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 16, Y: 16}, {X: 0, Y: 16}}, red)
	s.Clear()
	s.Flush(screen)

	for col := 0; col < 2; col++ {
		if mainc, _, _, _ := screen.GetContent(col, 0); mainc != ' ' {
			t.Errorf("Expected cleared cell %d, got %q", col, mainc)
		}
	}
}

func TestDrawOutsideGridIsIgnored(t *testing.T) {
	s := NewSurface(8, 16)
	s.Resize(2, 2)

	s.FillRect(-100, -100, 10, 10, red)
	s.FillCircle(1000, 1000, 5, red)
	s.StrokePolygon([]canvas.Point{{X: -50, Y: -50}, {X: 500, Y: 500}}, 1, red)
}

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsQuitKey(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func newHostEngine(surface *Surface) *engine.Engine {
	cfg := config.DefaultSimulation()
	return engine.New(cfg, nil, surface, spawners.NewDeterministicRNG("terminal", "engine"), zap.NewNop())
}

func TestRunStopsOnContextAndDisposes(t *testing.T) {
	screen := newSimScreen(t, 60, 10)
	surface := NewSurface(8, 16)
	eng := newHostEngine(surface)
	host := NewHost(screen, eng, surface, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	if err := host.Run(ctx); err != nil {
		t.Fatalf("Expected clean exit, got %v", err)
	}
	if eng.Stats().Frames == 0 {
		t.Error("Expected frames to be ticked")
	}
	if !eng.Disposed() {
		t.Error("Expected engine disposed after Run")
	}
	if w, h := eng.Size(); w != 480 || h != 160 {
		t.Errorf("Expected engine sized to the screen 480x160, got %vx%v", w, h)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	surface := NewSurface(8, 16)
	eng := newHostEngine(surface)
	host := NewHost(screen, eng, surface, 5*time.Millisecond, zap.NewNop())

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	if err := host.Run(ctx); err != nil {
		t.Fatalf("Expected clean exit, got %v", err)
	}
	if time.Since(start) > 4*time.Second {
		t.Error("Expected quit key to stop the host before the deadline")
	}
}
