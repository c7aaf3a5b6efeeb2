package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"ebiten-reel/engine"
	"ebiten-reel/scheduler"
)

// Host drives an engine from a tcell screen
type Host struct {
	screen    tcell.Screen
	engine    *engine.Engine
	surface   *Surface
	hub       *scheduler.Hub
	frameTime time.Duration
	log       *zap.Logger
}

// NewHost creates a host for an initialized screen. The engine must draw
// onto surface.
func NewHost(screen tcell.Screen, eng *engine.Engine, surface *Surface, frameTime time.Duration, log *zap.Logger) *Host {
	if frameTime <= 0 {
		frameTime = time.Second / 60
	}
	return &Host{
		screen:    screen,
		engine:    eng,
		surface:   surface,
		hub:       scheduler.NewHub(),
		frameTime: frameTime,
		log:       log.Named("terminal"),
	}
}

// Run mounts the engine and renders frames until ctx is done, a quit key is
// pressed, or a tick fails. The engine is disposed on return.
func (h *Host) Run(ctx context.Context) error {
	h.resize()
	width, height := h.surface.PixelSize()
	if err := h.engine.Mount(h.hub, h.hub, width, height); err != nil {
		return err
	}
	defer h.engine.Dispose()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.frameTime)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuitKey(ev) {
					h.log.Debug("quit requested")
					return nil
				}
			case *tcell.EventResize:
				h.screen.Sync()
				h.resize()
			}

		case <-ticker.C:
			h.hub.Frame(float64(time.Since(start)) / float64(time.Millisecond))
			if err := h.engine.Err(); err != nil {
				return err
			}
			h.surface.Flush(h.screen)
			h.screen.Show()
		}
	}
}

// resize matches the surface to the screen and publishes the canvas size
func (h *Host) resize() {
	cols, rows := h.screen.Size()
	h.surface.Resize(cols, rows)
	width, height := h.surface.PixelSize()
	h.hub.Resize(int(width), int(height))
	h.log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
}

// IsQuitKey reports whether ev is q, Esc or Ctrl-C
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
