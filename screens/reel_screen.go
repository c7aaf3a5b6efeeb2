package screens

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"ebiten-reel/engine"
	"ebiten-reel/scheduler"
)

// ReelScreen hosts the animation engine: every Draw publishes one frame and
// every Layout publishes the window size.
type ReelScreen struct {
	*BaseScreen
	engine  *engine.Engine
	hub     *scheduler.Hub
	surface *Surface
	start   time.Time
	log     *zap.Logger
}

// NewReelScreen mounts eng on a new hub. The engine starts at the given size
// and follows the window from the first Layout on.
func NewReelScreen(eng *engine.Engine, surface *Surface, width, height int, log *zap.Logger) (*ReelScreen, error) {
	hub := scheduler.NewHub()
	if err := eng.Mount(hub, hub, float64(width), float64(height)); err != nil {
		return nil, err
	}
	hub.Resize(width, height)

	return &ReelScreen{
		BaseScreen: NewBaseScreen(),
		engine:     eng,
		hub:        hub,
		surface:    surface,
		start:      time.Now(),
		log:        log.Named("reel"),
	}, nil
}

// Update quits on Esc
func (s *ReelScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw advances the engine by one frame onto screen
func (s *ReelScreen) Draw(screen *ebiten.Image) {
	s.surface.SetTarget(screen)
	s.hub.Frame(float64(time.Since(s.start)) / float64(time.Millisecond))
	s.surface.SetTarget(nil)
}

// Layout implements the Screen interface
func (s *ReelScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.GetWidth() || outsideHeight != s.GetHeight() {
		s.log.Debug("layout", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	s.hub.Resize(outsideWidth, outsideHeight)
	return s.BaseScreen.Layout(outsideWidth, outsideHeight)
}

// Engine returns the hosted engine
func (s *ReelScreen) Engine() *engine.Engine {
	return s.engine
}

// Close disposes the engine
func (s *ReelScreen) Close() {
	s.engine.Dispose()
}
