package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"ebiten-reel/config"
	"ebiten-reel/data"
	"ebiten-reel/engine"
	"ebiten-reel/logging"
	"ebiten-reel/screens"
	"ebiten-reel/spawners"
)

// Game implements ebiten.Game interface.
type Game struct {
	stack      *screens.ScreenStack
	reel       *screens.ReelScreen
	debug      *screens.DebugScreen
	audio      *screens.AudioSystem
	errorShown bool
	log        *zap.Logger
}

// NewGame builds the engine and the screen stack for the window host
func NewGame(cfg *config.Config, theme *data.Theme, log *zap.Logger, messages *logging.MessageLog) (*Game, error) {
	surface := screens.NewSurface(true)
	rng := spawners.NewRNG(cfg.Simulation.Seed, "reel")
	eng := engine.New(cfg.Simulation, theme, surface, rng, log)

	game := &Game{
		stack: screens.NewScreenStack(),
		log:   log,
	}

	if cfg.Audio.Enabled {
		game.audio = screens.NewAudioSystem(cfg.Audio, cfg.Simulation, log)
		eng.OnBurst(game.audio.PlayBurst)
	}

	reel, err := screens.NewReelScreen(eng, surface, cfg.Window.Width, cfg.Window.Height, log)
	if err != nil {
		return nil, err
	}
	game.reel = reel
	game.debug = screens.NewDebugScreen(eng, messages)
	game.stack.Push(reel)

	return game, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	// Toggle debug overlay with F1; the overlay closes itself
	if g.stack.Peek() == g.reel && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.stack.Push(g.debug)
		return nil
	}

	if err := g.reel.Engine().Err(); err != nil && !g.errorShown {
		g.errorShown = true
		g.stack.Push(screens.NewModalScreen("ANIMATION STOPPED", err.Error(), 420, 80))
	}

	return g.stack.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.stack.Layout(outsideWidth, outsideHeight)
}

// Err returns the engine failure, if the animation stopped on one
func (g *Game) Err() error {
	return g.reel.Engine().Err()
}

// Close disposes the engine and stops audio
func (g *Game) Close() {
	g.reel.Close()
	if g.audio != nil {
		g.audio.Close()
	}
}
