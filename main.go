package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"ebiten-reel/config"
	"ebiten-reel/data"
	"ebiten-reel/engine"
	"ebiten-reel/logging"
	"ebiten-reel/spawners"
	"ebiten-reel/terminal"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("reel", flag.ContinueOnError)
	configPath := flags.String("config", "config/reel.toml", "path to the TOML config file")
	useTerminal := flags.Bool("terminal", false, "draw in the terminal instead of a window")
	var overrides config.Overrides
	flags.StringVar(&overrides.Variant, "variant", "", "drawing variant: shooter or pixel")
	flags.StringVar(&overrides.Seed, "seed", "", "seed for a repeatable animation")
	flags.StringVar(&overrides.Theme, "theme", "", "palette id")
	flags.StringVar(&overrides.ThemesDir, "themes", "", "directory of palette YAML files")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	audio := flags.Bool("audio", false, "play burst sounds")
	if err := flags.Parse(args); err != nil {
		return err
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "audio" {
			overrides.Audio = audio
		}
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := overrides.Apply(cfg); err != nil {
		return err
	}

	// The terminal host owns the tty, so console logging is off there
	messages := logging.NewMessageLog(200)
	var console io.Writer = os.Stderr
	if *useTerminal {
		console = nil
	}
	log := logging.New(cfg.Logging, console, messages)
	defer log.Sync()

	themes := data.NewThemeManager()
	if err := themes.LoadThemesFromDirectory(cfg.Theme.Directory); err != nil {
		log.Warn("themes not loaded", zap.String("dir", cfg.Theme.Directory), zap.Error(err))
	}
	theme := themes.Select(cfg.Theme.Name, cfg.Simulation.Variant)

	log.Info("starting",
		zap.String("variant", string(cfg.Simulation.Variant)),
		zap.String("theme", theme.ID),
		zap.Bool("terminal", *useTerminal),
		zap.Bool("audio", cfg.Audio.Enabled))

	if *useTerminal {
		return runTerminal(cfg, theme, log)
	}
	return runWindow(cfg, theme, log, messages)
}

func runWindow(cfg *config.Config, theme *data.Theme, log *zap.Logger, messages *logging.MessageLog) error {
	game, err := NewGame(cfg, theme, log, messages)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return game.Err()
}

func runTerminal(cfg *config.Config, theme *data.Theme, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	surface := terminal.NewSurface(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	rng := spawners.NewRNG(cfg.Simulation.Seed, "reel")
	eng := engine.New(cfg.Simulation, theme, surface, rng, log)

	if cfg.Audio.Enabled {
		speaker := terminal.NewSpeaker(cfg.Audio, cfg.Simulation, log)
		if err := speaker.Initialize(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			defer speaker.Close()
			eng.OnBurst(speaker.PlayBurst)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := terminal.NewHost(screen, eng, surface, cfg.Terminal.FrameTime, log)
	return host.Run(ctx)
}
