package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Variant selects how the simulation is drawn
type Variant string

const (
	// VariantShooter draws jittered polygon asteroids
	VariantShooter Variant = "shooter"
	// VariantPixel draws pixel-block shapes over a wrapping starfield
	VariantPixel Variant = "pixel"
)

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Terminal   TerminalConfig   `toml:"terminal"`
	Audio      AudioConfig      `toml:"audio"`
	Logging    LoggingConfig    `toml:"logging"`
	Theme      ThemeConfig      `toml:"theme"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Resizable  bool   `toml:"resizable"`
	Fullscreen bool   `toml:"fullscreen"`
}

// SimulationConfig holds every tunable of the animation. Distances are in
// pixels, speeds in pixels per tick, times in milliseconds.
type SimulationConfig struct {
	Variant Variant `toml:"variant"`
	Seed    string  `toml:"seed"` // empty = time based

	MinObstacles    int     `toml:"min_obstacles"`
	SpawnIntervalMs float64 `toml:"spawn_interval_ms"`

	EmitterX           float64 `toml:"emitter_x"`
	EmitterWidth       float64 `toml:"emitter_width"`
	EmitterHeight      float64 `toml:"emitter_height"`
	EmitterAmplitude   float64 `toml:"emitter_amplitude"`
	EmitterAngularRate float64 `toml:"emitter_angular_rate"` // radians per ms
	ExhaustLength      float64 `toml:"exhaust_length"`

	ProjectileSpeed      float64 `toml:"projectile_speed"`
	ProjectileRadius     float64 `toml:"projectile_radius"`
	ProjectileCullMargin float64 `toml:"projectile_cull_margin"`

	ObstacleRadiusMin float64 `toml:"obstacle_radius_min"`
	ObstacleRadiusMax float64 `toml:"obstacle_radius_max"`
	ObstacleSpeedMin  float64 `toml:"obstacle_speed_min"`
	ObstacleSpeedMax  float64 `toml:"obstacle_speed_max"`
	ObstacleSpinMax   float64 `toml:"obstacle_spin_max"` // radians per tick, either direction
	InitialSpreadX    float64 `toml:"initial_spread_x"`
	RespawnSpreadX    float64 `toml:"respawn_spread_x"`
	VerticalMargin    float64 `toml:"vertical_margin"`

	OutlineVertices int     `toml:"outline_vertices"`
	JitterBase      float64 `toml:"jitter_base"`
	JitterAmplitude float64 `toml:"jitter_amplitude"`
	JitterRate      float64 `toml:"jitter_rate"` // radians per ms
	OutlineWidth    float64 `toml:"outline_width"`
	BurstParticles  int     `toml:"burst_particles"`
	BurstRadius     float64 `toml:"burst_radius"`
	ParticleRadius  float64 `toml:"particle_radius"`
	PixelSize       float64 `toml:"pixel_size"`
	StarCount       int     `toml:"star_count"`
	StarSpeedMin    float64 `toml:"star_speed_min"`
	StarSpeedMax    float64 `toml:"star_speed_max"`
	LargeStarChance float64 `toml:"large_star_chance"`
}

type TerminalConfig struct {
	CellWidth  float64       `toml:"cell_width"`
	CellHeight float64       `toml:"cell_height"`
	FrameTime  time.Duration `toml:"frame_time"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ThemeConfig struct {
	Name      string `toml:"name"` // empty = variant default
	Directory string `toml:"directory"`
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.normalize()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Defaults returns the configuration used when no file overrides it
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Rocket Reel",
			Width:     WindowWidth,
			Height:    WindowHeight,
			Resizable: true,
		},
		Simulation: DefaultSimulation(),
		Terminal: TerminalConfig{
			CellWidth:  CellWidth,
			CellHeight: CellHeight,
			FrameTime:  time.Second / FramesPerSecond,
		},
		Audio: AudioConfig{
			Enabled:    false,
			SampleRate: 44100,
			Volume:     0.4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Theme: ThemeConfig{
			Directory: "data/themes",
		},
	}
}

// DefaultSimulation returns the stock animation tuning
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		Variant:            VariantShooter,
		MinObstacles:       5,
		SpawnIntervalMs:    800,
		EmitterX:           50,
		EmitterWidth:       40,
		EmitterHeight:      20,
		EmitterAmplitude:   50,
		EmitterAngularRate: 0.003,
		ExhaustLength:      15,

		ProjectileSpeed:      4,
		ProjectileRadius:     3,
		ProjectileCullMargin: 10,

		ObstacleRadiusMin: 15,
		ObstacleRadiusMax: 30,
		ObstacleSpeedMin:  1,
		ObstacleSpeedMax:  3,
		ObstacleSpinMax:   0.02,
		InitialSpreadX:    400,
		RespawnSpreadX:    200,
		VerticalMargin:    40,

		OutlineVertices: 8,
		JitterBase:      0.7,
		JitterAmplitude: 0.3,
		JitterRate:      0.01,
		OutlineWidth:    2,
		BurstParticles:  8,
		BurstRadius:     10,
		ParticleRadius:  2,
		PixelSize:       4,
		StarCount:       60,
		StarSpeedMin:    0.2,
		StarSpeedMax:    1.0,
		LargeStarChance: 0.2,
	}
}

func (c *Config) normalize() {
	if c.Window.Width <= 0 {
		c.Window.Width = WindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = WindowHeight
	}
	if c.Terminal.CellWidth <= 0 {
		c.Terminal.CellWidth = CellWidth
	}
	if c.Terminal.CellHeight <= 0 {
		c.Terminal.CellHeight = CellHeight
	}
	if c.Terminal.FrameTime <= 0 {
		c.Terminal.FrameTime = time.Second / FramesPerSecond
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}
	c.Audio.Volume = clamp(c.Audio.Volume, 0, 1)
	c.Simulation.Normalize()
}

// Normalize clamps out-of-range values so the simulation can always run.
// Swapped min/max pairs are reordered; non-positive counts fall back to defaults.
func (s *SimulationConfig) Normalize() {
	def := DefaultSimulation()

	if s.Variant != VariantShooter && s.Variant != VariantPixel {
		s.Variant = def.Variant
	}
	if s.MinObstacles < 0 {
		s.MinObstacles = 0
	}
	if s.SpawnIntervalMs <= 0 {
		s.SpawnIntervalMs = def.SpawnIntervalMs
	}
	if s.ProjectileSpeed <= 0 {
		s.ProjectileSpeed = def.ProjectileSpeed
	}
	if s.ProjectileRadius < 0 {
		s.ProjectileRadius = 0
	}
	if s.OutlineVertices < 3 {
		s.OutlineVertices = def.OutlineVertices
	}
	if s.BurstParticles < 0 {
		s.BurstParticles = 0
	}
	if s.PixelSize <= 0 {
		s.PixelSize = def.PixelSize
	}
	if s.StarCount < 0 {
		s.StarCount = 0
	}
	s.LargeStarChance = clamp(s.LargeStarChance, 0, 1)
	s.ObstacleSpinMax = abs(s.ObstacleSpinMax)

	s.ObstacleRadiusMin, s.ObstacleRadiusMax = ordered(s.ObstacleRadiusMin, s.ObstacleRadiusMax)
	s.ObstacleSpeedMin, s.ObstacleSpeedMax = ordered(s.ObstacleSpeedMin, s.ObstacleSpeedMax)
	s.StarSpeedMin, s.StarSpeedMax = ordered(s.StarSpeedMin, s.StarSpeedMax)
	if s.ObstacleRadiusMin <= 0 {
		s.ObstacleRadiusMin = def.ObstacleRadiusMin
		if s.ObstacleRadiusMax < s.ObstacleRadiusMin {
			s.ObstacleRadiusMax = s.ObstacleRadiusMin
		}
	}
	// Obstacles and shots must always travel toward their exit edge
	if s.ObstacleSpeedMin <= 0 {
		s.ObstacleSpeedMin = def.ObstacleSpeedMin
		if s.ObstacleSpeedMax < s.ObstacleSpeedMin {
			s.ObstacleSpeedMax = s.ObstacleSpeedMin
		}
	}
	if s.InitialSpreadX < 0 {
		s.InitialSpreadX = 0
	}
	if s.RespawnSpreadX < 0 {
		s.RespawnSpreadX = 0
	}
	if s.VerticalMargin < 0 {
		s.VerticalMargin = 0
	}
}

func ordered(a, b float64) (float64, float64) {
	if b < a {
		return b, a
	}
	return a, b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
