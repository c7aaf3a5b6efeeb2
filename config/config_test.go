package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Simulation.MinObstacles != 5 {
		t.Errorf("Expected default minimum 5, got %d", cfg.Simulation.MinObstacles)
	}
	if cfg.Simulation.SpawnIntervalMs != 800 {
		t.Errorf("Expected default spawn interval 800, got %f", cfg.Simulation.SpawnIntervalMs)
	}
	if cfg.Window.Width != WindowWidth || cfg.Window.Height != WindowHeight {
		t.Errorf("Expected default window %dx%d, got %dx%d", WindowWidth, WindowHeight, cfg.Window.Width, cfg.Window.Height)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.toml")
	content := `
[simulation]
variant = "pixel"
seed = "fixed"
min_obstacles = 7
obstacle_radius_min = 40
obstacle_radius_max = 10

[terminal]
frame_time = "20ms"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Simulation.Variant != VariantPixel {
		t.Errorf("Expected pixel variant, got %q", cfg.Simulation.Variant)
	}
	if cfg.Simulation.Seed != "fixed" {
		t.Errorf("Expected seed 'fixed', got %q", cfg.Simulation.Seed)
	}
	if cfg.Simulation.MinObstacles != 7 {
		t.Errorf("Expected 7 obstacles, got %d", cfg.Simulation.MinObstacles)
	}
	// Swapped ranges are reordered
	if cfg.Simulation.ObstacleRadiusMin != 10 || cfg.Simulation.ObstacleRadiusMax != 40 {
		t.Errorf("Expected radius range 10-40, got %f-%f", cfg.Simulation.ObstacleRadiusMin, cfg.Simulation.ObstacleRadiusMax)
	}
	// Untouched values keep their defaults
	if cfg.Simulation.ProjectileSpeed != 4 {
		t.Errorf("Expected default projectile speed 4, got %f", cfg.Simulation.ProjectileSpeed)
	}
	if cfg.Terminal.FrameTime != 20*time.Millisecond {
		t.Errorf("Expected 20ms frame time, got %v", cfg.Terminal.FrameTime)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("Unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[simulation\nmin_obstacles = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestNormalizeClampsDegenerateValues(t *testing.T) {
	s := SimulationConfig{
		Variant:          "vector",
		MinObstacles:     -3,
		SpawnIntervalMs:  0,
		OutlineVertices:  1,
		ObstacleSpinMax:  -0.5,
		LargeStarChance:  4,
		StarCount:        -1,
		ProjectileSpeed:  0,
		ObstacleSpeedMin: -2,
	}
	s.Normalize()

	if s.Variant != VariantShooter {
		t.Errorf("Expected fallback variant, got %q", s.Variant)
	}
	if s.MinObstacles != 0 {
		t.Errorf("Expected minimum clamped to 0, got %d", s.MinObstacles)
	}
	if s.SpawnIntervalMs != 800 {
		t.Errorf("Expected default interval, got %f", s.SpawnIntervalMs)
	}
	if s.OutlineVertices != 8 {
		t.Errorf("Expected 8 vertices, got %d", s.OutlineVertices)
	}
	if s.ObstacleSpinMax != 0.5 {
		t.Errorf("Expected spin magnitude 0.5, got %f", s.ObstacleSpinMax)
	}
	if s.LargeStarChance != 1 {
		t.Errorf("Expected chance clamped to 1, got %f", s.LargeStarChance)
	}
	if s.StarCount != 0 {
		t.Errorf("Expected star count 0, got %d", s.StarCount)
	}
	if s.ObstacleRadiusMin <= 0 || s.ObstacleRadiusMax < s.ObstacleRadiusMin {
		t.Errorf("Expected usable radius range, got %f-%f", s.ObstacleRadiusMin, s.ObstacleRadiusMax)
	}
	if s.ProjectileSpeed != 4 {
		t.Errorf("Expected default projectile speed 4, got %f", s.ProjectileSpeed)
	}
	if s.ObstacleSpeedMin <= 0 || s.ObstacleSpeedMax < s.ObstacleSpeedMin {
		t.Errorf("Expected positive speed range, got %f-%f", s.ObstacleSpeedMin, s.ObstacleSpeedMax)
	}
}

func TestNormalizeRejectsBackwardSpeeds(t *testing.T) {
	s := DefaultSimulation()
	s.ProjectileSpeed = -4
	s.ObstacleSpeedMin = -3
	s.ObstacleSpeedMax = -1
	s.Normalize()

	if s.ProjectileSpeed != 4 {
		t.Errorf("Expected default projectile speed 4, got %f", s.ProjectileSpeed)
	}
	if s.ObstacleSpeedMin != 1 {
		t.Errorf("Expected default minimum speed 1, got %f", s.ObstacleSpeedMin)
	}
	if s.ObstacleSpeedMax != 1 {
		t.Errorf("Expected maximum raised to 1, got %f", s.ObstacleSpeedMax)
	}
}
