package config

import "testing"

func TestParseVariant(t *testing.T) {
	if v, err := ParseVariant("pixel"); err != nil || v != VariantPixel {
		t.Errorf("Expected pixel, got %q, %v", v, err)
	}
	if _, err := ParseVariant("vector"); err == nil {
		t.Error("Expected error for unknown variant")
	}
}

func TestOverridesApply(t *testing.T) {
	cfg := Defaults()
	audio := true
	err := Overrides{
		Variant:   "pixel",
		Seed:      "abc",
		Theme:     "sunset",
		ThemesDir: "/tmp/themes",
		LogLevel:  "debug",
		Audio:     &audio,
	}.Apply(cfg)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if cfg.Simulation.Variant != VariantPixel {
		t.Errorf("Expected pixel variant, got %q", cfg.Simulation.Variant)
	}
	if cfg.Simulation.Seed != "abc" {
		t.Errorf("Expected seed abc, got %q", cfg.Simulation.Seed)
	}
	if cfg.Theme.Name != "sunset" || cfg.Theme.Directory != "/tmp/themes" {
		t.Errorf("Expected theme sunset in /tmp/themes, got %q in %q", cfg.Theme.Name, cfg.Theme.Directory)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.Logging.Level)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled")
	}
}

func TestEmptyOverridesKeepConfig(t *testing.T) {
	cfg := Defaults()
	want := *cfg
	if err := (Overrides{}).Apply(cfg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if *cfg != want {
		t.Errorf("Expected config unchanged, got %+v", *cfg)
	}
}

func TestOverridesRejectBadVariant(t *testing.T) {
	cfg := Defaults()
	if err := (Overrides{Variant: "nope"}).Apply(cfg); err == nil {
		t.Error("Expected error for bad variant")
	}
	if cfg.Simulation.Variant != VariantShooter {
		t.Errorf("Expected variant untouched, got %q", cfg.Simulation.Variant)
	}
}

func TestBundledConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load("reel.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Defaults() {
		t.Errorf("Expected bundled config to equal defaults, got %+v", *cfg)
	}
}
