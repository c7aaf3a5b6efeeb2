package data

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"ebiten-reel/config"
)

func TestSelectFallsBackToVariantDefault(t *testing.T) {
	m := NewThemeManager()

	if got := m.Select("", config.VariantShooter); got.ID != "neon" {
		t.Errorf("Expected neon for shooter, got %s", got.ID)
	}
	if got := m.Select("missing", config.VariantPixel); got.ID != "retro" {
		t.Errorf("Expected retro for pixel, got %s", got.ID)
	}
	if got := m.Select("retro", config.VariantShooter); got.ID != "retro" {
		t.Errorf("Expected explicit retro, got %s", got.ID)
	}
}

func TestLoadThemesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	content := `
id: mono
variant: pixel
emitter: "#ffffff"
burst: "#808080"
`
	if err := os.WriteFile(filepath.Join(dir, "mono.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewThemeManager()
	if err := m.LoadThemesFromDirectory(dir); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	mono, ok := m.GetTheme("mono")
	if !ok {
		t.Fatal("Expected mono theme to be loaded")
	}
	if mono.Emitter != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white emitter, got %v", mono.Emitter)
	}
	// Unset colors come from the neon palette
	if mono.Projectile != NeonTheme.Projectile {
		t.Errorf("Expected neon projectile color, got %v", mono.Projectile)
	}
	// The file declared itself the pixel default
	if got := m.Select("", config.VariantPixel); got.ID != "mono" {
		t.Errorf("Expected mono as pixel default, got %s", got.ID)
	}
}

func TestLoadThemesRejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yml"), []byte("id: bad\nemitter: \"#zzzzzz\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewThemeManager().LoadThemesFromDirectory(dir); err == nil {
		t.Error("Expected error for invalid color")
	}
}

func TestLoadThemesMissingDirectory(t *testing.T) {
	m := NewThemeManager()
	if err := m.LoadThemesFromDirectory(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("Expected missing directory to be ignored, got %v", err)
	}
	if len(m.IDs()) != 2 {
		t.Errorf("Expected 2 built-in themes, got %v", m.IDs())
	}
}

func TestBundledThemesLoad(t *testing.T) {
	m := NewThemeManager()
	if err := m.LoadThemesFromDirectory("themes"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, id := range []string{"sunset", "arcade"} {
		if _, ok := m.GetTheme(id); !ok {
			t.Errorf("Expected bundled theme %s", id)
		}
	}
}
