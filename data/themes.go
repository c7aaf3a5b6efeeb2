package data

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"ebiten-reel/canvas"
	"ebiten-reel/config"
)

// ThemeTemplate is the on-disk form of a palette
type ThemeTemplate struct {
	ID      string         `yaml:"id"`      // Unique identifier
	Name    string         `yaml:"name"`    // Display name
	Variant config.Variant `yaml:"variant"` // Variant this theme is the default for (optional)

	// Colors in hex format (e.g. "#00f0ff")
	Background     string `yaml:"background"`
	Emitter        string `yaml:"emitter"`
	Exhaust        string `yaml:"exhaust"`
	Projectile     string `yaml:"projectile"`
	ObstacleFill   string `yaml:"obstacle_fill"`
	ObstacleStroke string `yaml:"obstacle_stroke"`
	Burst          string `yaml:"burst"`
	StarSmall      string `yaml:"star_small"`
	StarLarge      string `yaml:"star_large"`
}

// Theme is a resolved palette ready for drawing
type Theme struct {
	ID             string
	Name           string
	Background     color.RGBA
	Emitter        color.RGBA
	Exhaust        color.RGBA
	Projectile     color.RGBA
	ObstacleFill   color.RGBA
	ObstacleStroke color.RGBA
	Burst          color.RGBA
	StarSmall      color.RGBA
	StarLarge      color.RGBA
}

// Built-in palettes. Neon matches the portfolio page colors.
var (
	NeonTheme = Theme{
		ID:             "neon",
		Name:           "Neon",
		Background:     color.RGBA{0, 0, 0, 0},
		Emitter:        canvas.MustHexColor("#00f0ff"),
		Exhaust:        canvas.MustHexColor("#ff6b35"),
		Projectile:     canvas.MustHexColor("#ffff00"),
		ObstacleFill:   canvas.MustHexColor("#9d4edd"),
		ObstacleStroke: canvas.MustHexColor("#c77dff"),
		Burst:          canvas.MustHexColor("#ff6b35"),
		StarSmall:      canvas.MustHexColor("#5a5a7a"),
		StarLarge:      canvas.MustHexColor("#c8c8ff"),
	}

	RetroTheme = Theme{
		ID:             "retro",
		Name:           "Retro",
		Background:     canvas.MustHexColor("#0b0b1a"),
		Emitter:        canvas.MustHexColor("#41f06b"),
		Exhaust:        canvas.MustHexColor("#f0a030"),
		Projectile:     canvas.MustHexColor("#ffffff"),
		ObstacleFill:   canvas.MustHexColor("#8a6f5a"),
		ObstacleStroke: canvas.MustHexColor("#5a4636"),
		Burst:          canvas.MustHexColor("#ff4040"),
		StarSmall:      canvas.MustHexColor("#6060a0"),
		StarLarge:      canvas.MustHexColor("#e0e0ff"),
	}
)

// ThemeManager manages all palettes
type ThemeManager struct {
	Themes   map[string]*Theme
	defaults map[config.Variant]string
}

// NewThemeManager creates a manager holding the built-in themes
func NewThemeManager() *ThemeManager {
	neon, retro := NeonTheme, RetroTheme
	return &ThemeManager{
		Themes: map[string]*Theme{
			neon.ID:  &neon,
			retro.ID: &retro,
		},
		defaults: map[config.Variant]string{
			config.VariantShooter: neon.ID,
			config.VariantPixel:   retro.ID,
		},
	}
}

// LoadThemesFromDirectory loads all YAML theme files from a directory.
// A missing directory leaves the built-ins in place and is not an error.
func (m *ThemeManager) LoadThemesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read theme directory: %w", err)
	}

	for _, file := range files {
		ext := filepath.Ext(file.Name())
		if file.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadThemeFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load theme from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadThemeFromFile loads a single theme from a YAML file
func (m *ThemeManager) LoadThemeFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template ThemeTemplate
	if err := yaml.Unmarshal(raw, &template); err != nil {
		return err
	}

	theme, err := template.Resolve()
	if err != nil {
		return fmt.Errorf("invalid theme in %s: %w", filePath, err)
	}

	m.Themes[theme.ID] = theme
	if template.Variant != "" {
		m.defaults[template.Variant] = theme.ID
	}
	return nil
}

// Resolve validates the template and parses its colors. Missing colors fall
// back to the neon palette.
func (t *ThemeTemplate) Resolve() (*Theme, error) {
	if t.ID == "" {
		return nil, fmt.Errorf("theme ID cannot be empty")
	}

	theme := NeonTheme
	theme.ID = t.ID
	theme.Name = t.Name
	if theme.Name == "" {
		theme.Name = t.ID
	}

	fields := []struct {
		hex string
		dst *color.RGBA
	}{
		{t.Background, &theme.Background},
		{t.Emitter, &theme.Emitter},
		{t.Exhaust, &theme.Exhaust},
		{t.Projectile, &theme.Projectile},
		{t.ObstacleFill, &theme.ObstacleFill},
		{t.ObstacleStroke, &theme.ObstacleStroke},
		{t.Burst, &theme.Burst},
		{t.StarSmall, &theme.StarSmall},
		{t.StarLarge, &theme.StarLarge},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := canvas.ParseHexColor(f.hex)
		if err != nil {
			return nil, fmt.Errorf("theme '%s': %w", t.ID, err)
		}
		*f.dst = c
	}

	return &theme, nil
}

// GetTheme returns a theme by ID
func (m *ThemeManager) GetTheme(id string) (*Theme, bool) {
	theme, ok := m.Themes[id]
	return theme, ok
}

// Select returns the named theme, or the default for the variant when the
// name is empty or unknown
func (m *ThemeManager) Select(id string, variant config.Variant) *Theme {
	if theme, ok := m.Themes[id]; ok {
		return theme
	}
	if theme, ok := m.Themes[m.defaults[variant]]; ok {
		return theme
	}
	neon := NeonTheme
	return &neon
}

// IDs returns the known theme IDs in sorted order
func (m *ThemeManager) IDs() []string {
	ids := make([]string, 0, len(m.Themes))
	for id := range m.Themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
