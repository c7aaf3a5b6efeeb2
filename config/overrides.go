package config

import "fmt"

// ParseVariant converts a command-line or file value to a Variant
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantShooter, VariantPixel:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown variant %q (want %q or %q)", s, VariantShooter, VariantPixel)
}

// Overrides are command-line values layered over a loaded config. Empty
// fields leave the config untouched.
type Overrides struct {
	Variant   string
	Seed      string
	Theme     string
	ThemesDir string
	LogLevel  string
	Audio     *bool
}

// Apply writes the non-empty overrides into c
func (o Overrides) Apply(c *Config) error {
	if o.Variant != "" {
		v, err := ParseVariant(o.Variant)
		if err != nil {
			return err
		}
		c.Simulation.Variant = v
	}
	if o.Seed != "" {
		c.Simulation.Seed = o.Seed
	}
	if o.Theme != "" {
		c.Theme.Name = o.Theme
	}
	if o.ThemesDir != "" {
		c.Theme.Directory = o.ThemesDir
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.Audio != nil {
		c.Audio.Enabled = *o.Audio
	}
	return nil
}
