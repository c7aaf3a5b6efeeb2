package config

// Screen layout configuration
const (
	// Default window dimensions in pixels; the reel strip is wide and short
	WindowWidth  = 960
	WindowHeight = 300

	// Terminal cell size in canvas pixels (cells are roughly twice as tall as wide)
	CellWidth  = 8
	CellHeight = 16

	// Target frame rate for hosts that drive their own ticker
	FramesPerSecond = 60
)
