package screens

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-reel/engine"
	"ebiten-reel/logging"
)

const (
	debugLineHeight = 16
	debugPadding    = 10
)

// DebugScreen overlays engine counters and recent log lines on the reel
type DebugScreen struct {
	*BaseScreen
	engine       *engine.Engine
	messages     *logging.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.RGBA
	frame        color.RGBA
}

// NewDebugScreen creates a debug overlay for eng reading from messages
func NewDebugScreen(eng *engine.Engine, messages *logging.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		engine:     eng,
		messages:   messages,
		width:      520,
		height:     240,
		background: color.RGBA{0, 0, 0, 200},
		frame:      color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
}

// Update scrolls the log; F1 closes the overlay
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < s.messages.Len()-1 {
		s.scrollOffset++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the overlay in the top-left corner
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w := min(s.width, bounds.Dx())
	h := min(s.height, bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), s.background, false)
	vector.StrokeRect(screen, 1, 1, float32(w-2), float32(h-2), 2, s.frame, false)

	y := debugPadding / 2
	for _, line := range s.statsLines() {
		ebitenutil.DebugPrintAt(screen, line, debugPadding, y)
		y += debugLineHeight
	}
	y += debugLineHeight / 2

	maxLines := (h - y - debugLineHeight) / debugLineHeight
	if maxLines <= 0 {
		return
	}
	lines := s.messages.RecentMessages(s.scrollOffset + maxLines)
	if s.scrollOffset < len(lines) {
		lines = lines[s.scrollOffset:]
	} else {
		lines = nil
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, debugPadding, y)
		y += debugLineHeight
	}

	ebitenutil.DebugPrintAt(screen, "Up/Down: Scroll  F1: Close  Esc: Quit", debugPadding, h-debugLineHeight-2)
}

func (s *DebugScreen) statsLines() []string {
	stats := s.engine.Stats()
	width, height := s.engine.Size()
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f  %s %.0fx%.0f", ebiten.ActualFPS(), ebiten.ActualTPS(), s.engine.Variant(), width, height),
		fmt.Sprintf("frame %d  obstacles %d  projectiles %d  stars %d",
			stats.Frames, stats.Obstacles, stats.Projectiles, stats.Stars),
		fmt.Sprintf("shots %d  hits %d  respawns %d  top-ups %d",
			stats.Shots, stats.Hits, stats.Respawns, stats.TopUps),
	}
	var counts []string
	for _, c := range s.engine.ComponentCounts() {
		counts = append(counts, fmt.Sprintf("%s %d", c.Name, c.Count))
	}
	lines = append(lines, strings.Join(counts, "  "))
	if err := s.engine.Err(); err != nil {
		lines = append(lines, "error: "+err.Error())
	}
	return lines
}
