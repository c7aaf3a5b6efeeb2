package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen shows a centred notice on top of other screens. Any key closes it.
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.RGBA
	border     color.RGBA
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200},
		border:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), 2, s.border, false)

	// Approximate debug font width
	titleX := x + (s.width-len(s.title)*6)/2
	ebitenutil.DebugPrintAt(screen, s.title, titleX, y+10)
	ebitenutil.DebugPrintAt(screen, s.content, x+10, y+30)
}

// Update closes the modal on any key press
func (s *ModalScreen) Update() error {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return ErrCloseScreen
	}
	return nil
}
