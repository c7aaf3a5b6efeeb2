package systems

import (
	"image/color"
	"math"

	"ebiten-reel/canvas"
	"ebiten-reel/components"
	"ebiten-reel/config"
	"ebiten-reel/data"
	"ebiten-reel/ecs"
)

// Pixel-art masks: '#' fill, 'o' outline color, anything else empty
var (
	obstacleMask = []string{
		"..###..",
		".##o##.",
		"###o###",
		"#o#####",
		"#####o#",
		".#####.",
		"..###..",
	}
	craftMask = []string{
		"##......",
		"####....",
		"########",
		"####....",
		"##......",
	}
)

// RenderSystem issues draw commands for the current world state
type RenderSystem struct {
	cfg          config.SimulationConfig
	theme        *data.Theme
	bursts       []BurstEvent
	subscription ecs.Subscription
	initialized  bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(cfg config.SimulationConfig, theme *data.Theme) *RenderSystem {
	return &RenderSystem{
		cfg:   cfg,
		theme: theme,
	}
}

// Initialize subscribes to burst events so they are drawn in the frame they happen
func (s *RenderSystem) Initialize(world *ecs.World) {
	if s.initialized {
		return
	}

	s.subscription = world.GetEventManager().Subscribe(EventBurst, func(event ecs.Event) {
		s.bursts = append(s.bursts, event.(BurstEvent))
	})

	s.initialized = true
}

// PendingBursts returns how many bursts wait to be drawn
func (s *RenderSystem) PendingBursts() int {
	return len(s.bursts)
}

// Draw renders the whole frame. Degenerate stages draw nothing, and bursts
// queued for them are dropped.
func (s *RenderSystem) Draw(world *ecs.World, surface canvas.Surface) {
	stage := components.GetStage(world)
	defer func() { s.bursts = s.bursts[:0] }()

	if stage == nil || !stage.Drawable() || surface == nil {
		return
	}

	// Clear the surface
	surface.Clear()
	if s.theme.Background.A > 0 {
		surface.FillRect(0, 0, stage.Width, stage.Height, s.theme.Background)
	}

	if s.cfg.Variant == config.VariantPixel {
		s.drawStars(world, surface)
	}
	s.drawEmitters(world, surface, stage.Now)
	s.drawProjectiles(world, surface)
	s.drawObstacles(world, surface, stage.Now)
	s.drawBursts(surface)
}

// drawStars draws one or two pixel squares per star
func (s *RenderSystem) drawStars(world *ecs.World, surface canvas.Surface) {
	for _, entity := range world.GetEntitiesWithComponent(components.Star) {
		pos := components.GetPosition(world, entity.ID)
		appearance := components.GetAppearance(world, entity.ID)
		comp, _ := world.GetComponent(entity.ID, components.Star)
		star := comp.(*components.StarComponent)
		if pos == nil || appearance == nil {
			continue
		}

		size := s.cfg.PixelSize / 2
		if star.Size == components.StarLarge {
			size = s.cfg.PixelSize
		}
		surface.FillRect(math.Floor(pos.X), math.Floor(pos.Y), size, size, appearance.Fill)
	}
}

// drawEmitters draws the craft and its exhaust flame
func (s *RenderSystem) drawEmitters(world *ecs.World, surface canvas.Surface, now float64) {
	for _, entity := range world.GetEntitiesWithComponent(components.Emitter) {
		pos := components.GetPosition(world, entity.ID)
		appearance := components.GetAppearance(world, entity.ID)
		comp, _ := world.GetComponent(entity.ID, components.Emitter)
		emitter := comp.(*components.EmitterComponent)
		if pos == nil || appearance == nil {
			continue
		}

		if s.cfg.Variant == config.VariantPixel {
			s.drawMask(surface, craftMask, pos.X, pos.Y, emitter.Width, emitter.Height, appearance.Fill, appearance.Fill)

			// Exhaust flickers between one and two blocks
			block := emitter.Height / float64(len(craftMask))
			blocks := 1.0
			if math.Sin(now*0.02) > 0 {
				blocks = 2
			}
			surface.FillRect(pos.X-block*blocks, pos.Y+emitter.Height/2-block/2, block*blocks, block, appearance.Stroke)
			continue
		}

		// Craft: a triangle pointing right
		surface.FillPolygon([]canvas.Point{
			{X: pos.X + emitter.Width, Y: pos.Y + emitter.Height/2},
			{X: pos.X, Y: pos.Y},
			{X: pos.X, Y: pos.Y + emitter.Height},
		}, appearance.Fill)

		// Exhaust: a smaller triangle trailing left
		surface.FillPolygon([]canvas.Point{
			{X: pos.X, Y: pos.Y + 5},
			{X: pos.X - s.cfg.ExhaustLength, Y: pos.Y + emitter.Height/2},
			{X: pos.X, Y: pos.Y + emitter.Height - 5},
		}, appearance.Stroke)
	}
}

// drawProjectiles draws shots as dots (shooter) or squares (pixel)
func (s *RenderSystem) drawProjectiles(world *ecs.World, surface canvas.Surface) {
	for _, entity := range world.GetEntitiesWithComponent(components.Projectile) {
		pos := components.GetPosition(world, entity.ID)
		appearance := components.GetAppearance(world, entity.ID)
		comp, _ := world.GetComponent(entity.ID, components.Projectile)
		projectile := comp.(*components.ProjectileComponent)
		if pos == nil || appearance == nil {
			continue
		}

		if s.cfg.Variant == config.VariantPixel {
			size := math.Max(projectile.Radius*2, s.cfg.PixelSize)
			surface.FillRect(pos.X-size/2, pos.Y-size/2, size, size, appearance.Fill)
			continue
		}
		surface.FillCircle(pos.X, pos.Y, projectile.Radius, appearance.Fill)
	}
}

// drawObstacles draws asteroids with a time-varying rough outline or a pixel mask
func (s *RenderSystem) drawObstacles(world *ecs.World, surface canvas.Surface, now float64) {
	for _, entity := range world.GetEntitiesWithComponent(components.Obstacle) {
		pos := components.GetPosition(world, entity.ID)
		appearance := components.GetAppearance(world, entity.ID)
		comp, _ := world.GetComponent(entity.ID, components.Obstacle)
		obstacle := comp.(*components.ObstacleComponent)
		if pos == nil || appearance == nil {
			continue
		}

		if s.cfg.Variant == config.VariantPixel {
			size := obstacle.Radius * 2
			s.drawMask(surface, obstacleMask, pos.X-obstacle.Radius, pos.Y-obstacle.Radius, size, size, appearance.Fill, appearance.Stroke)
			continue
		}

		outline := JitteredOutline(pos.X, pos.Y, obstacle.Radius, obstacle.Rotation, now, s.cfg)
		surface.FillPolygon(outline, appearance.Fill)
		if appearance.Stroke.A > 0 {
			surface.StrokePolygon(outline, s.cfg.OutlineWidth, appearance.Stroke)
		}
	}
}

// JitteredOutline returns the rough asteroid outline at time now. Vertex i
// sits at radius * (base + amplitude * sin(now*rate + i)).
func JitteredOutline(cx, cy, radius, rotation, now float64, cfg config.SimulationConfig) []canvas.Point {
	return canvas.RegularPolygon(cx, cy, cfg.OutlineVertices, rotation, func(i int) float64 {
		return radius * (cfg.JitterBase + math.Sin(now*cfg.JitterRate+float64(i))*cfg.JitterAmplitude)
	})
}

// drawBursts draws one radial ring of particles per queued burst
func (s *RenderSystem) drawBursts(surface canvas.Surface) {
	for _, burst := range s.bursts {
		for _, p := range BurstParticles(burst.X, burst.Y, s.cfg.BurstParticles, s.cfg.BurstRadius) {
			if s.cfg.Variant == config.VariantPixel {
				size := s.cfg.ParticleRadius * 2
				surface.FillRect(p.X-size/2, p.Y-size/2, size, size, s.theme.Burst)
				continue
			}
			surface.FillCircle(p.X, p.Y, s.cfg.ParticleRadius, s.theme.Burst)
		}
	}
}

// BurstParticles returns n evenly spaced particle centres at distance r from (x, y)
func BurstParticles(x, y float64, n int, r float64) []canvas.Point {
	return canvas.RegularPolygon(x, y, n, 0, func(int) float64 { return r })
}

// drawMask draws a character mask stretched over the w*h box at (x, y)
func (s *RenderSystem) drawMask(surface canvas.Surface, mask []string, x, y, w, h float64, fill, outline color.RGBA) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return
	}
	blockW := w / float64(len(mask[0]))
	blockH := h / float64(len(mask))

	for row, line := range mask {
		for col, cell := range line {
			var c color.RGBA
			switch cell {
			case '#':
				c = fill
			case 'o':
				c = outline
			default:
				continue
			}
			surface.FillRect(x+float64(col)*blockW, y+float64(row)*blockH, blockW, blockH, c)
		}
	}
}

// Close unsubscribes from burst events and drops anything queued
func (s *RenderSystem) Close(world *ecs.World) {
	if !s.initialized {
		return
	}
	world.GetEventManager().Unsubscribe(s.subscription)
	s.bursts = nil
	s.initialized = false
}
