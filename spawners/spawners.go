package spawners

import (
	"math"

	"go.uber.org/zap"

	"ebiten-reel/components"
	"ebiten-reel/config"
	"ebiten-reel/data"
	"ebiten-reel/ecs"
)

// EntitySpawner manages the creation and respawning of simulation entities.
// It is the only place randomness is consumed.
type EntitySpawner struct {
	world *ecs.World
	cfg   config.SimulationConfig
	theme *data.Theme
	rng   Random
	log   *zap.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, cfg config.SimulationConfig, theme *data.Theme, rng Random, log *zap.Logger) *EntitySpawner {
	if log == nil {
		log = zap.NewNop()
	}
	return &EntitySpawner{
		world: world,
		cfg:   cfg,
		theme: theme,
		rng:   rng,
		log:   log,
	}
}

// CreateStage creates the entity holding the surface size and frame clock
func (s *EntitySpawner) CreateStage(width, height float64) *ecs.Entity {
	stage := s.world.CreateEntity()
	s.world.TagEntity(stage.ID, components.TagStage)
	s.world.AddComponent(stage.ID, components.Stage, &components.StageComponent{
		Width:  width,
		Height: height,
	})
	return stage
}

// CreateEmitter creates the craft centred vertically on the stage
func (s *EntitySpawner) CreateEmitter(stage *components.StageComponent) *ecs.Entity {
	emitter := s.world.CreateEntity()
	s.world.TagEntity(emitter.ID, components.TagEmitter)

	s.world.AddComponent(emitter.ID, components.Position, &components.PositionComponent{
		X: s.cfg.EmitterX,
		Y: stage.Height / 2,
	})
	s.world.AddComponent(emitter.ID, components.Emitter, &components.EmitterComponent{
		Width:       s.cfg.EmitterWidth,
		Height:      s.cfg.EmitterHeight,
		BaselineY:   stage.Height / 2,
		Amplitude:   s.cfg.EmitterAmplitude,
		AngularRate: s.cfg.EmitterAngularRate,
	})
	s.world.AddComponent(emitter.ID, components.Appearance, &components.AppearanceComponent{
		Fill:   s.theme.Emitter,
		Stroke: s.theme.Exhaust,
	})

	return emitter
}

// CreateProjectile creates a shot at (x, y) travelling right
func (s *EntitySpawner) CreateProjectile(x, y float64) *ecs.Entity {
	projectile := s.world.CreateEntity()
	s.world.TagEntity(projectile.ID, components.TagProjectile)

	s.world.AddComponent(projectile.ID, components.Position, &components.PositionComponent{X: x, Y: y})
	s.world.AddComponent(projectile.ID, components.Velocity, &components.VelocityComponent{DX: s.cfg.ProjectileSpeed})
	s.world.AddComponent(projectile.ID, components.Projectile, &components.ProjectileComponent{
		Radius: s.cfg.ProjectileRadius,
	})
	s.world.AddComponent(projectile.ID, components.Appearance, &components.AppearanceComponent{
		Fill: s.theme.Projectile,
	})

	return projectile
}

// CreateObstacle creates an asteroid somewhere past the right edge of the stage
func (s *EntitySpawner) CreateObstacle(stage *components.StageComponent) *ecs.Entity {
	obstacle := s.world.CreateEntity()
	s.world.TagEntity(obstacle.ID, components.TagObstacle)

	pos := &components.PositionComponent{}
	vel := &components.VelocityComponent{}
	obs := &components.ObstacleComponent{}
	s.world.AddComponent(obstacle.ID, components.Position, pos)
	s.world.AddComponent(obstacle.ID, components.Velocity, vel)
	s.world.AddComponent(obstacle.ID, components.Obstacle, obs)
	s.world.AddComponent(obstacle.ID, components.Appearance, &components.AppearanceComponent{
		Fill:   s.theme.ObstacleFill,
		Stroke: s.theme.ObstacleStroke,
	})

	s.randomizeObstacle(stage, pos, vel, obs, s.cfg.InitialSpreadX)

	return obstacle
}

// AddObstacle creates an asteroid with explicit state, bypassing randomness
func (s *EntitySpawner) AddObstacle(x, y, radius, speed float64) *ecs.Entity {
	obstacle := s.world.CreateEntity()
	s.world.TagEntity(obstacle.ID, components.TagObstacle)

	s.world.AddComponent(obstacle.ID, components.Position, &components.PositionComponent{X: x, Y: y})
	s.world.AddComponent(obstacle.ID, components.Velocity, &components.VelocityComponent{DX: -speed})
	s.world.AddComponent(obstacle.ID, components.Obstacle, &components.ObstacleComponent{Radius: radius})
	s.world.AddComponent(obstacle.ID, components.Appearance, &components.AppearanceComponent{
		Fill:   s.theme.ObstacleFill,
		Stroke: s.theme.ObstacleStroke,
	})

	return obstacle
}

// RespawnObstacle moves an exited asteroid back past the right edge with
// fresh speed, size and spin. The entity keeps its place in the pool.
func (s *EntitySpawner) RespawnObstacle(id ecs.EntityID, stage *components.StageComponent) {
	pos := components.GetPosition(s.world, id)
	vel := components.GetVelocity(s.world, id)
	comp, exists := s.world.GetComponent(id, components.Obstacle)
	if pos == nil || vel == nil || !exists {
		return
	}
	obs := comp.(*components.ObstacleComponent)

	s.randomizeObstacle(stage, pos, vel, obs, s.cfg.RespawnSpreadX)
	obs.Respawns++

	s.log.Debug("obstacle respawned",
		zap.Uint64("entity", uint64(id)),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Int("respawns", obs.Respawns))
}

// randomizeObstacle rolls position, speed, size and spin. The new x is at
// least stage width + radius, so the obstacle is fully off-surface on the
// right and cannot count as exited on the left.
func (s *EntitySpawner) randomizeObstacle(stage *components.StageComponent, pos *components.PositionComponent,
	vel *components.VelocityComponent, obs *components.ObstacleComponent, spread float64) {
	obs.Radius = RandomRange(s.rng, s.cfg.ObstacleRadiusMin, s.cfg.ObstacleRadiusMax)
	obs.Spin = RandomRange(s.rng, -s.cfg.ObstacleSpinMax, s.cfg.ObstacleSpinMax)
	obs.Rotation = RandomRange(s.rng, 0, 2*math.Pi)

	width := math.Max(stage.Width, 0)
	pos.X = width + obs.Radius + s.rng.Float64()*spread
	pos.Y = s.rng.Float64() * math.Max(stage.Height-s.cfg.VerticalMargin, 0)

	vel.DX = -RandomRange(s.rng, s.cfg.ObstacleSpeedMin, s.cfg.ObstacleSpeedMax)
	vel.DY = 0
}

// CreateStar creates a background star anywhere on the stage
func (s *EntitySpawner) CreateStar(stage *components.StageComponent) *ecs.Entity {
	star := s.world.CreateEntity()
	s.world.TagEntity(star.ID, components.TagStar)

	size := components.StarSmall
	fill := s.theme.StarSmall
	if s.rng.Float64() < s.cfg.LargeStarChance {
		size = components.StarLarge
		fill = s.theme.StarLarge
	}

	s.world.AddComponent(star.ID, components.Position, &components.PositionComponent{
		X: s.rng.Float64() * math.Max(stage.Width, 0),
		Y: s.rng.Float64() * math.Max(stage.Height, 0),
	})
	s.world.AddComponent(star.ID, components.Velocity, &components.VelocityComponent{
		DX: -RandomRange(s.rng, s.cfg.StarSpeedMin, s.cfg.StarSpeedMax),
	})
	s.world.AddComponent(star.ID, components.Star, &components.StarComponent{Size: size})
	s.world.AddComponent(star.ID, components.Appearance, &components.AppearanceComponent{Fill: fill})

	return star
}

// RerollStarRow picks a new row for a star within the stage height
func (s *EntitySpawner) RerollStarRow(id ecs.EntityID, stage *components.StageComponent) {
	if pos := components.GetPosition(s.world, id); pos != nil {
		pos.Y = s.rng.Float64() * math.Max(stage.Height, 0)
	}
}
