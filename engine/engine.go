// Package engine runs the decorative rocket animation: one craft firing at
// drifting asteroids, advanced and drawn once per repaint tick.
package engine

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"ebiten-reel/canvas"
	"ebiten-reel/components"
	"ebiten-reel/config"
	"ebiten-reel/data"
	"ebiten-reel/ecs"
	"ebiten-reel/scheduler"
	"ebiten-reel/spawners"
	"ebiten-reel/systems"
)

// ErrDisposed is returned by Mount once the engine has been disposed
var ErrDisposed = errors.New("engine disposed")

// TickError records a panic raised while processing a frame
type TickError struct {
	Timestamp float64
	Cause     any
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick at %.1fms: %v", e.Timestamp, e.Cause)
}

// Unwrap exposes the cause when the panic value was an error
func (e *TickError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// Engine owns one simulation world and its per-tick pipeline.
// All methods are safe to call from different goroutines; callbacks
// registered with OnBurst run with the engine locked and must not call back
// into it.
type Engine struct {
	mu sync.Mutex

	cfg     config.SimulationConfig
	theme   *data.Theme
	rng     spawners.Random
	surface canvas.Surface
	log     *zap.Logger

	world      *ecs.World
	spawner    *spawners.EntitySpawner
	emitter    *systems.EmitterSystem
	collision  *systems.CollisionSystem
	cleanup    *systems.CleanupSystem
	population *systems.PopulationSystem
	starfield  *systems.StarfieldSystem
	render     *systems.RenderSystem

	width, height float64
	initialized   bool
	disposed      bool
	cancels       []func()
	burstHandlers []func(systems.BurstEvent)
	err           error
	stats         Stats
}

// Stats are running counters since the last Initialize
type Stats struct {
	Frames      uint64
	Obstacles   int
	Projectiles int
	Stars       int
	Shots       int
	Hits        int
	Respawns    int
	TopUps      int
}

// New creates an engine drawing onto surface. A nil theme selects the neon
// palette and a nil logger disables logging. The engine does nothing until
// Initialize or Mount is called.
func New(cfg config.SimulationConfig, theme *data.Theme, surface canvas.Surface, rng spawners.Random, log *zap.Logger) *Engine {
	cfg.Normalize()
	if theme == nil {
		neon := data.NeonTheme
		theme = &neon
	}
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = spawners.NewRNG(cfg.Seed, "reel")
	}
	return &Engine{
		cfg:     cfg,
		theme:   theme,
		rng:     rng,
		surface: surface,
		log:     log.Named("engine"),
	}
}

// Initialize builds a fresh world for a surface of the given size: the craft,
// the minimum obstacle population and, for the pixel variant, the starfield.
// Calling it again discards the previous world.
func (e *Engine) Initialize(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		e.log.Debug("initialize after dispose ignored")
		return
	}
	e.initializeLocked(width, height)
}

func (e *Engine) initializeLocked(width, height float64) {
	if e.world != nil && e.render != nil {
		e.render.Close(e.world)
	}

	e.width, e.height = sanitize(width), sanitize(height)
	e.stats = Stats{}

	world := ecs.NewWorld()
	spawner := spawners.NewEntitySpawner(world, e.cfg, e.theme, e.rng, e.log)

	e.world = world
	e.spawner = spawner
	e.emitter = systems.NewEmitterSystem(spawner, e.cfg.SpawnIntervalMs)
	e.collision = systems.NewCollisionSystem()
	e.cleanup = systems.NewCleanupSystem()
	e.population = systems.NewPopulationSystem(spawner, e.cfg.MinObstacles)
	e.starfield = systems.NewStarfieldSystem(spawner)
	e.render = systems.NewRenderSystem(e.cfg, e.theme)

	// Pipeline order is the frame algorithm: move craft and fire, advance,
	// cull, resolve hits, flush, respawn and top up, wrap stars
	world.AddSystem(e.emitter)
	world.AddSystem(systems.NewMovementSystem())
	world.AddSystem(systems.NewCullSystem(e.cfg.ProjectileCullMargin))
	world.AddSystem(e.collision)
	world.AddSystem(e.cleanup)
	world.AddSystem(e.population)
	if e.cfg.Variant == config.VariantPixel {
		world.AddSystem(e.starfield)
	}

	e.subscribeStats(world)
	e.render.Initialize(world)

	stage := spawner.CreateStage(e.width, e.height)
	stageComp, _ := world.GetComponent(stage.ID, components.Stage)
	spawner.CreateEmitter(stageComp.(*components.StageComponent))
	e.population.Fill(world)
	if e.cfg.Variant == config.VariantPixel {
		for i := 0; i < e.cfg.StarCount; i++ {
			spawner.CreateStar(stageComp.(*components.StageComponent))
		}
	}

	e.initialized = true
	e.refreshCounts()

	e.log.Debug("initialized",
		zap.Float64("width", e.width),
		zap.Float64("height", e.height),
		zap.String("variant", string(e.cfg.Variant)),
		zap.Int("obstacles", e.stats.Obstacles),
		zap.Int("stars", e.stats.Stars))
}

// subscribeStats wires the world's events into the running counters and the
// externally registered burst handlers
func (e *Engine) subscribeStats(world *ecs.World) {
	events := world.GetEventManager()
	events.Subscribe(systems.EventBurst, func(event ecs.Event) {
		burst := event.(systems.BurstEvent)
		e.stats.Hits++
		for _, handler := range e.burstHandlers {
			handler(burst)
		}
	})
	events.Subscribe(systems.EventProjectileFired, func(ecs.Event) {
		e.stats.Shots++
	})
	events.Subscribe(systems.EventObstacleRespawned, func(ecs.Event) {
		e.stats.Respawns++
	})
	events.Subscribe(systems.EventObstacleSpawned, func(ecs.Event) {
		e.stats.TopUps++
	})
}

// OnResize records a new surface size. Before Initialize only the size is
// remembered; afterwards the craft is recentred and stars are moved into the
// new height.
func (e *Engine) OnResize(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		return
	}
	e.width, e.height = sanitize(width), sanitize(height)
	if !e.initialized {
		return
	}

	stage := components.GetStage(e.world)
	stage.Width, stage.Height = e.width, e.height

	for _, entity := range e.world.GetEntitiesWithComponent(components.Emitter) {
		comp, _ := e.world.GetComponent(entity.ID, components.Emitter)
		comp.(*components.EmitterComponent).BaselineY = e.height / 2
	}
	e.starfield.Rescatter(e.world)

	e.log.Debug("resized", zap.Float64("width", e.width), zap.Float64("height", e.height))
}

// Tick advances the simulation to timestampMs and draws the frame. It does
// nothing before Initialize, after Dispose, or for a non-finite timestamp.
// A panic during the frame is recovered, kept as Err, and disposes the engine.
func (e *Engine) Tick(timestampMs float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed || !e.initialized {
		return
	}
	if math.IsNaN(timestampMs) || math.IsInf(timestampMs, 0) {
		return
	}

	if err := e.step(timestampMs); err != nil {
		e.err = err
		e.log.Error("tick failed, disposing", zap.Error(err))
		e.disposeLocked()
	}
}

func (e *Engine) step(now float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TickError{Timestamp: now, Cause: r}
		}
	}()

	stage := components.GetStage(e.world)
	stage.Now = now
	stage.Frame++

	e.world.Update(now)
	e.render.Draw(e.world, e.surface)

	e.stats.Frames = stage.Frame
	e.refreshCounts()
	return nil
}

func (e *Engine) refreshCounts() {
	e.stats.Obstacles = e.world.CountWithComponent(components.Obstacle)
	e.stats.Projectiles = e.world.CountWithComponent(components.Projectile)
	e.stats.Stars = e.world.CountWithComponent(components.Star)
}

// Mount initializes the engine and subscribes Tick and OnResize to the given
// sources. Either source may be nil. Dispose releases both subscriptions.
func (e *Engine) Mount(frames scheduler.FrameSource, resizes scheduler.ResizeSource, width, height float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		return ErrDisposed
	}

	// Remount replaces previous subscriptions
	e.releaseLocked()
	e.initializeLocked(width, height)

	if frames != nil {
		e.cancels = append(e.cancels, frames.SubscribeFrames(e.Tick))
	}
	if resizes != nil {
		e.cancels = append(e.cancels, resizes.SubscribeResize(func(w, h int) {
			e.OnResize(float64(w), float64(h))
		}))
	}
	return nil
}

// Dispose releases the frame and resize subscriptions and discards the world.
// It is safe to call more than once.
func (e *Engine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disposeLocked()
}

func (e *Engine) disposeLocked() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.releaseLocked()

	if e.world != nil && e.render != nil {
		e.render.Close(e.world)
	}
	e.world = nil
	e.initialized = false
	e.burstHandlers = nil

	e.log.Debug("disposed", zap.Uint64("frames", e.stats.Frames))
}

func (e *Engine) releaseLocked() {
	for _, cancel := range e.cancels {
		cancel()
	}
	e.cancels = nil
}

// OnBurst registers fn to be called for every projectile/obstacle hit
func (e *Engine) OnBurst(fn func(systems.BurstEvent)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	e.burstHandlers = append(e.burstHandlers, fn)
}

// Err returns the failure that disposed the engine, if any
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Disposed reports whether Dispose has run
func (e *Engine) Disposed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disposed
}

// Size returns the current surface size
func (e *Engine) Size() (width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Variant returns the configured drawing variant
func (e *Engine) Variant() config.Variant {
	return e.cfg.Variant
}

// sanitize treats negative and non-finite sizes as zero
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
