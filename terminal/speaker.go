package terminal

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	synth "ebiten-reel/audio"
	"ebiten-reel/config"
	"ebiten-reel/spawners"
	"ebiten-reel/systems"
)

// Speaker plays burst sounds through the system audio device
type Speaker struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	radiusMin   float64
	radiusMax   float64
	noise       synth.Noise
	mixer       *beep.Mixer
	initialized bool
	log         *zap.Logger
}

// NewSpeaker creates a speaker; call Initialize before playing
func NewSpeaker(cfg config.AudioConfig, sim config.SimulationConfig, log *zap.Logger) *Speaker {
	return &Speaker{
		cfg:       cfg,
		radiusMin: sim.ObstacleRadiusMin,
		radiusMax: sim.ObstacleRadiusMax,
		noise:     spawners.NewRNG(sim.Seed, "audio"),
		mixer:     &beep.Mixer{},
		log:       log.Named("speaker"),
	}
}

// Initialize opens the audio device
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	rate := beep.SampleRate(s.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// PlayBurst mixes in the sound for one hit
func (s *Speaker) PlayBurst(burst systems.BurstEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	sound := synth.BurstSound(s.cfg, burst.Radius, s.radiusMin, s.radiusMax, s.noise)
	speaker.Lock()
	s.mixer.Add(sound)
	speaker.Unlock()
}

// Close silences the mixer and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
