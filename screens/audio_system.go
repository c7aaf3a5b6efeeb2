package screens

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	synth "ebiten-reel/audio"
	"ebiten-reel/config"
	"ebiten-reel/spawners"
	"ebiten-reel/systems"
)

// maxVoices caps overlapping burst sounds
const maxVoices = 8

// AudioSystem plays a synthesized sound for every burst
type AudioSystem struct {
	audioContext *audio.Context
	cfg          config.AudioConfig
	radiusMin    float64
	radiusMax    float64
	noise        synth.Noise
	cache        map[int][]byte
	players      []*audio.Player
	log          *zap.Logger
}

// NewAudioSystem creates the audio context. Only one may exist per process.
func NewAudioSystem(cfg config.AudioConfig, sim config.SimulationConfig, log *zap.Logger) *AudioSystem {
	return &AudioSystem{
		audioContext: audio.NewContext(cfg.SampleRate),
		cfg:          cfg,
		radiusMin:    sim.ObstacleRadiusMin,
		radiusMax:    sim.ObstacleRadiusMax,
		noise:        spawners.NewRNG(sim.Seed, "audio"),
		cache:        make(map[int][]byte),
		log:          log.Named("audio"),
	}
}

// PlayBurst starts the burst sound for one hit
func (s *AudioSystem) PlayBurst(burst systems.BurstEvent) {
	s.prune()
	if len(s.players) >= maxVoices {
		return
	}

	// Obstacle sizes are quantized to whole pixels so sounds can be reused
	key := int(math.Round(burst.Radius))
	pcm, ok := s.cache[key]
	if !ok {
		pcm = synth.BurstPCM(s.cfg, float64(key), s.radiusMin, s.radiusMax, s.noise)
		s.cache[key] = pcm
	}

	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.Play()
	s.players = append(s.players, player)
}

// prune closes players that finished
func (s *AudioSystem) prune() {
	live := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			s.log.Debug("closing player", zap.Error(err))
		}
	}
	s.players = live
}

// Close stops every playing sound
func (s *AudioSystem) Close() {
	for _, p := range s.players {
		p.Close()
	}
	s.players = nil
}
