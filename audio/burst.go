package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"ebiten-reel/config"
)

const (
	BurstDuration = 180 * time.Millisecond
	burstAttack   = 4 * time.Millisecond
	burstRelease  = 150 * time.Millisecond

	// Pitch of the thump for the smallest and largest obstacle
	burstPitchSmall = 220.0
	burstPitchLarge = 90.0

	clickDuration = 12 * time.Millisecond
)

// BurstSound builds the sound of an obstacle bursting: a falling square
// thump under a noise crackle, preceded by a short sine click. Larger
// obstacles sound lower; radius is scaled between radiusMin and radiusMax.
func BurstSound(cfg config.AudioConfig, radius, radiusMin, radiusMax float64, noise Noise) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	t := 0.5
	if radiusMax > radiusMin {
		t = math.Min(math.Max((radius-radiusMin)/(radiusMax-radiusMin), 0), 1)
	}
	pitch := burstPitchSmall + (burstPitchLarge-burstPitchSmall)*t

	thump := NewOscillator(pitch, 0.5, BurstDuration, WaveSquare, rate, nil)
	thumpShaped := NewEnvelope(thump, BurstDuration, burstAttack, burstRelease, rate)

	crackle := NewOscillator(0, 1, BurstDuration, WaveNoise, rate, noise)
	crackleShaped := NewEnvelope(crackle, BurstDuration, burstAttack, burstRelease/2, rate)

	body := beep.Mix(
		newVolume(thumpShaped, 0.6),
		newVolume(crackleShaped, 0.4),
	)

	var sound beep.Streamer = body
	if sine, err := generators.SineTone(rate, pitch*4); err == nil {
		click := beep.Take(rate.N(clickDuration), sine)
		sound = beep.Seq(newVolume(click, 0.3), body)
	}

	return newVolume(sound, cfg.Volume)
}

// EncodePCM16 drains s into interleaved little-endian signed 16-bit stereo
// PCM, stopping after max frames. Samples are clipped to [-1, 1].
func EncodePCM16(s beep.Streamer, max int) []byte {
	out := make([]byte, 0, max*4)
	buf := make([][2]float64, 512)

	for remaining := max; remaining > 0; {
		chunk := buf
		if remaining < len(chunk) {
			chunk = chunk[:remaining]
		}
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][1])))
		}
		remaining -= n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}

// BurstPCM renders BurstSound to PCM for a device at cfg.SampleRate
func BurstPCM(cfg config.AudioConfig, radius, radiusMin, radiusMax float64, noise Noise) []byte {
	rate := beep.SampleRate(cfg.SampleRate)
	max := rate.N(BurstDuration + clickDuration)
	return EncodePCM16(BurstSound(cfg, radius, radiusMin, radiusMax, noise), max)
}
