package spawners

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// Random is the source of all spawn-time randomness. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// DeterministicSeedValue hashes a root seed and a label into a source seed
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewDeterministicRNG returns a generator that replays identically for the same seed and label
func NewDeterministicRNG(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeedValue(rootSeed, label)))
}

// NewRNG returns a deterministic generator for a non-empty seed, or a time-seeded one
func NewRNG(seed, label string) *rand.Rand {
	if seed == "" {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return NewDeterministicRNG(seed, label)
}

// RandomRange returns a value in [min, max). An empty range returns min.
func RandomRange(rng Random, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
