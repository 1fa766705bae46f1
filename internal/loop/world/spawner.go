package world

import (
	"math/rand"

	"github.com/tomz197/spaceship/internal/loop/config"
	"github.com/tomz197/spaceship/internal/object"
)

// Spawner releases one hostile every SpawnTimer ticks.
// The kind depends on the score at the moment the timer fires.
type Spawner struct {
	countdown int
	threshold int
	rng       *rand.Rand
}

// NewSpawner creates a spawner that draws positions from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{
		threshold: config.SpawnTimer,
		rng:       rng,
	}
}

// Countdown returns the number of ticks counted since the last spawn.
func (s *Spawner) Countdown() int {
	return s.countdown
}

// Update advances the countdown by one tick and returns the new hostile
// when the threshold is reached, or nil otherwise.
func (s *Spawner) Update(score int, screen object.Screen) *object.Hostile {
	s.countdown++
	if s.countdown < s.threshold {
		return nil
	}
	s.countdown = 0

	kind := KindForScore(score)
	size := kind.Size()
	x := float64(s.rng.Intn(screen.Width - int(size) + 1))
	return object.NewHostile(x, -size, kind)
}

// KindForScore is the spawn policy: basic hostiles until the score reaches
// FastScoreLevel, fast ones afterwards. Bosses are never spawned by the timer.
func KindForScore(score int) object.HostileKind {
	if score < config.FastScoreLevel {
		return object.KindBasic
	}
	return object.KindFast
}
