// Package behavior derives what a persona is doing and feeling from the
// wall clock and its immutable profile.
package behavior

import (
	"math/rand"
	"strings"
	"time"
)

// Engine derives activity, mood, and content ideas for character profiles.
// It owns its random source, so a single Engine must not be shared across
// goroutines; create one per simulation loop instead.
type Engine struct {
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes the engine's randomness deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// NewEngine creates an Engine with a time-seeded random source.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// weightedPick is roulette-wheel selection: draw uniformly over the total
// weight and take the first item whose cumulative range contains the draw.
// Ties resolve in stored item order.
func (e *Engine) weightedPick(items []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return items[e.rng.Intn(len(items))]
	}

	roll := e.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return items[i]
		}
	}
	return items[len(items)-1]
}

func containsFold(items []string, target string) bool {
	for _, item := range items {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
