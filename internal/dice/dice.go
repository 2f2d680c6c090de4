// Package dice provides the random face generation behind a roll. The
// physics/3D presentation of the source game is out of scope; a Roller only
// owes callers the numeric contract.
package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/goldhollow/trophytable/internal/dice Roller

// Roller generates random die faces.
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int) int
}

// Config for the default roller.
type Config struct {
	// Seed fixes the random source, for tests. Zero means a time seed.
	Seed int64
}

// roller implements Roller with a local rand source.
type roller struct {
	random *rand.Rand
}

// New creates a roller. A nil config gets a time-based seed.
func New(cfg *Config) *roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a random face value for a die with the given side count.
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6
	}
	return r.random.Intn(sides) + 1
}
