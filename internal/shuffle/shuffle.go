package shuffle

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/KirkDiggler/mafia/internal/shuffle Shuffler

// Shuffler is the source of randomness for role dealing and message selection
type Shuffler interface {
	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))

	// Intn returns a number in [0, n)
	Intn(n int) int
}

// Random provides seeded shuffling
type Random struct {
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle performs a Fisher-Yates shuffle, so every permutation is equally likely
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	r.random.Shuffle(n, swap)
}

// Intn returns a random index into a slice of length n
func (r *Random) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}
