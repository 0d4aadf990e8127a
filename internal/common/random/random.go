package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/dutch/internal/common/random Picker

// Picker chooses an index in [0, n). The commentator uses it to pick templates
// and error tags.
type Picker interface {
	Intn(n int) int
}

// Source is a Picker backed by math/rand
type Source struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random index in [0, n). A non-positive n always yields 0.
func (s *Source) Intn(n int) int {
	if n <= 1 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}
