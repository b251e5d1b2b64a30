package random

import (
	"math/rand"
	"sync"
	"time"
	"workbrew/config"

	"github.com/rs/zerolog/log"
)

// lockedSource serializes draws so the one rand instance can be shared by
// every simulated component. Distinct per-consumer locks would not exclude
// each other on the underlying state.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.src.Seed(seed)
}

// New builds the shared randomness source for the simulated parts of the
// system (slot availability, weather readings, live status). A non-zero
// BOOKING_SLOT_SEED pins the sequence, which keeps demo data stable across
// restarts; zero falls back to a time-based seed.
func New(cfg *config.Config) *rand.Rand {
	seed := cfg.Booking.SlotSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		log.Info().Int64("seed", seed).Msg("Using fixed randomness seed")
	}

	return rand.New(&lockedSource{src: rand.NewSource(seed)}) //nolint:gosec
}
