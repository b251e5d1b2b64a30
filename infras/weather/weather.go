package weather

//go:generate go run go.uber.org/mock/mockgen -source=./weather.go -destination=./mocks/weather_mock.go -package=mocks

import (
	"context"
	"math/rand"
	"workbrew/config"
	"workbrew/shared/geo"

	"github.com/rs/zerolog/log"
)

// Snapshot is a point-in-time weather reading consumed by the recommendation
// engine. A nil snapshot means weather-based scoring contributes nothing.
type Snapshot struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
}

// Provider yields the current weather for a location. Implementations may
// fail; callers degrade to scoring without weather terms.
type Provider interface {
	Current(ctx context.Context, at geo.Point) (*Snapshot, error)
}

var mockConditions = []string{"Clear", "Partly Cloudy", "Cloudy", "Light Rain"}

type mockProvider struct {
	cfg *config.Config
	rnd *rand.Rand
}

// NewMock returns the demo provider: randomized readings within the
// configured temperature band. There is no real upstream.
func NewMock(cfg *config.Config, rnd *rand.Rand) Provider {
	log.Info().
		Int("minTemperature", cfg.Weather.MinTemperature).
		Int("maxTemperature", cfg.Weather.MaxTemperature).
		Msg("Mock weather provider initialized")

	return &mockProvider{
		cfg: cfg,
		rnd: rnd,
	}
}

func (p *mockProvider) Current(_ context.Context, _ geo.Point) (*Snapshot, error) {
	span := p.cfg.Weather.MaxTemperature - p.cfg.Weather.MinTemperature
	if span <= 0 {
		span = 1
	}

	return &Snapshot{
		Temperature: float64(p.cfg.Weather.MinTemperature + p.rnd.Intn(span)),
		Condition:   mockConditions[p.rnd.Intn(len(mockConditions))],
		Description: "Pleasant weather for cafe visits",
	}, nil
}
