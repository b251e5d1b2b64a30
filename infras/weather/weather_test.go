package weather_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"workbrew/config"
	"workbrew/infras/weather"
	"workbrew/shared/geo"
)

func TestMockProvider_Current(t *testing.T) {
	cfg := &config.Config{}
	cfg.Weather.MinTemperature = 18
	cfg.Weather.MaxTemperature = 35

	provider := weather.NewMock(cfg, rand.New(rand.NewSource(1)))

	for i := 0; i < 50; i++ {
		snapshot, err := provider.Current(context.Background(), geo.Point{Lat: 6.5, Lng: 3.37})

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, snapshot.Temperature, 18.0)
		assert.Less(t, snapshot.Temperature, 35.0)
		assert.Contains(t, []string{"Clear", "Partly Cloudy", "Cloudy", "Light Rain"}, snapshot.Condition)
		assert.NotEmpty(t, snapshot.Description)
	}
}

func TestMockProvider_Current_DegenerateBand(t *testing.T) {
	cfg := &config.Config{}
	cfg.Weather.MinTemperature = 25
	cfg.Weather.MaxTemperature = 25

	provider := weather.NewMock(cfg, rand.New(rand.NewSource(1)))

	snapshot, err := provider.Current(context.Background(), geo.Point{})

	assert.NoError(t, err)
	assert.Equal(t, 25.0, snapshot.Temperature)
}
