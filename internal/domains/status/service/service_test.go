package service_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"workbrew/config"
	"workbrew/infras/otel/mocks"
	catalogRepo "workbrew/internal/domains/catalog/repository"
	"workbrew/internal/domains/status/service"
	"workbrew/shared/failure"
)

func newService(t *testing.T, seed int64) service.Status {
	t.Helper()

	catalog, err := catalogRepo.New(&config.Config{}, mocks.NewOtel())
	assert.NoError(t, err)

	return service.New(catalog, mocks.NewOtel(), rand.New(rand.NewSource(seed)))
}

func TestStatusService_Snapshot(t *testing.T) {
	svc := newService(t, 1)

	t.Run("unknown cafe", func(t *testing.T) {
		_, err := svc.Snapshot(context.Background(), "no-such-cafe")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("readings stay within their ranges", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			res, err := svc.Snapshot(context.Background(), "brew-and-code-lekki")
			assert.NoError(t, err)

			assert.Equal(t, "brew-and-code-lekki", res.CafeID)

			assert.GreaterOrEqual(t, res.Occupancy.Percentage, 0)
			assert.Less(t, res.Occupancy.Percentage, 100)
			assert.Contains(t, []string{"low", "medium", "high"}, res.Occupancy.Level)
			assert.GreaterOrEqual(t, res.Occupancy.TotalSeats, 40)
			assert.Less(t, res.Occupancy.TotalSeats, 100)
			assert.GreaterOrEqual(t, res.Occupancy.AvailableSeats, 0)
			assert.LessOrEqual(t, res.Occupancy.AvailableSeats, res.Occupancy.TotalSeats)

			assert.GreaterOrEqual(t, res.Wifi.SpeedMbps, 50)
			assert.Less(t, res.Wifi.SpeedMbps, 200)
			assert.Contains(t, []string{"excellent", "good", "fair", "poor"}, res.Wifi.Quality)
			assert.NotEmpty(t, res.Wifi.LastTested)

			assert.GreaterOrEqual(t, res.Noise.Decibels, 35)
			assert.Less(t, res.Noise.Decibels, 65)
			assert.Contains(t, []string{"quiet", "moderate", "busy"}, res.Noise.Level)

			assert.GreaterOrEqual(t, res.WaitTime.EstimatedMinutes, 0)
			assert.Less(t, res.WaitTime.EstimatedMinutes, 20)

			assert.GreaterOrEqual(t, res.PowerOutlets.Available, 0)
			assert.Less(t, res.PowerOutlets.Available, 15)
			assert.Equal(t, 20, res.PowerOutlets.Total)

			assert.NotEmpty(t, res.LastUpdated)
		}
	})

	t.Run("level matches the drawn percentage", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			res, err := svc.Snapshot(context.Background(), "night-owl-yaba")
			assert.NoError(t, err)

			switch {
			case res.Occupancy.Percentage < 30:
				assert.Equal(t, "low", res.Occupancy.Level)
			case res.Occupancy.Percentage < 70:
				assert.Equal(t, "medium", res.Occupancy.Level)
			default:
				assert.Equal(t, "high", res.Occupancy.Level)
			}
		}
	})

	t.Run("same seed draws the same readings", func(t *testing.T) {
		first, err := newService(t, 42).Snapshot(context.Background(), "brew-and-code-lekki")
		assert.NoError(t, err)

		second, err := newService(t, 42).Snapshot(context.Background(), "brew-and-code-lekki")
		assert.NoError(t, err)

		assert.Equal(t, first.Occupancy, second.Occupancy)
		assert.Equal(t, first.Wifi.SpeedMbps, second.Wifi.SpeedMbps)
		assert.Equal(t, first.Noise, second.Noise)
		assert.Equal(t, first.WaitTime, second.WaitTime)
		assert.Equal(t, first.PowerOutlets, second.PowerOutlets)
	})
}
