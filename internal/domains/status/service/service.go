package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"math/rand"
	"time"

	"workbrew/infras/otel"
	catalogRepo "workbrew/internal/domains/catalog/repository"
	"workbrew/internal/domains/status/model/dto"
	"workbrew/shared/constant"
	"workbrew/shared/failure"
	"workbrew/shared/timezone"
)

const (
	occupancyLowBelow    = 30
	occupancyMediumBelow = 70

	totalSeatsBase = 40
	totalSeatsSpan = 60

	wifiSpeedBase = 50
	wifiSpeedSpan = 150

	noiseDecibelBase = 35
	noiseDecibelSpan = 30

	maxWaitMinutes = 20

	outletTotal = 20
	outletSpan  = 15
)

type Status interface {
	Snapshot(ctx context.Context, cafeID string) (dto.StatusResponse, error)
}

type serviceImpl struct {
	catalog catalogRepo.Catalog
	otel    otel.Otel
	now     func() time.Time
	rnd     *rand.Rand
}

func New(catalog catalogRepo.Catalog, otl otel.Otel, rnd *rand.Rand) Status {
	return &serviceImpl{
		catalog: catalog,
		otel:    otl,
		now:     timezone.Now,
		rnd:     rnd,
	}
}

// Snapshot fabricates a live reading for the cafe. There is no sensor feed;
// the numbers are drawn fresh on every call.
func (s *serviceImpl) Snapshot(ctx context.Context, cafeID string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.catalog.Exist(ctx, cafeID) {
		return res, failure.NotFound("cafe not found") //nolint:wrapcheck
	}

	now := s.now()

	occupancyPct := s.rnd.Intn(100)
	totalSeats := totalSeatsBase + s.rnd.Intn(totalSeatsSpan)

	res.CafeID = cafeID
	res.Occupancy = dto.OccupancyStatus{
		Level:          occupancyLevel(occupancyPct),
		Percentage:     occupancyPct,
		AvailableSeats: (100 - occupancyPct) * totalSeats / 100,
		TotalSeats:     totalSeats,
	}
	res.Wifi = dto.WifiStatus{
		SpeedMbps:  wifiSpeedBase + s.rnd.Intn(wifiSpeedSpan),
		Quality:    s.wifiQuality(),
		LastTested: timezone.Format(now.Add(-time.Duration(s.rnd.Intn(3600))*time.Second), constant.DateFormat),
	}
	res.Noise = dto.NoiseStatus{
		Level:    s.noiseLevel(),
		Decibels: noiseDecibelBase + s.rnd.Intn(noiseDecibelSpan),
	}
	res.WaitTime = dto.WaitTimeStatus{
		EstimatedMinutes: s.rnd.Intn(maxWaitMinutes),
		HasQueue:         s.rnd.Float64() > 0.7,
	}
	res.PowerOutlets = dto.PowerOutletStatus{
		Available: s.rnd.Intn(outletSpan),
		Total:     outletTotal,
	}
	res.LastUpdated = timezone.Format(now, constant.DateFormat)

	return res, nil
}

func occupancyLevel(percentage int) string {
	switch {
	case percentage < occupancyLowBelow:
		return "low"
	case percentage < occupancyMediumBelow:
		return "medium"
	default:
		return "high"
	}
}

func (s *serviceImpl) wifiQuality() string {
	switch {
	case s.rnd.Float64() > 0.8:
		return "excellent"
	case s.rnd.Float64() > 0.6:
		return "good"
	case s.rnd.Float64() > 0.3:
		return "fair"
	default:
		return "poor"
	}
}

func (s *serviceImpl) noiseLevel() string {
	switch {
	case s.rnd.Float64() > 0.6:
		return "quiet"
	case s.rnd.Float64() > 0.3:
		return "moderate"
	default:
		return "busy"
	}
}
