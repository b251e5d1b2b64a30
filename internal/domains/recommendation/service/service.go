package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"workbrew/infras/otel"
	"workbrew/infras/weather"
	catalogModel "workbrew/internal/domains/catalog/model"
	catalogRepo "workbrew/internal/domains/catalog/repository"
	"workbrew/internal/domains/recommendation/model"
	"workbrew/internal/domains/recommendation/model/dto"
	"workbrew/shared/constant"
	"workbrew/shared/geo"
	"workbrew/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	scoreVeryClose          = 30
	scoreNearby             = 20
	scoreReasonableDistance = 10
	scoreMorningCoffee      = 15
	scoreLunchMeeting       = 10
	scoreQuietAfternoon     = 12
	scoreEveningSpot        = 8
	scoreRainCover          = 15
	scoreWarmOutdoor        = 10
	scoreColdCoffee         = 8
	scoreFeatured           = 10
	scoreTopRated           = 8
	scoreWellRated          = 5
	scoreOpenNow            = 20
	penaltyClosed           = 10

	veryCloseKm  = 2.0
	nearbyKm     = 5.0
	reasonableKm = 10.0

	warmThresholdC = 25.0
	coldThresholdC = 15.0
)

type Recommendation interface {
	Recommend(ctx context.Context, req dto.RecommendRequest) (dto.GetRecommendationsResponse, error)
}

type serviceImpl struct {
	catalog catalogRepo.Catalog
	weather weather.Provider
	otel    otel.Otel
	now     func() time.Time
}

func New(catalog catalogRepo.Catalog, provider weather.Provider, otl otel.Otel) Recommendation {
	return &serviceImpl{
		catalog: catalog,
		weather: provider,
		otel:    otl,
		now:     timezone.Now,
	}
}

// Recommend ranks the whole catalog against the caller's position, the
// current hour and the weather reading, and returns the top entries. A
// failing weather provider only drops the weather terms; it never fails the
// request.
func (s *serviceImpl) Recommend(ctx context.Context, req dto.RecommendRequest) (res dto.GetRecommendationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recommend")
	defer scope.End()
	defer scope.TraceIfError(err)

	origin := geo.Point{Lat: *req.Latitude, Lng: *req.Longitude}
	now := s.now()

	snapshot, weatherErr := s.weather.Current(ctx, origin)
	if weatherErr != nil {
		log.Warn().Err(weatherErr).Msg("weather unavailable, scoring without weather terms")

		snapshot = nil
	}

	cafes := s.catalog.All(ctx)
	ranked := make([]model.Recommendation, 0, len(cafes))

	for _, cafe := range cafes {
		ranked = append(ranked, score(cafe, origin, now, snapshot))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})

	limit := req.Limit
	if limit <= 0 || limit > model.MaxResults {
		limit = model.MaxResults
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res.FromModels(ranked, snapshot)

	return res, nil
}

func score(cafe catalogModel.Cafe, origin geo.Point, now time.Time, snapshot *weather.Snapshot) model.Recommendation {
	rec := model.Recommendation{
		Cafe:       cafe,
		DistanceKm: geo.DistanceKm(origin, cafe.Location()),
	}

	scoreDistance(&rec)
	scoreTimeOfDay(&rec, now.Hour())
	scoreWeather(&rec, snapshot)

	if cafe.Featured {
		rec.Priority += scoreFeatured
	}

	switch {
	case cafe.Rating >= 4.7:
		rec.Priority += scoreTopRated
	case cafe.Rating >= 4.5:
		rec.Priority += scoreWellRated
	}

	if isOpenAt(cafe, now) {
		rec.Priority += scoreOpenNow
		rec.Reasons = append(rec.Reasons, "Open now")
	} else {
		rec.Priority -= penaltyClosed
		rec.Reasons = append(rec.Reasons, "Currently closed")
	}

	return rec
}

func scoreDistance(rec *model.Recommendation) {
	switch {
	case rec.DistanceKm < veryCloseKm:
		rec.Priority += scoreVeryClose
		rec.Reasons = append(rec.Reasons, "Very close to you")
	case rec.DistanceKm < nearbyKm:
		rec.Priority += scoreNearby
		rec.Reasons = append(rec.Reasons, "Nearby location")
	case rec.DistanceKm < reasonableKm:
		rec.Priority += scoreReasonableDistance
		rec.Reasons = append(rec.Reasons, "Within reasonable distance")
	}
}

func scoreTimeOfDay(rec *model.Recommendation, hour int) {
	cafe := rec.Cafe

	switch {
	case hour >= 6 && hour < 10:
		if cafe.HasAmenity("coffee-bar") {
			rec.Priority += scoreMorningCoffee
			rec.Reasons = append(rec.Reasons, "Perfect for morning coffee")
			rec.TimeMatch = true
		}
	case hour >= 10 && hour < 14:
		if cafe.HasAmenity("food-menu") {
			rec.Priority += scoreLunchMeeting
			rec.Reasons = append(rec.Reasons, "Good for lunch meetings")
			rec.TimeMatch = true
		}
	case hour >= 14 && hour < 18:
		if cafe.HasAmenity("quiet-zone") {
			rec.Priority += scoreQuietAfternoon
			rec.Reasons = append(rec.Reasons, "Quiet afternoon workspace")
			rec.TimeMatch = true
		}
	default:
		if cafe.HasAnyAmenity("events-space", "outdoor-seating") {
			rec.Priority += scoreEveningSpot
			rec.Reasons = append(rec.Reasons, "Great evening atmosphere")
			rec.TimeMatch = true
		}
	}
}

func scoreWeather(rec *model.Recommendation, snapshot *weather.Snapshot) {
	if snapshot == nil {
		return
	}

	cafe := rec.Cafe

	if strings.Contains(strings.ToLower(snapshot.Condition), "rain") && cafe.HasAnyAmenity("parking", "meeting-rooms") {
		rec.Priority += scoreRainCover
		rec.Reasons = append(rec.Reasons, "Covered parking for rainy weather")
		rec.WeatherMatch = true
	}

	if snapshot.Temperature > warmThresholdC && cafe.HasAmenity("outdoor-seating") {
		rec.Priority += scoreWarmOutdoor
		rec.Reasons = append(rec.Reasons, "Great weather for outdoor seating")
		rec.WeatherMatch = true
	}

	if snapshot.Temperature < coldThresholdC && cafe.HasAmenity("coffee-bar") {
		rec.Priority += scoreColdCoffee
		rec.Reasons = append(rec.Reasons, "Warm up with great coffee")
		rec.WeatherMatch = true
	}
}
