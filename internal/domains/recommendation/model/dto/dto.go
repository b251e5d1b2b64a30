package dto

import (
	"math"
	"strings"

	"workbrew/infras/weather"
	catalogDto "workbrew/internal/domains/catalog/model/dto"
	"workbrew/internal/domains/recommendation/model"
	"workbrew/shared/constant"
)

// RecommendRequest carries the caller's position. Coordinates are pointers so
// 0.0 (the equator and the prime meridian) stays distinguishable from a
// missing field.
type RecommendRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Limit     int      `json:"limit"     validate:"omitempty,min=1,max=8"`
}

type RecommendationResponse struct {
	Cafe         catalogDto.CafeResponse `json:"cafe"`
	DistanceKm   float64                 `json:"distance_km"`
	Priority     int                     `json:"priority"`
	Reason       string                  `json:"reason"`
	TimeMatch    bool                    `json:"time_match"`
	WeatherMatch bool                    `json:"weather_match"`
}

func (r *RecommendationResponse) FromModel(mod model.Recommendation) {
	r.Cafe.FromModel(mod.Cafe)
	r.DistanceKm = math.Round(mod.DistanceKm*10) / 10
	r.Priority = mod.Priority
	r.Reason = strings.Join(mod.Reasons, constant.ReasonSeparator)
	r.TimeMatch = mod.TimeMatch
	r.WeatherMatch = mod.WeatherMatch
}

type WeatherResponse struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
}

type GetRecommendationsResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Weather         *WeatherResponse         `json:"weather,omitempty"`
}

func (r *GetRecommendationsResponse) FromModels(models []model.Recommendation, snapshot *weather.Snapshot) {
	r.Recommendations = make([]RecommendationResponse, len(models))
	for i, mod := range models {
		r.Recommendations[i].FromModel(mod)
	}

	if snapshot != nil {
		r.Weather = &WeatherResponse{
			Temperature: snapshot.Temperature,
			Condition:   snapshot.Condition,
			Description: snapshot.Description,
		}
	}
}
