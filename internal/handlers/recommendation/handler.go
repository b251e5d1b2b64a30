package recommendation

import (
	"net/http"

	"workbrew/infras/otel"
	"workbrew/internal/domains/recommendation/model/dto"
	"workbrew/internal/domains/recommendation/service"
	"workbrew/shared/constant"
	"workbrew/shared/validator"
	"workbrew/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Recommendation
	otel    otel.Otel
}

func New(service service.Recommendation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/recommendations", handler.GetRecommendations)
}

// GetRecommendations ranks cafes for the caller's position.
// @Summary Smart recommendations
// @Description Rank cafes by distance, time of day, weather and catalog signals for the given coordinates.
// @Tags Recommendation
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Caller position"
// @Success 200 {object} response.Data[dto.GetRecommendationsResponse] "Ranked cafes with the weather snapshot used"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/recommendations [post]
func (handler *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecommendations")
	defer scope.End()

	var req dto.RecommendRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	recommendations, err := handler.service.Recommend(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recommendations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recommendations computed successfully")

	response.WithJSON(w, http.StatusOK, recommendations)
}
