package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"workbrew/infras/otel"
	"workbrew/internal/domains/catalog/model/dto"
	"workbrew/internal/domains/catalog/service"
	statusService "workbrew/internal/domains/status/service"
	"workbrew/shared/constant"
	gDto "workbrew/shared/dto"
	"workbrew/shared/failure"
	"workbrew/shared/validator"
	"workbrew/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves the catalog surface. The live-status endpoint lives here
// too because it nests under /cafes/{slug}.
type Handler struct {
	service service.Catalog
	status  statusService.Status
	otel    otel.Otel
}

func New(service service.Catalog, status statusService.Status, otel otel.Otel) Handler {
	return Handler{
		service: service,
		status:  status,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cafes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCafes)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/{slug}", handler.GetCafeBySlug)
		routerGroup.Get("/{slug}/status", handler.GetCafeStatus)
	})
}

// GetCafes retrieves catalog entries with optional filtering.
// @Summary List cafes
// @Description Retrieve all cafes, optionally filtered by search text, amenities and minimum rating.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param search query string false "Substring match on name or address"
// @Param amenities query string false "Comma-separated amenity tags, all must be present"
// @Param min_rating query number false "Minimum rating"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.GetCafesResponse] "List of cafes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cafes [get]
func (handler *Handler) GetCafes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCafes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := dto.ListCafesFilter{
		Search: r.URL.Query().Get(constant.RequestParamSearch),
	}

	if raw := r.URL.Query().Get(constant.RequestParamAmenities); raw != constant.Empty {
		for _, amenity := range strings.Split(raw, ",") {
			if amenity = strings.TrimSpace(amenity); amenity != constant.Empty {
				filter.Amenities = append(filter.Amenities, amenity)
			}
		}
	}

	if raw := r.URL.Query().Get(constant.RequestParamMinRating); raw != constant.Empty {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid min_rating parameter"))

			return
		}

		filter.MinRating = minRating
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	cafes, err := handler.service.List(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cafes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cafes retrieved successfully")

	response.WithJSON(w, http.StatusOK, cafes)
}

// GetStats summarizes the catalog.
// @Summary Catalog statistics
// @Description Retrieve total count, average rating, featured count and regions.
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Catalog statistics"
// @Failure 500 {object} response.Error
// @Router /v1/cafes/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get catalog stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetCafeBySlug retrieves a single cafe.
// @Summary Get a cafe
// @Description Retrieve a cafe by its slug.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param slug path string true "Cafe slug"
// @Success 200 {object} response.Data[dto.CafeResponse] "Cafe details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cafes/{slug} [get]
func (handler *Handler) GetCafeBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCafeBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	cafe, err := handler.service.Get(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cafe by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cafe retrieved successfully")

	response.WithJSON(w, http.StatusOK, cafe)
}

// GetCafeStatus returns the simulated live snapshot of a cafe.
// @Summary Live cafe status
// @Description Retrieve the current occupancy, wifi, noise, wait time and power outlet snapshot.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param slug path string true "Cafe slug"
// @Success 200 {object} response.Data[statusDto.StatusResponse] "Live status snapshot"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cafes/{slug}/status [get]
func (handler *Handler) GetCafeStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCafeStatus")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	snapshot, err := handler.status.Snapshot(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cafe status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, snapshot)
}
