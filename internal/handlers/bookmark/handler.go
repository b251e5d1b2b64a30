package bookmark

import (
	"net/http"

	"workbrew/infras/otel"
	"workbrew/internal/domains/bookmark/service"
	"workbrew/shared/constant"
	"workbrew/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bookmark
	otel    otel.Otel
}

func New(service service.Bookmark, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookmarks", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookmarks)
		routerGroup.Get("/{id}", handler.GetBookmark)
		routerGroup.Put("/{id}", handler.AddBookmark)
		routerGroup.Delete("/{id}", handler.RemoveBookmark)
	})
}

// GetBookmarks lists all bookmarked cafe IDs.
// @Summary List bookmarks
// @Description Retrieve all bookmarked cafe IDs.
// @Tags Bookmark
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookmarksResponse] "Bookmarked cafe IDs"
// @Failure 500 {object} response.Error
// @Router /v1/bookmarks [get]
func (handler *Handler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookmarks")
	defer scope.End()

	bookmarks, err := handler.service.All(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookmarks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookmarks)
}

// GetBookmark reports whether a cafe is bookmarked.
// @Summary Check a bookmark
// @Description Report whether the given cafe is bookmarked.
// @Tags Bookmark
// @Accept json
// @Produce json
// @Param id path string true "Cafe slug"
// @Success 200 {object} response.Data[dto.ContainsResponse] "Bookmark state"
// @Failure 500 {object} response.Error
// @Router /v1/bookmarks/{id} [get]
func (handler *Handler) GetBookmark(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookmark")
	defer scope.End()

	contains, err := handler.service.Contains(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check bookmark")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contains)
}

// AddBookmark bookmarks a cafe. Re-adding is a no-op.
// @Summary Add a bookmark
// @Description Bookmark a catalog cafe; adding twice is a no-op.
// @Tags Bookmark
// @Accept json
// @Produce json
// @Param id path string true "Cafe slug"
// @Success 200 {object} response.Message "Bookmark added successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookmarks/{id} [put]
func (handler *Handler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddBookmark")
	defer scope.End()

	if err := handler.service.Add(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add bookmark")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookmark added successfully")

	response.WithMessage(w, http.StatusOK, "Bookmark added successfully")
}

// RemoveBookmark removes a bookmark. Removing a missing one is a no-op.
// @Summary Remove a bookmark
// @Description Remove a bookmark; removing a missing one is a no-op.
// @Tags Bookmark
// @Accept json
// @Produce json
// @Param id path string true "Cafe slug"
// @Success 200 {object} response.Message "Bookmark removed successfully"
// @Failure 500 {object} response.Error
// @Router /v1/bookmarks/{id} [delete]
func (handler *Handler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveBookmark")
	defer scope.End()

	if err := handler.service.Remove(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove bookmark")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookmark removed successfully")

	response.WithMessage(w, http.StatusOK, "Bookmark removed successfully")
}
