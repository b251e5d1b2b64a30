package router

import (
	"workbrew/internal/handlers/booking"
	"workbrew/internal/handlers/bookmark"
	"workbrew/internal/handlers/catalog"
	"workbrew/internal/handlers/recommendation"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog        catalog.Handler
	Recommendation recommendation.Handler
	Booking        booking.Handler
	Bookmark       bookmark.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Recommendation.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Bookmark.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
