package handler

import (
	"net/http"
	"workbrew/config"
	"workbrew/di"
	"workbrew/shared/logger"

	"github.com/rs/zerolog/log"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler, err := di.InitializeService()
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize service")
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	handler.ServeHTTP(w, r)
}
