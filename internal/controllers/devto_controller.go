package controllers

import (
	"folio/internal/providers"
	"folio/internal/services"
	"folio/internal/structures"
	"net/http"
)

type DevtoController struct {
	logger  providers.Logger
	conf    *structures.Config
	service services.DevtoServiceInterface
}

func NewDevtoController(conf *structures.Config, logger providers.Logger, service services.DevtoServiceInterface) *DevtoController {
	return &DevtoController{
		logger:  logger,
		conf:    conf,
		service: service,
	}
}

func (dc *DevtoController) GetArticles(w http.ResponseWriter, r *http.Request) {
	setNoCacheHeaders(w)

	username := r.URL.Query().Get("username")
	if username == "" {
		username = dc.conf.Devto.Username
	}

	articles, err := dc.service.GetArticles(r.Context(), username)
	if err != nil {
		dc.logger.Errorf(providers.TypeGet, "DEV.to fetch failed for %s: %s", username, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}

	writeJSON(w, http.StatusOK, articles)
}
