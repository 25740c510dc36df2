package controllers

import (
	"folio/internal/providers"
	"folio/internal/services"
	"net/http"
)

type WakatimeController struct {
	logger  providers.Logger
	service services.WakatimeServiceInterface
}

func NewWakatimeController(logger providers.Logger, service services.WakatimeServiceInterface) *WakatimeController {
	return &WakatimeController{
		logger:  logger,
		service: service,
	}
}

func (wc *WakatimeController) GetStats(w http.ResponseWriter, r *http.Request) {
	setNoCacheHeaders(w)

	stats, err := wc.service.GetStats(r.Context())
	if err != nil {
		wc.logger.Errorf(providers.TypeGet, "WakaTime stats fetch failed: %s", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch coding stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (wc *WakatimeController) GetUser(w http.ResponseWriter, r *http.Request) {
	setNoCacheHeaders(w)

	user, err := wc.service.GetUser(r.Context())
	if err != nil {
		wc.logger.Errorf(providers.TypeGet, "WakaTime user fetch failed: %s", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user profile")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
