package controllers

import (
	"errors"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/services"
	"folio/internal/structures"
	"net/http"
	"strconv"
	"time"
)

type GithubController struct {
	logger        providers.Logger
	conf          *structures.Config
	contributions services.ContributionServiceInterface
	projects      services.ProjectServiceInterface
}

func NewGithubController(conf *structures.Config, logger providers.Logger, contributions services.ContributionServiceInterface, projects services.ProjectServiceInterface) *GithubController {
	return &GithubController{
		logger:        logger,
		conf:          conf,
		contributions: contributions,
		projects:      projects,
	}
}

func (gc *GithubController) username(r *http.Request) string {
	if username := r.URL.Query().Get("username"); username != "" {
		return username
	}
	return gc.conf.Github.Username
}

func (gc *GithubController) GetContributions(w http.ResponseWriter, r *http.Request) {
	result := gc.contributions.GetContributions(r.Context(), gc.username(r))
	writeJSON(w, http.StatusOK, result)
}

func (gc *GithubController) GetNonContributionDays(w http.ResponseWriter, r *http.Request) {
	startYear := gc.conf.Github.StartYear
	if raw := r.URL.Query().Get("startYear"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "startYear must be an integer")
			return
		}
		startYear = parsed
	}

	result := gc.contributions.GetNonContributionDays(r.Context(), gc.username(r), startYear)
	writeJSON(w, http.StatusOK, result)
}

type rateLimitResponse struct {
	Error    string                 `json:"error"`
	Details  string                 `json:"details"`
	Fallback []models.FormattedRepo `json:"fallback"`
}

func (gc *GithubController) GetProjects(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "Username parameter is required")
		return
	}

	portfolioTag := r.URL.Query().Get("portfolioTag")
	if portfolioTag == "" {
		portfolioTag = gc.conf.Github.PortfolioTag
	}

	projects, err := gc.projects.GetProjects(r.Context(), username, portfolioTag)
	if err != nil {
		var rateErr *services.RateLimitError
		if errors.As(err, &rateErr) {
			writeJSON(w, http.StatusTooManyRequests, rateLimitResponse{
				Error:    "GitHub rate limit exceeded",
				Details:  rateLimitDetails(rateErr),
				Fallback: []models.FormattedRepo{},
			})
			return
		}
		gc.logger.Errorf(providers.TypeGet, "Project aggregation failed for %s: %s", username, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func rateLimitDetails(err *services.RateLimitError) string {
	if err.Remaining < 0 {
		return "quota state unknown"
	}
	return strconv.Itoa(err.Remaining) + " requests remaining, resets at " + err.Reset.UTC().Format(time.RFC3339)
}
