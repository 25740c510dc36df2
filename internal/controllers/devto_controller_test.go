package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"folio/internal/models"
	"folio/internal/testutil"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDevtoService struct {
	articlesFn func(ctx context.Context, username string) ([]models.Article, error)
}

func (m *mockDevtoService) GetArticles(ctx context.Context, username string) ([]models.Article, error) {
	return m.articlesFn(ctx, username)
}

func assertNoCacheHeaders(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "no-cache, no-store, must-revalidate, max-age=0, s-maxage=0", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
	assert.Equal(t, "0", rec.Header().Get("Expires"))
	assert.Equal(t, "*", rec.Header().Get("Vary"))
}

func TestGetArticles_Controller(t *testing.T) {
	service := &mockDevtoService{
		articlesFn: func(ctx context.Context, username string) ([]models.Article, error) {
			return []models.Article{{ID: 1, Title: "Hello"}}, nil
		},
	}
	dc := NewDevtoController(controllerConfig(), &testutil.MockLogger{}, service)

	req := httptest.NewRequest(http.MethodGet, "/api/devto?username=octocat", nil)
	rec := httptest.NewRecorder()
	dc.GetArticles(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assertNoCacheHeaders(t, rec)

	var articles []models.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
	require.Len(t, articles, 1)
	assert.Equal(t, "Hello", articles[0].Title)
}

func TestGetArticles_Controller_DefaultUsername(t *testing.T) {
	var requested string
	service := &mockDevtoService{
		articlesFn: func(ctx context.Context, username string) ([]models.Article, error) {
			requested = username
			return []models.Article{}, nil
		},
	}
	dc := NewDevtoController(controllerConfig(), &testutil.MockLogger{}, service)

	req := httptest.NewRequest(http.MethodGet, "/api/devto", nil)
	rec := httptest.NewRecorder()
	dc.GetArticles(rec, req)

	assert.Equal(t, "octocat", requested)
}

func TestGetArticles_Controller_UpstreamFailure(t *testing.T) {
	logger := &testutil.MockLogger{}
	service := &mockDevtoService{
		articlesFn: func(ctx context.Context, username string) ([]models.Article, error) {
			return nil, errors.New("devto is down")
		},
	}
	dc := NewDevtoController(controllerConfig(), logger, service)

	req := httptest.NewRequest(http.MethodGet, "/api/devto", nil)
	rec := httptest.NewRecorder()
	dc.GetArticles(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to fetch articles", resp.Error)
	assert.Equal(t, 1, logger.Count("error"))
}
