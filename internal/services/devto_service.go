package services

import (
	"context"
	"fmt"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/structures"
	json "github.com/goccy/go-json"
	"net/http"
	"net/url"
	"time"
)

const defaultDevtoURL = "https://dev.to/api"

type DevtoServiceInterface interface {
	GetArticles(ctx context.Context, username string) ([]models.Article, error)
}

type DevtoService struct {
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	httpClient *http.Client
	baseURL    string
}

func NewDevtoService(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) DevtoServiceInterface {
	return &DevtoService{
		logger:     logger,
		metrics:    metrics,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultDevtoURL,
	}
}

// devtoArticle is the upstream shape; only the displayed fields are kept.
type devtoArticle struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	URL                string   `json:"url"`
	CoverImage         string   `json:"cover_image"`
	PublishedAt        string   `json:"published_at"`
	TagList            []string `json:"tag_list"`
	PositiveReactions  int      `json:"positive_reactions_count"`
	Comments           int      `json:"comments_count"`
	ReadingTimeMinutes int      `json:"reading_time_minutes"`
}

func (ds *DevtoService) GetArticles(ctx context.Context, username string) ([]models.Article, error) {
	reqURL := ds.baseURL + "/articles?username=" + url.QueryEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := ds.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("devto request failed: %w", err)
	}
	defer resp.Body.Close()
	ds.metrics.IncUpstreamRequests("devto", resp.StatusCode)
	ds.metrics.ObserveUpstreamDuration("devto", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("devto returned status %d", resp.StatusCode)
	}

	var upstream []devtoArticle
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("failed to decode devto response: %w", err)
	}

	articles := make([]models.Article, 0, len(upstream))
	for _, a := range upstream {
		cover := a.CoverImage
		if cover == "" {
			cover = models.ArticlePlaceholderImage
		}
		articles = append(articles, models.Article{
			ID:                 a.ID,
			Title:              a.Title,
			Description:        a.Description,
			URL:                a.URL,
			CoverImage:         cover,
			PublishedAt:        a.PublishedAt,
			Tags:               a.TagList,
			PositiveReactions:  a.PositiveReactions,
			Comments:           a.Comments,
			ReadingTimeMinutes: a.ReadingTimeMinutes,
		})
	}
	return articles, nil
}
