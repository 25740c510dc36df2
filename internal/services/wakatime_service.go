package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/structures"
	json "github.com/goccy/go-json"
	"net/http"
	"time"
)

const defaultWakatimeURL = "https://wakatime.com/api/v1"

var ErrNoAPIKey = errors.New("wakatime api key is not configured")

type WakatimeServiceInterface interface {
	GetStats(ctx context.Context) (*models.WakatimeStats, error)
	GetUser(ctx context.Context) (*models.WakatimeUser, error)
}

type WakatimeService struct {
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewWakatimeService(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) WakatimeServiceInterface {
	return &WakatimeService{
		logger:     logger,
		metrics:    metrics,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultWakatimeURL,
		apiKey:     conf.Wakatime.APIKey,
	}
}

func (ws *WakatimeService) getJSON(ctx context.Context, path string, out any) error {
	if ws.apiKey == "" {
		return ErrNoAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ws.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(ws.apiKey)))

	start := time.Now()
	resp, err := ws.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wakatime request failed: %w", err)
	}
	defer resp.Body.Close()
	ws.metrics.IncUpstreamRequests("wakatime", resp.StatusCode)
	ws.metrics.ObserveUpstreamDuration("wakatime", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wakatime returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode wakatime response: %w", err)
	}
	return nil
}

type wakatimeStatsResponse struct {
	Data struct {
		HumanReadableTotal        string `json:"human_readable_total"`
		HumanReadableDailyAverage string `json:"human_readable_daily_average"`
		BestDay                   struct {
			Date string `json:"date"`
			Text string `json:"text"`
		} `json:"best_day"`
		Languages []struct {
			Name    string  `json:"name"`
			Percent float64 `json:"percent"`
			Text    string  `json:"text"`
		} `json:"languages"`
	} `json:"data"`
}

func (ws *WakatimeService) GetStats(ctx context.Context) (*models.WakatimeStats, error) {
	var upstream wakatimeStatsResponse
	if err := ws.getJSON(ctx, "/users/current/stats/last_7_days", &upstream); err != nil {
		return nil, err
	}

	stats := &models.WakatimeStats{
		TotalTime:    upstream.Data.HumanReadableTotal,
		DailyAverage: upstream.Data.HumanReadableDailyAverage,
		BestDayDate:  upstream.Data.BestDay.Date,
		BestDayText:  upstream.Data.BestDay.Text,
		Languages:    make([]models.WakatimeLanguage, 0, len(upstream.Data.Languages)),
	}
	for _, lang := range upstream.Data.Languages {
		stats.Languages = append(stats.Languages, models.WakatimeLanguage{
			Name:    lang.Name,
			Percent: lang.Percent,
			Text:    lang.Text,
		})
	}
	return stats, nil
}

type wakatimeUserResponse struct {
	Data struct {
		Username    string `json:"username"`
		DisplayName string `json:"display_name"`
		Photo       string `json:"photo"`
		Website     string `json:"website"`
		City        struct {
			Title string `json:"title"`
		} `json:"city"`
		CreatedAt string `json:"created_at"`
	} `json:"data"`
}

func (ws *WakatimeService) GetUser(ctx context.Context) (*models.WakatimeUser, error) {
	var upstream wakatimeUserResponse
	if err := ws.getJSON(ctx, "/users/current", &upstream); err != nil {
		return nil, err
	}

	return &models.WakatimeUser{
		Username:    upstream.Data.Username,
		DisplayName: upstream.Data.DisplayName,
		Photo:       upstream.Data.Photo,
		Website:     upstream.Data.Website,
		Location:    upstream.Data.City.Title,
		CreatedAt:   upstream.Data.CreatedAt,
	}, nil
}
