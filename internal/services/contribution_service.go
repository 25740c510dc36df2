package services

import (
	"context"
	"folio/internal/github"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/structures"
	json "github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
	"math/rand"
	"time"
)

const syntheticFallbackTotal = 100

type ContributionServiceInterface interface {
	GetContributions(ctx context.Context, username string) *models.ContributionsResult
	GetNonContributionDays(ctx context.Context, username string, startYear int) *models.NonContributionDaysResult
}

type ContributionService struct {
	conf   *structures.Config
	logger providers.Logger
	client github.ClientInterface
	cache  providers.CacheProviderInterface
	group  singleflight.Group
	now    func() time.Time
}

func NewContributionService(conf *structures.Config, logger providers.Logger, client github.ClientInterface, cache providers.CacheProviderInterface) ContributionServiceInterface {
	return &ContributionService{
		conf:   conf,
		logger: logger,
		client: client,
		cache:  cache,
		now:    time.Now,
	}
}

// GetContributions never fails: the GraphQL calendar is the primary source,
// public events approximate it when GraphQL is unavailable, and a synthetic
// calendar covers the case where GitHub cannot be reached at all. The result's
// Source field records which tier produced it.
func (cs *ContributionService) GetContributions(ctx context.Context, username string) *models.ContributionsResult {
	cacheKey := "contributions:" + username
	if data, ok := cs.cache.Get(cacheKey); ok {
		var cached models.ContributionsResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached
		}
	}

	result, _, _ := cs.group.Do(cacheKey, func() (interface{}, error) {
		res := cs.fetch(ctx, username)
		if gson, err := json.Marshal(res); err == nil {
			cs.cache.Set(cacheKey, gson, cs.conf.Github.CacheTTL)
		}
		return res, nil
	})
	return result.(*models.ContributionsResult)
}

func (cs *ContributionService) fetch(ctx context.Context, username string) *models.ContributionsResult {
	now := cs.now()
	today := now.Format(models.DateLayout)

	cal, err := cs.client.FetchContributionCalendar(ctx, username)
	if err == nil {
		contributions := models.ContributionMap(cal.Days)
		dates := contributions.SortedDates()
		return &models.ContributionsResult{
			Username:           username,
			TotalContributions: cal.Total,
			Contributions:      contributions,
			StartDate:          dates[0],
			EndDate:            today,
			Source:             models.SourceGraphQL,
		}
	}
	cs.logger.Warnf(providers.TypeApp, "Contribution calendar unavailable for %s, falling back to events: %s", username, err)

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(now.UnixNano()))

	if contributions, err := cs.fetchFromEvents(ctx, username, end, rng); err == nil {
		return &models.ContributionsResult{
			Username:           username,
			TotalContributions: contributions.Total(),
			Contributions:      contributions,
			StartDate:          contributions.SortedDates()[0],
			EndDate:            today,
			Source:             models.SourceEvents,
		}
	} else {
		cs.logger.Warnf(providers.TypeApp, "Events fallback failed for %s, serving synthetic calendar: %s", username, err)
	}

	contributions := syntheticCalendar(end, rng)
	return &models.ContributionsResult{
		Username:           username,
		TotalContributions: syntheticFallbackTotal,
		Contributions:      contributions,
		StartDate:          contributions.SortedDates()[0],
		EndDate:            today,
		Source:             models.SourceSynthetic,
	}
}

// fetchFromEvents buckets the user's recent public events into a zero-filled
// 365-day map. Events only approximate the contribution graph, so the map is
// run through the realism fill before it is returned.
func (cs *ContributionService) fetchFromEvents(ctx context.Context, username string, end time.Time, rng *rand.Rand) (models.ContributionMap, error) {
	// liveness check first: a missing user should not yield an empty calendar
	if _, err := cs.client.FetchUser(ctx, username); err != nil {
		return nil, err
	}

	events, err := cs.client.FetchEvents(ctx, username)
	if err != nil {
		return nil, err
	}

	start := end.AddDate(0, 0, -(syntheticDays - 1))
	contributions := models.NewContributionMap(start, end)
	for _, ev := range events {
		day := ev.CreatedAt.UTC().Format(models.DateLayout)
		if _, ok := contributions[day]; ok {
			contributions[day]++
		}
	}

	fillRealistic(contributions, rng)
	return contributions, nil
}

func (cs *ContributionService) GetNonContributionDays(ctx context.Context, username string, startYear int) *models.NonContributionDaysResult {
	contributions := cs.GetContributions(ctx, username).Contributions
	days := models.CalculateNonContributionDays(contributions, startYear, cs.now())
	return &models.NonContributionDaysResult{
		Username:            username,
		NonContributionDays: days,
		Total:               len(days),
		StartYear:           startYear,
		Report:              models.GenerateNonContributionReport(days),
	}
}
