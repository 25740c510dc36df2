package services

import (
	"context"
	"fmt"
	"folio/internal/github"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/structures"
	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"strings"
	"time"
)

// RateLimitError reports an exhausted GitHub quota with whatever diagnostics
// the last upstream response carried.
type RateLimitError struct {
	Remaining int
	Reset     time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github rate limit exceeded: %d remaining, resets at %s", e.Remaining, e.Reset.Format(time.RFC3339))
}

type ProjectServiceInterface interface {
	GetProjects(ctx context.Context, username, portfolioTag string) ([]models.FormattedRepo, error)
}

type ProjectService struct {
	conf   *structures.Config
	logger providers.Logger
	client github.ClientInterface
	cache  providers.CacheProviderInterface
	group  singleflight.Group
}

func NewProjectService(conf *structures.Config, logger providers.Logger, client github.ClientInterface, cache providers.CacheProviderInterface) ProjectServiceInterface {
	return &ProjectService{
		conf:   conf,
		logger: logger,
		client: client,
		cache:  cache,
	}
}

func (ps *ProjectService) GetProjects(ctx context.Context, username, portfolioTag string) ([]models.FormattedRepo, error) {
	cacheKey := "projects:" + username + ":" + portfolioTag
	if data, ok := ps.cache.Get(cacheKey); ok {
		var cached []models.FormattedRepo
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	result, err, _ := ps.group.Do(cacheKey, func() (interface{}, error) {
		projects, err := ps.aggregate(ctx, username, portfolioTag)
		if err != nil {
			if github.IsRateLimited(err) {
				if stale, ok := ps.cache.Get("stale:" + cacheKey); ok {
					var cached []models.FormattedRepo
					if uerr := json.Unmarshal(stale, &cached); uerr == nil {
						ps.logger.Warnf(providers.TypeApp, "GitHub rate limited, serving stale project list for %s", username)
						return cached, nil
					}
				}
				remaining, reset := ps.client.RateLimit()
				return nil, &RateLimitError{Remaining: remaining, Reset: reset}
			}
			return nil, err
		}
		if gson, merr := json.Marshal(projects); merr == nil {
			ps.cache.Set(cacheKey, gson, ps.conf.Github.CacheTTL)
			// long-lived shadow copy served when the quota runs out
			ps.cache.Set("stale:"+cacheKey, gson, ps.conf.Github.StaleTTL)
		}
		return projects, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.FormattedRepo), nil
}

type projectCandidate struct {
	repo   github.Repo
	topics []string
}

func (ps *ProjectService) aggregate(ctx context.Context, username, portfolioTag string) ([]models.FormattedRepo, error) {
	repos, err := ps.listRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	// topics decide inclusion, fetched one call per repo with bounded fan-out
	candidates := make([]*projectCandidate, len(repos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ps.conf.Github.Concurrency)
	for i, repo := range repos {
		g.Go(func() error {
			topics, err := ps.listTopics(gctx, repo.FullName)
			if err != nil {
				return err
			}
			if containsTopic(topics, portfolioTag) {
				candidates[i] = &projectCandidate{repo: repo, topics: topics}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	formatted := make([]models.FormattedRepo, len(candidates))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(ps.conf.Github.Concurrency)
	for i, candidate := range candidates {
		if candidate == nil {
			continue
		}
		g.Go(func() error {
			repo, err := ps.enrich(gctx, candidate)
			if err != nil {
				return err
			}
			formatted[i] = repo
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	projects := make([]models.FormattedRepo, 0, len(candidates))
	for i, candidate := range candidates {
		if candidate != nil {
			projects = append(projects, formatted[i])
		}
	}
	return mergeWithStatic(projects), nil
}

// enrich adds the language and social-preview lookups to a qualifying repo.
// Rate limiting aborts the whole aggregation; any other enrichment failure
// degrades to defaults so one broken repo cannot empty the portfolio.
func (ps *ProjectService) enrich(ctx context.Context, candidate *projectCandidate) (models.FormattedRepo, error) {
	repo := candidate.repo

	languages, err := ps.client.FetchLanguages(ctx, repo.FullName)
	if err != nil {
		if github.IsRateLimited(err) {
			return models.FormattedRepo{}, err
		}
		ps.logger.Warnf(providers.TypeApp, "Language lookup failed for %s: %s", repo.FullName, err)
		languages = nil
	}

	image := models.PlaceholderImage
	owner, name, ok := splitFullName(repo.FullName)
	if ok {
		preview, err := ps.client.FetchSocialPreview(ctx, owner, name)
		switch {
		case err == nil:
			if preview.Custom && preview.ImageURL != "" {
				image = preview.ImageURL
			}
		case github.IsRateLimited(err):
			return models.FormattedRepo{}, err
		default:
			ps.logger.Warnf(providers.TypeApp, "Social preview lookup failed for %s: %s", repo.FullName, err)
		}
	}

	link := repo.Homepage
	if link == "" {
		link = repo.HTMLURL
	}

	return models.FormattedRepo{
		Image:       image,
		Category:    models.InferCategory(candidate.topics),
		Name:        repo.Name,
		Description: repo.Description,
		Link:        link,
		Github:      repo.HTMLURL,
		Language:    models.MapLanguage(models.PrimaryLanguage(languages), candidate.topics),
		Tags:        candidate.topics,
	}, nil
}

func (ps *ProjectService) listRepos(ctx context.Context, username string) ([]github.Repo, error) {
	cacheKey := "repos:" + username
	if data, ok := ps.cache.Get(cacheKey); ok {
		var cached []github.Repo
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	repos, err := ps.client.FetchRepos(ctx, username)
	if err != nil {
		return nil, err
	}
	if gson, err := json.Marshal(repos); err == nil {
		ps.cache.Set(cacheKey, gson, ps.conf.Github.CacheTTL)
	}
	return repos, nil
}

func (ps *ProjectService) listTopics(ctx context.Context, fullName string) ([]string, error) {
	cacheKey := "topics:" + fullName
	if data, ok := ps.cache.Get(cacheKey); ok {
		var cached []string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	topics, err := ps.client.FetchTopics(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if gson, err := json.Marshal(topics); err == nil {
		ps.cache.Set(cacheKey, gson, ps.conf.Github.CacheTTL)
	}
	return topics, nil
}

func containsTopic(topics []string, tag string) bool {
	for _, t := range topics {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func splitFullName(fullName string) (owner, name string, ok bool) {
	owner, name, ok = strings.Cut(fullName, "/")
	return
}

// mergeWithStatic prepends the bundled project list and drops fetched repos
// that collide with it by name or GitHub URL.
func mergeWithStatic(fetched []models.FormattedRepo) []models.FormattedRepo {
	projects := make([]models.FormattedRepo, 0, len(models.StaticProjects)+len(fetched))
	projects = append(projects, models.StaticProjects...)

	seen := make(map[string]bool, len(models.StaticProjects)*2)
	for _, p := range models.StaticProjects {
		seen[strings.ToLower(p.Name)] = true
		seen[strings.ToLower(p.Github)] = true
	}
	for _, p := range fetched {
		if seen[strings.ToLower(p.Name)] || seen[strings.ToLower(p.Github)] {
			continue
		}
		projects = append(projects, p)
	}
	return projects
}
