package refresh

import (
	"context"
	"folio/internal/providers"
	"folio/internal/services"
	"folio/internal/structures"
	"github.com/robfig/cron/v3"
	"time"
)

type SchedulerInterface interface {
	Init()
	Stop()
}

// Scheduler periodically re-fetches the default user's contributions and
// projects so the public pages stay warm and a stale project copy exists
// before a rate-limit window hits.
type Scheduler struct {
	conf          *structures.Config
	logger        providers.Logger
	contributions services.ContributionServiceInterface
	projects      services.ProjectServiceInterface
	cron          *cron.Cron
}

func NewScheduler(conf *structures.Config, logger providers.Logger, contributions services.ContributionServiceInterface, projects services.ProjectServiceInterface) SchedulerInterface {
	return &Scheduler{
		conf:          conf,
		logger:        logger,
		contributions: contributions,
		projects:      projects,
	}
}

func (s *Scheduler) Init() {
	if !s.conf.Refresh.Enabled || s.conf.Refresh.Interval <= 0 {
		s.logger.Infof(providers.TypeApp, "Cache warmer disabled")
		return
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc("@every "+s.conf.Refresh.Interval.String(), s.warm)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to schedule cache warmer: %s", err)
		return
	}
	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Cache warmer running every %s", s.conf.Refresh.Interval)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	username := s.conf.Github.Username
	result := s.contributions.GetContributions(ctx, username)
	s.logger.Infof(providers.TypeApp, "Warmed contributions for %s: %d total (%s)", username, result.TotalContributions, result.Source)

	if _, err := s.projects.GetProjects(ctx, username, s.conf.Github.PortfolioTag); err != nil {
		s.logger.Warnf(providers.TypeApp, "Project warmup failed for %s: %s", username, err)
		return
	}
	s.logger.Infof(providers.TypeApp, "Warmed project list for %s", username)
}
