package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"folio/internal/providers"
	"folio/internal/structures"
	json "github.com/goccy/go-json"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL    = "https://api.github.com"
	defaultGraphQLURL = "https://api.github.com/graphql"
)

// APIError is a non-2xx response from the GitHub API.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: unexpected status %d from %s", e.StatusCode, e.URL)
}

func IsRateLimited(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusForbidden || apiErr.StatusCode == http.StatusTooManyRequests
}

type ClientInterface interface {
	FetchContributionCalendar(ctx context.Context, username string) (*Calendar, error)
	FetchUser(ctx context.Context, username string) (*User, error)
	FetchEvents(ctx context.Context, username string) ([]Event, error)
	FetchRepos(ctx context.Context, username string) ([]Repo, error)
	FetchTopics(ctx context.Context, fullName string) ([]string, error)
	FetchLanguages(ctx context.Context, fullName string) (map[string]int, error)
	FetchSocialPreview(ctx context.Context, owner, name string) (*SocialPreview, error)
	RateLimit() (int, time.Time)
}

type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	graphqlURL string
	tracker    *RateTracker
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) ClientInterface {
	tracker := NewRateTracker()
	return &Client{
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: tracker.Middleware(http.DefaultTransport),
		},
		token:      conf.Github.Token,
		baseURL:    defaultBaseURL,
		graphqlURL: defaultGraphQLURL,
		tracker:    tracker,
		logger:     logger,
		metrics:    metrics,
	}
}

func (c *Client) RateLimit() (int, time.Time) {
	return c.tracker.Snapshot()
}

func (c *Client) makeRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	c.metrics.IncUpstreamRequests("github", resp.StatusCode)
	c.metrics.ObserveUpstreamDuration("github", time.Since(start))
	return resp, nil
}

// getJSON fetches a REST path and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	resp, err := c.makeRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}

// postGraphQL runs a GraphQL query and decodes the response into out.
func (c *Client) postGraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	resp, err := c.makeRequest(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, URL: c.graphqlURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode graphql response: %w", err)
	}
	return nil
}

const calendarQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks { contributionDays { date contributionCount } }
      }
    }
  }
}`

func (c *Client) FetchContributionCalendar(ctx context.Context, username string) (*Calendar, error) {
	var decoded calendarResponse
	err := c.postGraphQL(ctx, calendarQuery, map[string]any{"login": username}, &decoded)
	if err != nil {
		return nil, err
	}
	// a 200 with a missing user node is still a failed lookup
	if decoded.Data.User == nil {
		return nil, fmt.Errorf("github: no contribution data for user %q", username)
	}

	calendar := decoded.Data.User.ContributionsCollection.ContributionCalendar
	cal := &Calendar{
		Total: calendar.TotalContributions,
		Days:  make(map[string]int),
	}
	for _, week := range calendar.Weeks {
		for _, day := range week.ContributionDays {
			cal.Days[day.Date] = day.ContributionCount
		}
	}
	if len(cal.Days) == 0 {
		return nil, fmt.Errorf("github: empty contribution calendar for user %q", username)
	}
	return cal, nil
}

const socialPreviewQuery = `query($owner: String!, $name: String!) {
  repository(owner: $owner, name: $name) {
    openGraphImageUrl
    usesCustomOpenGraphImage
  }
}`

func (c *Client) FetchSocialPreview(ctx context.Context, owner, name string) (*SocialPreview, error) {
	var decoded socialPreviewResponse
	err := c.postGraphQL(ctx, socialPreviewQuery, map[string]any{"owner": owner, "name": name}, &decoded)
	if err != nil {
		return nil, err
	}
	if decoded.Data.Repository == nil {
		return nil, fmt.Errorf("github: no social preview for %s/%s", owner, name)
	}
	return &SocialPreview{
		ImageURL: decoded.Data.Repository.OpenGraphImageURL,
		Custom:   decoded.Data.Repository.UsesCustomOpenGraphImage,
	}, nil
}

func (c *Client) FetchUser(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/users/"+username, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) FetchEvents(ctx context.Context, username string) ([]Event, error) {
	var events []Event
	if err := c.getJSON(ctx, "/users/"+username+"/events?per_page=100", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) FetchRepos(ctx context.Context, username string) ([]Repo, error) {
	var repos []Repo
	if err := c.getJSON(ctx, "/users/"+username+"/repos?per_page=100&sort=updated", &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

func (c *Client) FetchTopics(ctx context.Context, fullName string) ([]string, error) {
	var topics topicsResponse
	if err := c.getJSON(ctx, "/repos/"+fullName+"/topics", &topics); err != nil {
		return nil, err
	}
	return topics.Names, nil
}

func (c *Client) FetchLanguages(ctx context.Context, fullName string) (map[string]int, error) {
	languages := make(map[string]int)
	if err := c.getJSON(ctx, "/repos/"+fullName+"/languages", &languages); err != nil {
		return nil, err
	}
	return languages, nil
}
