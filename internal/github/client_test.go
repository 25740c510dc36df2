package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"folio/internal/structures"
	"folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conf := &structures.Config{}
	conf.Github.Token = "test-token"
	client := NewClient(conf, &testutil.MockLogger{}, testutil.NewMockMetrics()).(*Client)
	client.baseURL = server.URL
	client.graphqlURL = server.URL + "/graphql"
	return client, server
}

func TestFetchUser(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.Write([]byte(`{"login":"octocat","name":"The Octocat","public_repos":8}`))
	}))

	user, err := client.FetchUser(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Equal(t, 8, user.PublicRepos)
}

func TestFetchUser_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.FetchUser(context.Background(), "nosuchuser")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.False(t, IsRateLimited(err))
}

func TestFetchEvents(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/events", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[
			{"type":"PushEvent","created_at":"2024-03-01T10:00:00Z"},
			{"type":"IssuesEvent","created_at":"2024-03-02T11:30:00Z"}
		]`))
	}))

	events, err := client.FetchEvents(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "PushEvent", events[0].Type)
	assert.Equal(t, 2024, events[0].CreatedAt.Year())
}

func TestFetchRepos(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"name":"folio","full_name":"octocat/folio","html_url":"https://github.com/octocat/folio","language":"Go"},
			{"id":2,"name":"old","full_name":"octocat/old","fork":true}
		]`))
	}))

	repos, err := client.FetchRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "octocat/folio", repos[0].FullName)
	assert.True(t, repos[1].Fork)
}

func TestFetchTopics(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/folio/topics", r.URL.Path)
		w.Write([]byte(`{"names":["portfolio","react","frontend"]}`))
	}))

	topics, err := client.FetchTopics(context.Background(), "octocat/folio")
	require.NoError(t, err)
	assert.Equal(t, []string{"portfolio", "react", "frontend"}, topics)
}

func TestFetchLanguages(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/folio/languages", r.URL.Path)
		w.Write([]byte(`{"TypeScript":54200,"CSS":1200}`))
	}))

	languages, err := client.FetchLanguages(context.Background(), "octocat/folio")
	require.NoError(t, err)
	assert.Equal(t, 54200, languages["TypeScript"])
	assert.Equal(t, 1200, languages["CSS"])
}

func TestFetchContributionCalendar(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"data":{"user":{"contributionsCollection":{"contributionCalendar":{
			"totalContributions":42,
			"weeks":[
				{"contributionDays":[{"date":"2024-03-01","contributionCount":3},{"date":"2024-03-02","contributionCount":0}]},
				{"contributionDays":[{"date":"2024-03-03","contributionCount":5}]}
			]}}}}}`))
	}))

	cal, err := client.FetchContributionCalendar(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 42, cal.Total)
	assert.Equal(t, 3, cal.Days["2024-03-01"])
	assert.Equal(t, 0, cal.Days["2024-03-02"])
	assert.Equal(t, 5, cal.Days["2024-03-03"])
}

func TestFetchContributionCalendar_MissingUser(t *testing.T) {
	// A 200 response whose user node is null means the lookup failed and
	// must surface as an error, not an empty calendar.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"user":null}}`))
	}))

	_, err := client.FetchContributionCalendar(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contribution data")
}

func TestFetchContributionCalendar_EmptyCalendar(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"user":{"contributionsCollection":{"contributionCalendar":{"totalContributions":0,"weeks":[]}}}}}`))
	}))

	_, err := client.FetchContributionCalendar(context.Background(), "octocat")
	require.Error(t, err)
}

func TestFetchSocialPreview(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"repository":{"openGraphImageUrl":"https://repository-images.example/img.png","usesCustomOpenGraphImage":true}}}`))
	}))

	preview, err := client.FetchSocialPreview(context.Background(), "octocat", "folio")
	require.NoError(t, err)
	assert.Equal(t, "https://repository-images.example/img.png", preview.ImageURL)
	assert.True(t, preview.Custom)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(&APIError{StatusCode: http.StatusForbidden}))
	assert.True(t, IsRateLimited(&APIError{StatusCode: http.StatusTooManyRequests}))
	assert.False(t, IsRateLimited(&APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, IsRateLimited(context.DeadlineExceeded))
	assert.False(t, IsRateLimited(nil))
}

func TestRateTracker_RecordsHeaders(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "7")
		w.Header().Set("X-RateLimit-Reset", "1740000000")
		w.Write([]byte(`{"login":"octocat"}`))
	}))

	remaining, reset := client.RateLimit()
	assert.Equal(t, -1, remaining)

	_, err := client.FetchUser(context.Background(), "octocat")
	require.NoError(t, err)

	remaining, reset = client.RateLimit()
	assert.Equal(t, 7, remaining)
	assert.Equal(t, time.Unix(1740000000, 0), reset)
}

func TestRateTracker_IgnoresMalformedHeaders(t *testing.T) {
	tracker := NewRateTracker()
	headers := http.Header{}
	headers.Set("X-RateLimit-Remaining", "not-a-number")
	tracker.update(headers)

	remaining, _ := tracker.Snapshot()
	assert.Equal(t, -1, remaining)
}
