package github

import "time"

type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	PublicRepos int    `json:"public_repos"`
}

type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Homepage    string `json:"homepage"`
	Language    string `json:"language"`
	Fork        bool   `json:"fork"`
	Archived    bool   `json:"archived"`
}

type Event struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Calendar is the decoded contribution calendar of a user: total plus
// per-day counts keyed by ISO date.
type Calendar struct {
	Total int
	Days  map[string]int
}

// SocialPreview is a repository's OpenGraph card image.
type SocialPreview struct {
	ImageURL string
	Custom   bool
}

type topicsResponse struct {
	Names []string `json:"names"`
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type calendarResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
}

type socialPreviewResponse struct {
	Data struct {
		Repository *struct {
			OpenGraphImageURL       string `json:"openGraphImageUrl"`
			UsesCustomOpenGraphImage bool  `json:"usesCustomOpenGraphImage"`
		} `json:"repository"`
	} `json:"data"`
}
