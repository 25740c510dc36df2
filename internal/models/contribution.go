package models

import (
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

// DataSource tells consumers where a contribution map came from. Synthetic
// counts are a presentation heuristic, not a measurement, so the origin is
// carried explicitly instead of being blended into the numbers.
type DataSource string

const (
	SourceGraphQL   DataSource = "graphql"
	SourceEvents    DataSource = "events"
	SourceSynthetic DataSource = "synthetic"
)

// ContributionMap maps an ISO date (YYYY-MM-DD) to a contribution count.
// Once populated it covers every date in its range without gaps.
type ContributionMap map[string]int

func (m ContributionMap) SortedDates() []string {
	dates := make([]string, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	// ISO keys sort chronologically
	sort.Strings(dates)
	return dates
}

func (m ContributionMap) Total() int {
	total := 0
	for _, c := range m {
		total += c
	}
	return total
}

type ContributionsResult struct {
	Username           string          `json:"username"`
	TotalContributions int             `json:"totalContributions"`
	Contributions      ContributionMap `json:"contributions"`
	StartDate          string          `json:"startDate"`
	EndDate            string          `json:"endDate"`
	Source             DataSource      `json:"source"`
}

// NewContributionMap returns a map with a zero entry for every day in
// [start, end] so later passes never have to special-case missing dates.
func NewContributionMap(start, end time.Time) ContributionMap {
	m := make(ContributionMap)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		m[d.Format(DateLayout)] = 0
	}
	return m
}
