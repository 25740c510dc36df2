package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContributionMap_NoGaps(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	m := NewContributionMap(start, end)

	require.Len(t, m, 31)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		_, ok := m[d.Format(DateLayout)]
		assert.True(t, ok, "missing entry for %s", d.Format(DateLayout))
	}
}

func TestNewContributionMap_SingleDay(t *testing.T) {
	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	m := NewContributionMap(day, day)
	require.Len(t, m, 1)
	assert.Equal(t, 0, m["2024-06-15"])
}

func TestNewContributionMap_CrossesLeapDay(t *testing.T) {
	start := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	m := NewContributionMap(start, end)

	require.Len(t, m, 3)
	_, ok := m["2024-02-29"]
	assert.True(t, ok)
}

func TestSortedDates_Chronological(t *testing.T) {
	m := ContributionMap{
		"2024-03-01": 1,
		"2023-12-31": 2,
		"2024-01-15": 0,
	}

	assert.Equal(t, []string{"2023-12-31", "2024-01-15", "2024-03-01"}, m.SortedDates())
}

func TestTotal_SumsAllValues(t *testing.T) {
	m := ContributionMap{
		"2024-01-01": 3,
		"2024-01-02": 0,
		"2024-01-03": 7,
	}

	assert.Equal(t, 10, m.Total())
}

func TestTotal_EmptyMap(t *testing.T) {
	assert.Equal(t, 0, ContributionMap{}.Total())
}
