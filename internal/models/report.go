package models

import "time"

type MonthReport struct {
	Days        []string    `json:"days"`
	Count       int         `json:"count"`
	ByDayOfWeek map[int]int `json:"byDayOfWeek"`
}

type YearReport struct {
	Months map[string]*MonthReport `json:"months"`
	Total  int                     `json:"total"`
}

// NonContributionReport groups non-contribution days by year and 2-digit month.
type NonContributionReport map[int]*YearReport

type NonContributionDaysResult struct {
	Username            string                `json:"username"`
	NonContributionDays []string              `json:"nonContributionDays"`
	Total               int                   `json:"total"`
	StartYear           int                   `json:"startYear"`
	Report              NonContributionReport `json:"report"`
}

// CalculateNonContributionDays walks every calendar day from Jan 1 of
// startYear through now (inclusive) and collects, in chronological order, the
// dates that are absent from the map or have a zero count. A startYear in the
// future yields an empty slice.
func CalculateNonContributionDays(contributions ContributionMap, startYear int, now time.Time) []string {
	days := make([]string, 0)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for d := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC); !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		if contributions[key] == 0 {
			days = append(days, key)
		}
	}
	return days
}

// GenerateNonContributionReport buckets an ordered day sequence into
// year/month groups with weekday histograms. Pure grouping: month counts sum
// to the year total, weekday histograms sum to the month count.
func GenerateNonContributionReport(days []string) NonContributionReport {
	report := make(NonContributionReport)
	for _, day := range days {
		d, err := time.Parse(DateLayout, day)
		if err != nil {
			continue
		}
		year := d.Year()
		month := d.Format("01")

		yr, ok := report[year]
		if !ok {
			yr = &YearReport{Months: make(map[string]*MonthReport)}
			report[year] = yr
		}
		mr, ok := yr.Months[month]
		if !ok {
			mr = &MonthReport{
				Days:        make([]string, 0),
				ByDayOfWeek: make(map[int]int),
			}
			yr.Months[month] = mr
		}

		mr.Days = append(mr.Days, day)
		mr.Count++
		mr.ByDayOfWeek[int(d.Weekday())]++
		yr.Total++
	}
	return report
}
