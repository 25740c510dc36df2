package models

// WakatimeLanguage is one entry of a WakaTime language breakdown.
type WakatimeLanguage struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Text    string  `json:"text"`
}

// WakatimeStats is the reshaped last-7-days coding summary.
type WakatimeStats struct {
	TotalTime    string             `json:"totalTime"`
	DailyAverage string             `json:"dailyAverage"`
	BestDayDate  string             `json:"bestDayDate"`
	BestDayText  string             `json:"bestDayText"`
	Languages    []WakatimeLanguage `json:"languages"`
}

// WakatimeUser is the reshaped public profile.
type WakatimeUser struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Photo       string `json:"photo"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	CreatedAt   string `json:"createdAt"`
}
