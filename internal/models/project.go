package models

import "strings"

const (
	CategoryBackend   = "Back end"
	CategoryFrontend  = "Front end"
	CategoryFullstack = "Full stack"
)

const PlaceholderImage = "/images/project-placeholder.svg"

// FormattedRepo is the read-only view of a GitHub repository shown on the
// portfolio. Never mutated after creation.
type FormattedRepo struct {
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Github      string   `json:"github"`
	Language    string   `json:"language,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// MapLanguage folds a detected primary language into the closed display set.
// A shopify or liquid topic takes precedence over whatever GitHub detected.
func MapLanguage(primary string, topics []string) string {
	for _, t := range topics {
		lower := strings.ToLower(t)
		if strings.Contains(lower, "shopify") || strings.Contains(lower, "liquid") {
			return "shopify"
		}
	}
	switch strings.ToLower(primary) {
	case "typescript":
		return "typescript"
	case "javascript":
		return "javascript"
	case "python":
		return "python"
	default:
		return "javascript"
	}
}

// InferCategory picks the portfolio category from repository topics.
func InferCategory(topics []string) string {
	for _, t := range topics {
		switch strings.ToLower(t) {
		case "backend", "api":
			return CategoryBackend
		case "frontend":
			return CategoryFrontend
		case "fullstack":
			return CategoryFullstack
		}
	}
	return CategoryFrontend
}

// PrimaryLanguage returns the language with the most bytes in a GitHub
// language breakdown.
func PrimaryLanguage(breakdown map[string]int) string {
	primary := ""
	most := -1
	for lang, bytes := range breakdown {
		if bytes > most {
			primary = lang
			most = bytes
		}
	}
	return primary
}
