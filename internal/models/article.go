package models

const ArticlePlaceholderImage = "/images/devto-placeholder.svg"

// Article is the reshaped view of a DEV.to post.
type Article struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	URL                string   `json:"url"`
	CoverImage         string   `json:"coverImage"`
	PublishedAt        string   `json:"publishedAt"`
	Tags               []string `json:"tags"`
	PositiveReactions  int      `json:"positiveReactions"`
	Comments           int      `json:"comments"`
	ReadingTimeMinutes int      `json:"readingTimeMinutes"`
}
