// internal/actions/news/config.go
package news

import "time"

type Config struct {
	BaseURL    string // e.g. https://newsapi.org/v2
	APIKey     string
	Country    string // top-headlines filter for the general topic
	SortBy     string // everything endpoint ordering
	MaxResults int
	Timeout    time.Duration
}

// GeneralTopic routes to the top-headlines endpoint instead of a search.
const GeneralTopic = "general"
