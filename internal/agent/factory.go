package agent

import (
	"weather-news-agent/internal/actions/news"
	"weather-news-agent/internal/actions/weather"
	"weather-news-agent/internal/common/config"
	"weather-news-agent/internal/common/logger"
)

// NewFromConfig builds an agent with the real HTTP-backed handlers. Credentials come
// from cfg and are captured once; empty keys are passed through and fail at call time.
func NewFromConfig(cfg *config.Config, log logger.Logger, recorder ResponseRecorder) *Agent {
	weatherHandler := weather.NewHandler(&weather.Config{
		BaseURL: cfg.APIs.Weather.BaseURL,
		APIKey:  cfg.APIs.Weather.APIKey,
		Units:   cfg.APIs.Weather.Units,
		Timeout: cfg.APIs.Weather.RequestTimeout(),
	}, log)

	newsHandler := news.NewHandler(&news.Config{
		BaseURL: cfg.APIs.News.BaseURL,
		APIKey:  cfg.APIs.News.APIKey,
		Country: cfg.APIs.News.Country,
		SortBy:  cfg.APIs.News.SortBy,
		Timeout: cfg.APIs.News.RequestTimeout(),
	}, log)

	return New(Options{
		Weather:  weatherHandler,
		News:     newsHandler,
		Recorder: recorder,
		Logger:   log,
	})
}
