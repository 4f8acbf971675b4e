package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "weather-news-agent/internal/common/errors"
	httpclient "weather-news-agent/internal/common/http"
	"weather-news-agent/internal/common/logger"
	"weather-news-agent/internal/common/metrics"
	"weather-news-agent/internal/common/validation"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	Provider          = "news"
	defaultMaxResults = 3
)

var schema = validation.MustCompile("news-response", responseSchema)

type Handler struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return NewHandlerWithClient(config, httpclient.NewClient(config.Timeout), log)
}

// NewHandlerWithClient copies config; the caller's value is never modified.
func NewHandlerWithClient(config *Config, client *httpclient.Client, log logger.Logger) *Handler {
	cfg := *config
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	return &Handler{
		config: &cfg,
		client: client,
		logger: log.WithFields(map[string]interface{}{"action": Provider}),
	}
}

// Headlines returns up to MaxResults bulleted titles for topic. It never fails.
func (h *Handler) Headlines(ctx context.Context, topic string) string {
	titles, err := h.execute(ctx, topic)
	if err == nil {
		lines := make([]string, 0, len(titles))
		for _, title := range titles {
			lines = append(lines, "• "+title)
		}
		return fmt.Sprintf("Latest news about %s:\n", topic) + strings.Join(lines, "\n")
	}

	fields := apperrors.LogFields(err)
	fields["topic"] = topic
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeUpstreamStatus, apperrors.ErrCodeNoResults:
		h.logger.Warn("no headlines", fields)
		return fmt.Sprintf("Sorry, I couldn't find news about %s", topic)
	default:
		h.logger.Warn("news service unavailable", fields)
		return "News service is currently unavailable"
	}
}

func (h *Handler) endpoint(topic string) (string, url.Values) {
	base := strings.TrimRight(h.config.BaseURL, "/")
	query := url.Values{}
	if topic == GeneralTopic {
		query.Set("country", h.config.Country)
		query.Set("apiKey", h.config.APIKey)
		return base + "/top-headlines", query
	}
	query.Set("q", topic)
	query.Set("apiKey", h.config.APIKey)
	query.Set("sortBy", h.config.SortBy)
	return base + "/everything", query
}

func (h *Handler) execute(ctx context.Context, topic string) ([]string, error) {
	ctx, span := otel.Tracer("weather-news-agent/actions/news").Start(ctx, "news.headlines")
	defer span.End()
	span.SetAttributes(attribute.String("news.topic", topic))

	endpoint, query := h.endpoint(topic)

	start := time.Now()
	resp, err := h.client.Get(ctx, endpoint, query)
	metrics.ProviderRequestDuration.WithLabelValues(Provider).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, h.fail(span, metrics.OutcomeTransport, apperrors.NewUpstreamTransportError(Provider, err))
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return nil, h.fail(span, metrics.OutcomeStatus, apperrors.NewUpstreamStatusError(Provider, resp.StatusCode))
	}

	if err := schema.Check(resp.Body); err != nil {
		return nil, h.fail(span, metrics.OutcomeMalformed, apperrors.NewUpstreamMalformedError(Provider, err))
	}

	var payload apiResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, h.fail(span, metrics.OutcomeMalformed, apperrors.NewUpstreamMalformedError(Provider, err))
	}

	// Removed articles come back with a null title and are skipped.
	titles := make([]string, 0, h.config.MaxResults)
	for _, a := range payload.Articles {
		if a.Title == nil || *a.Title == "" {
			continue
		}
		titles = append(titles, *a.Title)
		if len(titles) == h.config.MaxResults {
			break
		}
	}
	if len(titles) == 0 {
		return nil, h.fail(span, metrics.OutcomeEmpty, apperrors.NewNoResultsError(Provider, topic))
	}

	metrics.ProviderRequests.WithLabelValues(Provider, metrics.OutcomeOK).Inc()
	h.logger.Debug("headlines fetched", map[string]interface{}{
		"topic":    topic,
		"endpoint": endpoint,
		"returned": len(payload.Articles),
	})
	return titles, nil
}

func (h *Handler) fail(span trace.Span, outcome string, err *apperrors.StandardError) error {
	metrics.ProviderRequests.WithLabelValues(Provider, outcome).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, string(err.Code))
	return err
}
