package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
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

const Provider = "weather"

var schema = validation.MustCompile("weather-response", responseSchema)

type Handler struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return NewHandlerWithClient(config, httpclient.NewClient(config.Timeout), log)
}

func NewHandlerWithClient(config *Config, client *httpclient.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"action": Provider}),
	}
}

// Weather returns the user-facing sentence for location. It never fails.
func (h *Handler) Weather(ctx context.Context, location string) string {
	report, err := h.execute(ctx, location)
	if err == nil {
		return fmt.Sprintf("Weather in %s: %s°C, %s", location, report.temp, report.description)
	}

	fields := apperrors.LogFields(err)
	fields["location"] = location
	if apperrors.Is(err, apperrors.ErrCodeUpstreamStatus) {
		h.logger.Warn("weather lookup rejected", fields)
		return fmt.Sprintf("Sorry, I couldn't get weather data for %s", location)
	}
	h.logger.Warn("weather service unavailable", fields)
	return "Weather service is currently unavailable"
}

type report struct {
	temp        string
	description string
}

func (h *Handler) execute(ctx context.Context, location string) (*report, error) {
	ctx, span := otel.Tracer("weather-news-agent/actions/weather").Start(ctx, "weather.lookup")
	defer span.End()
	span.SetAttributes(attribute.String("weather.location", location))

	start := time.Now()
	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", h.config.APIKey)
	query.Set("units", h.config.Units)

	resp, err := h.client.Get(ctx, h.config.BaseURL, query)
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

	metrics.ProviderRequests.WithLabelValues(Provider, metrics.OutcomeOK).Inc()
	h.logger.Debug("weather lookup succeeded", map[string]interface{}{
		"location": location,
		"temp":     payload.Main.Temp.String(),
	})

	return &report{
		temp:        payload.Main.Temp.String(),
		description: payload.Weather[0].Description,
	}, nil
}

func (h *Handler) fail(span trace.Span, outcome string, err *apperrors.StandardError) error {
	metrics.ProviderRequests.WithLabelValues(Provider, outcome).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, string(err.Code))
	return err
}
