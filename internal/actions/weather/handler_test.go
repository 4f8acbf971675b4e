// internal/actions/weather/handler_test.go
package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-news-agent/internal/common/logger"

	"github.com/stretchr/testify/assert"
)

func createTestConfig(baseURL string) *Config {
	return &Config{
		BaseURL: baseURL,
		APIKey:  "test_weather_key",
		Units:   "metric",
	}
}

func newFakeProvider(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHandler_Weather_Success(t *testing.T) {
	tests := []struct {
		name     string
		location string
		body     string
		expected string
	}{
		{
			name:     "decimal temperature",
			location: "Paris",
			body:     `{"main":{"temp":20.5},"weather":[{"description":"sunny"}]}`,
			expected: "Weather in Paris: 20.5°C, sunny",
		},
		{
			name:     "integer temperature is printed as sent",
			location: "Tokyo",
			body:     `{"main":{"temp":18,"humidity":70},"weather":[{"description":"light rain"},{"description":"mist"}]}`,
			expected: "Weather in Tokyo: 18°C, light rain",
		},
		{
			name:     "negative temperature",
			location: "Oslo",
			body:     `{"main":{"temp":-3.25},"weather":[{"description":"snow"}]}`,
			expected: "Weather in Oslo: -3.25°C, snow",
		},
		{
			name:     "exponent literal is echoed",
			location: "Dubai",
			body:     `{"main":{"temp":1e2},"weather":[{"description":"hot"}]}`,
			expected: "Weather in Dubai: 1e2°C, hot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFakeProvider(t, http.StatusOK, tt.body)
			handler := NewHandler(createTestConfig(server.URL), logger.NewTestLogger(t))

			assert.Equal(t, tt.expected, handler.Weather(context.Background(), tt.location))
		})
	}
}

func TestHandler_Weather_SendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "test_weather_key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"main":{"temp":1},"weather":[{"description":"fog"}]}`))
	}))
	defer server.Close()

	handler := NewHandler(createTestConfig(server.URL), logger.NewTestLogger(t))
	assert.Equal(t, "Weather in Berlin: 1°C, fog", handler.Weather(context.Background(), "Berlin"))
}

func TestHandler_Weather_APIError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{}`},
		{"unauthorized", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`},
		{"server error with html body", http.StatusInternalServerError, `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFakeProvider(t, tt.status, tt.body)
			handler := NewHandler(createTestConfig(server.URL), logger.NewTestLogger(t))

			assert.Equal(t, "Sorry, I couldn't get weather data for InvalidCity",
				handler.Weather(context.Background(), "InvalidCity"))
		})
	}
}

func TestHandler_Weather_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `invalid json {{{`},
		{"missing main", `{"weather":[{"description":"sunny"}]}`},
		{"empty weather list", `{"main":{"temp":20},"weather":[]}`},
		{"temperature not a number", `{"main":{"temp":"warm"},"weather":[{"description":"sunny"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFakeProvider(t, http.StatusOK, tt.body)
			handler := NewHandler(createTestConfig(server.URL), logger.NewTestLogger(t))

			assert.Equal(t, "Weather service is currently unavailable", handler.Weather(context.Background(), "Paris"))
		})
	}
}

func TestHandler_Weather_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	handler := NewHandler(createTestConfig(baseURL), logger.NewNoOpLogger())
	assert.Equal(t, "Weather service is currently unavailable", handler.Weather(context.Background(), "Paris"))
}

func TestHandler_Weather_MissingCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("appid"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := createTestConfig(server.URL)
	cfg.APIKey = ""
	handler := NewHandler(cfg, logger.NewTestLogger(t))

	assert.Equal(t, "Sorry, I couldn't get weather data for Paris", handler.Weather(context.Background(), "Paris"))
}
