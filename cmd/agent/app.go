// cmd/agent/app.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"weather-news-agent/internal/agent"
	"weather-news-agent/internal/common/config"
	"weather-news-agent/internal/common/logger"
	"weather-news-agent/internal/common/observability"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const serviceName = "weather-news-agent"

type rootOptions struct {
	configPath  string
	logLevel    string
	metricsAddr string
}

// app holds everything a subcommand needs. close releases it in reverse order.
type app struct {
	cfg     *config.Config
	zapLog  *zap.Logger
	log     logger.Logger
	obs     *observability.Observability
	tracing *observability.Tracing
	agent   *agent.Agent
	server  *http.Server
}

func newApp(opts *rootOptions) (*app, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Address = opts.metricsAddr
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	a := &app{cfg: cfg, zapLog: zapLog, log: log}
	a.obs = observability.New(serviceName, log)

	tracing, err := observability.NewTracing(serviceName, cfg.Tracing.JaegerEndpoint)
	if err != nil {
		log.Warn("tracing disabled", map[string]interface{}{"error": err.Error()})
	}
	a.tracing = tracing

	if cfg.APIs.Weather.APIKey == "" || cfg.APIs.News.APIKey == "" {
		log.Warn("API keys missing, weather and news will be unavailable", map[string]interface{}{
			"weatherKeySet": cfg.APIs.Weather.APIKey != "",
			"newsKeySet":    cfg.APIs.News.APIKey != "",
		})
	}

	a.agent = agent.NewFromConfig(cfg, log, a.obs)

	if cfg.Metrics.Address != "" {
		a.server = newMetricsServer(cfg.Metrics.Address)
		go func() {
			zapLog.Info("health/metrics server listening", zap.String("addr", cfg.Metrics.Address))
			if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zapLog.Error("health/metrics server failed", zap.Error(err))
			}
		}()
	}

	return a, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", statusHandler("healthy"))
	mux.HandleFunc("/ready", statusHandler("ready"))
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

func statusHandler(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

func (a *app) close() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			a.zapLog.Error("error stopping health/metrics server", zap.Error(err))
		}
	}
	a.tracing.Shutdown()
	a.obs.Shutdown()
	_ = a.zapLog.Sync()
}
