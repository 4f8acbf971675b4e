// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	APIs    APIsConfig    `mapstructure:"apis"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIsConfig holds settings for the two external providers.
type APIsConfig struct {
	Weather WeatherAPIConfig `mapstructure:"weather"`
	News    NewsAPIConfig    `mapstructure:"news"`
}

type WeatherAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Units   string `mapstructure:"units"`
	Timeout int    `mapstructure:"timeout"` // milliseconds, 0 keeps the transport default
}

type NewsAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Country string `mapstructure:"country"`
	SortBy  string `mapstructure:"sort_by"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Address string `mapstructure:"address"` // empty disables the listener
}

type TracingConfig struct {
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"` // empty keeps spans in-process
}

// DemoConfig tunes the scripted demo transcript.
type DemoConfig struct {
	StepDelay int `mapstructure:"step_delay"` // milliseconds, base unit for every demo pause
}

func (w WeatherAPIConfig) RequestTimeout() time.Duration {
	return time.Duration(w.Timeout) * time.Millisecond
}

func (n NewsAPIConfig) RequestTimeout() time.Duration {
	return time.Duration(n.Timeout) * time.Millisecond
}

func (d DemoConfig) Delay() time.Duration {
	return time.Duration(d.StepDelay) * time.Millisecond
}
