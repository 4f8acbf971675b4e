package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultWeatherBaseURL = "http://api.openweathermap.org/data/2.5/weather"
	DefaultNewsBaseURL    = "https://newsapi.org/v2"

	WeatherAPIKeyEnv = "OPENWEATHER_API_KEY"
	NewsAPIKeyEnv    = "NEWS_API_KEY"
)

// Load reads configs/config.yaml (optional), merges config.<env>.yaml and applies env overrides.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finish(v)
}

// LoadFromFile reads a single yaml file and applies env overrides.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about; Unmarshal needs them bound
	for _, key := range []string{
		"app.name", "app.version", "app.environment",
		"apis.weather.base_url", "apis.weather.api_key", "apis.weather.units", "apis.weather.timeout",
		"apis.news.base_url", "apis.news.api_key", "apis.news.country", "apis.news.sort_by", "apis.news.timeout",
		"logging.level", "logging.format",
		"metrics.address", "tracing.jaeger_endpoint", "demo.step_delay",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			// never overrides variables already set in the process
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			if expanded := os.ExpandEnv(strVal); expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

func overrideEmptyConfig(cfg *Config) {
	if cfg.APIs.Weather.APIKey == "" {
		cfg.APIs.Weather.APIKey = os.Getenv(WeatherAPIKeyEnv)
	}
	if cfg.APIs.News.APIKey == "" {
		cfg.APIs.News.APIKey = os.Getenv(NewsAPIKeyEnv)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "weather-news-agent"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "0.1.0"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.APIs.Weather.BaseURL == "" {
		cfg.APIs.Weather.BaseURL = DefaultWeatherBaseURL
	}
	if cfg.APIs.Weather.Units == "" {
		cfg.APIs.Weather.Units = "metric"
	}

	if cfg.APIs.News.BaseURL == "" {
		cfg.APIs.News.BaseURL = DefaultNewsBaseURL
	}
	if cfg.APIs.News.Country == "" {
		cfg.APIs.News.Country = "us"
	}
	if cfg.APIs.News.SortBy == "" {
		cfg.APIs.News.SortBy = "popularity"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	if cfg.Demo.StepDelay == 0 {
		cfg.Demo.StepDelay = 1000
	}
}

func validateConfig(cfg *Config) error {
	for name, raw := range map[string]string{
		"apis.weather.base_url": cfg.APIs.Weather.BaseURL,
		"apis.news.base_url":    cfg.APIs.News.BaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", cfg.Logging.Format)
	}

	if cfg.APIs.Weather.Timeout < 0 || cfg.APIs.News.Timeout < 0 {
		return fmt.Errorf("provider timeouts must not be negative")
	}
	if cfg.Demo.StepDelay < 0 {
		return fmt.Errorf("demo.step_delay must not be negative")
	}
	return nil
}
