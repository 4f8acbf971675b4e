// internal/actions/weather/config.go
package weather

import "time"

type Config struct {
	BaseURL string
	APIKey  string
	Units   string
	Timeout time.Duration // zero keeps the transport default
}
