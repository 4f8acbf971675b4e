// internal/actions/weather/models.go
package weather

import "encoding/json"

// apiResponse is the subset of the OpenWeatherMap current-weather payload we read.
type apiResponse struct {
	Main struct {
		Temp json.Number `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

const responseSchema = `{
  "type": "object",
  "required": ["main", "weather"],
  "properties": {
    "main": {
      "type": "object",
      "required": ["temp"],
      "properties": {"temp": {"type": "number"}}
    },
    "weather": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["description"],
        "properties": {"description": {"type": "string"}}
      }
    }
  }
}`
