package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		intent    Intent
		argument  Argument
	}{
		{"weather with location", "What's the weather in Paris?", IntentWeather, Location("Paris?")},
		{"weather default location", "Show me the forecast", IntentWeather, Location("London")},
		{"temperature keyword", "temperature for tokyo", IntentWeather, Location("Tokyo")},
		{"news with topic", "Get me news about technology", IntentNews, Topic("technology")},
		{"news default topic", "latest headlines", IntentNews, Topic("general")},
		{"news beats now", "what is the news now", IntentNews, Topic("general")},
		{"time", "What time is it?", IntentTime, nil},
		{"now substring", "I know nothing", IntentTime, nil},
		{"math verb", "Calculate 15 * 8 + 4", IntentMath, Expression("calculate 15 * 8 + 4")},
		{"math operator only", "2+2", IntentMath, Expression("2+2")},
		{"greeting", "Hello there!", IntentGreeting, nil},
		{"hi inside a word", "this thing", IntentGreeting, nil},
		{"help phrase", "What can you do?", IntentHelp, nil},
		{"help keyword", "HELP", IntentHelp, nil},
		{"unknown", "  Tell me a joke  ", IntentUnknown, Text("tell me a joke")},
		{"empty", "", IntentUnknown, Text("")},
		{"whitespace", " \t\n ", IntentUnknown, Text("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.utterance)
			assert.Equal(t, tt.intent, c.Intent)
			assert.Equal(t, tt.argument, c.Argument)
		})
	}
}

func TestClassify_WeatherHasPriorityOverEverything(t *testing.T) {
	c := Classify("hello, what is the weather now in berlin? help")
	assert.Equal(t, IntentWeather, c.Intent)
	assert.Equal(t, Location("Berlin?"), c.Argument)
}

func TestClassify_IsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("weather in rome"), Classify("  WEATHER IN ROME "))
}

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "Intent='weather', Data='Paris'",
		Classification{Intent: IntentWeather, Argument: Location("Paris")}.String())
	assert.Equal(t, "Intent='time', Data=<none>", Classification{Intent: IntentTime}.String())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "what time is it?", Normalize("  What TIME is it?\n"))
}
