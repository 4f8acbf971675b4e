package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"weather in paris", "Paris"},
		{"forecast for MADRID", "Madrid"},
		{"weather in new york", "New"},
		{"weather in", "London"},
		{"weather", "London"},
		{"", "London"},
		{"weather inside", "London"},
		{"in in rome", "In"},
		{"weather in émile", "Émile"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLocation(tt.text))
		})
	}
}

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"news about technology", "technology"},
		{"headlines on Sports", "Sports"},
		{"news about", "general"},
		{"news", "general"},
		{"news online", "general"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTopic(tt.text))
		})
	}
}
