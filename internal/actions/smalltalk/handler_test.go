package smalltalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_Greet(t *testing.T) {
	result := NewHandler(nil).Greet()

	assert.Contains(t, result, "Hello")
	assert.Contains(t, result, "AI assistant")
	for _, topic := range []string{"weather", "news", "time", "math"} {
		assert.Contains(t, result, topic)
	}
}

func TestHandler_Help(t *testing.T) {
	capabilities := []string{"check weather", "get news", "tell time", "simple math", "greet user"}
	h := NewHandler(capabilities)

	assert.Equal(t,
		"I can help you with: check weather, get news, tell time, simple math, greet user. Just ask me something!",
		h.Help())

	// later edits to the caller's slice do not leak in
	capabilities[0] = "mutated"
	assert.NotContains(t, h.Help(), "mutated")
}
