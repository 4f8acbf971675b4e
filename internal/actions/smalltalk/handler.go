package smalltalk

import "strings"

const greeting = "Hello! I'm your AI assistant. I can help with weather, news, time, and simple math. What would you like to know?"

// Handler answers greeting and help without any lookups.
type Handler struct {
	capabilities []string
}

func NewHandler(capabilities []string) *Handler {
	return &Handler{capabilities: append([]string(nil), capabilities...)}
}

func (h *Handler) Greet() string {
	return greeting
}

func (h *Handler) Help() string {
	return "I can help you with: " + strings.Join(h.capabilities, ", ") + ". Just ask me something!"
}
