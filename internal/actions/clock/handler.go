package clock

import "time"

// Layout is YYYY-MM-DD HH:MM:SS, 24-hour, zero-padded.
const Layout = "2006-01-02 15:04:05"

type Handler struct {
	now func() time.Time
}

// NewHandler reads host local time through now; nil means time.Now.
func NewHandler(now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{now: now}
}

func (h *Handler) Now() string {
	return "Current time: " + h.now().Format(Layout)
}
