package calculator

import (
	"fmt"
	"regexp"
	"strconv"

	apperrors "weather-news-agent/internal/common/errors"
	"weather-news-agent/internal/common/logger"
	"weather-news-agent/internal/common/metrics"
)

// whitelist admits digits, the four operators, decimal points, parentheses and whitespace.
var whitelist = regexp.MustCompile(`^[\d+\-*/.\s()]+$`)

type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{
		logger: log.WithFields(map[string]interface{}{"action": "math"}),
	}
}

// Calculate returns "Result: <value>" or one of two distinct apologies.
func (h *Handler) Calculate(expression string) string {
	value, err := h.execute(expression)
	if err == nil {
		return "Result: " + FormatNumber(value)
	}

	if apperrors.Is(err, apperrors.ErrCodeExpressionRejected) {
		h.logger.Info("expression rejected", map[string]interface{}{"expression": expression})
		return "Sorry, I can only do basic math operations"
	}
	fields := apperrors.LogFields(err)
	fields["expression"] = expression
	h.logger.Info("expression could not be evaluated", fields)
	return "Sorry, I couldn't calculate that"
}

func (h *Handler) execute(expression string) (float64, error) {
	if !whitelist.MatchString(expression) {
		metrics.Calculations.WithLabelValues("rejected").Inc()
		return 0, apperrors.NewExpressionRejectedError(expression)
	}

	value, err := Evaluate(expression)
	if err != nil {
		metrics.Calculations.WithLabelValues("invalid").Inc()
		return 0, apperrors.NewExpressionInvalidError(expression, fmt.Errorf("evaluate: %w", err))
	}

	metrics.Calculations.WithLabelValues("ok").Inc()
	return value, nil
}

// FormatNumber prints the shortest decimal that round-trips, without exponent: 16, 5, 2.5.
func FormatNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
