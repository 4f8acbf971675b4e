package calculator

import (
	"strings"
	"testing"

	"weather-news-agent/internal/common/logger"

	"github.com/stretchr/testify/assert"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(logger.NewTestLogger(t))
}

func TestHandler_Calculate_Success(t *testing.T) {
	tests := []struct {
		expression string
		expected   string
	}{
		{"5 + 3", "Result: 8"},
		{"10 - 4", "Result: 6"},
		{"6 * 7", "Result: 42"},
		{"20 / 4", "Result: 5"},
		{"(5 + 3) * 2", "Result: 16"},
		{"15 * 8 + 4", "Result: 124"},
		{"3.5 + 2.5", "Result: 6"},
		{"7 / 2", "Result: 3.5"},
		{"2 + 3 * 4", "Result: 14"},
		{"2 - 3 - 4", "Result: -5"},
		{"100 / 10 / 5", "Result: 2"},
		{"-(2 + 3)", "Result: -5"},
		{"--4", "Result: 4"},
		{".5 + 5.", "Result: 5.5"},
		{"\t1\n+ 1 ", "Result: 2"},
		{"0 * -1", "Result: 0"},
	}

	h := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			assert.Equal(t, tt.expected, h.Calculate(tt.expression))
		})
	}
}

func TestHandler_Calculate_Rejected(t *testing.T) {
	tests := []string{
		"abc + def",
		"__import__('os').system('ls')",
		"calculate 5 + 3",
		"2 ** x",
		"1 % 2",
		"",
		"2^3",
	}

	h := createTestHandler(t)
	for _, expression := range tests {
		t.Run(expression, func(t *testing.T) {
			assert.Equal(t, "Sorry, I can only do basic math operations", h.Calculate(expression))
		})
	}
}

func TestHandler_Calculate_EvaluationFailure(t *testing.T) {
	tests := []string{
		"1 / 0",
		"5 / (3 - 3)",
		"2 ** 3",
		"1.2.3",
		"(1 + 2",
		"1 + 2)",
		"()",
		"   ",
		"4 +",
		".",
		"1 2",
		strings.Repeat("(", 500) + "1" + strings.Repeat(")", 500),
	}

	h := createTestHandler(t)
	for _, expression := range tests {
		name := expression
		if len(name) > 20 {
			name = name[:20]
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "Sorry, I couldn't calculate that", h.Calculate(expression))
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := Evaluate("1 / 0")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Evaluate("1 +")
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Evaluate(strings.Repeat("-", 300) + "1")
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Evaluate("1e308 * 10")
	assert.ErrorIs(t, err, ErrSyntax) // no exponent notation
}

func TestEvaluate_Overflow(t *testing.T) {
	huge := "1" + strings.Repeat("0", 300)
	_, err := Evaluate(huge + " * " + huge)
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "16", FormatNumber(16))
	assert.Equal(t, "2.5", FormatNumber(2.5))
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "0", FormatNumber(-0.0))
	assert.Equal(t, "-3", FormatNumber(-3))
}
