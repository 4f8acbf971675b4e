package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockWeather struct{ mock.Mock }

func (m *mockWeather) Weather(ctx context.Context, location string) string {
	return m.Called(ctx, location).String(0)
}

type mockNews struct{ mock.Mock }

func (m *mockNews) Headlines(ctx context.Context, topic string) string {
	return m.Called(ctx, topic).String(0)
}

type mockCalculator struct{ mock.Mock }

func (m *mockCalculator) Calculate(expression string) string {
	return m.Called(expression).String(0)
}

type fixedClock string

func (c fixedClock) Now() string { return string(c) }

func TestDispatch_Weather(t *testing.T) {
	w := &mockWeather{}
	w.On("Weather", mock.Anything, "Paris").Return("sunny").Once()
	w.On("Weather", mock.Anything, "London").Return("rainy").Twice()
	a := New(Options{Weather: w})
	ctx := context.Background()

	assert.Equal(t, "sunny", a.Dispatch(ctx, Classification{Intent: IntentWeather, Argument: Location("Paris")}))
	assert.Equal(t, "rainy", a.Dispatch(ctx, Classification{Intent: IntentWeather}))
	assert.Equal(t, "rainy", a.Dispatch(ctx, Classification{Intent: IntentWeather, Argument: Topic("Paris")}))
	w.AssertExpectations(t)
}

func TestDispatch_News(t *testing.T) {
	n := &mockNews{}
	n.On("Headlines", mock.Anything, "go").Return("go news").Once()
	n.On("Headlines", mock.Anything, "general").Return("top news").Once()
	a := New(Options{News: n})
	ctx := context.Background()

	assert.Equal(t, "go news", a.Dispatch(ctx, Classification{Intent: IntentNews, Argument: Topic("go")}))
	assert.Equal(t, "top news", a.Dispatch(ctx, Classification{Intent: IntentNews, Argument: Text("go")}))
	n.AssertExpectations(t)
}

func TestDispatch_MathStripsCommandVerbs(t *testing.T) {
	c := &mockCalculator{}
	c.On("Calculate", "15 * 8 + 4").Return("Result: 124").Once()
	c.On("Calculate", "2+2").Return("Result: 4").Once()
	c.On("Calculate", "").Return("Sorry, I couldn't calculate that").Once()
	a := New(Options{Calculator: c})
	ctx := context.Background()

	assert.Equal(t, "Result: 124", a.Dispatch(ctx, Classification{Intent: IntentMath, Argument: Expression("calculate 15 * 8 + 4")}))
	assert.Equal(t, "Result: 4", a.Dispatch(ctx, Classification{Intent: IntentMath, Argument: Expression("2+2")}))
	assert.Equal(t, "Sorry, I couldn't calculate that", a.Dispatch(ctx, Classification{Intent: IntentMath}))
	c.AssertExpectations(t)
}

func TestDispatch_LocalIntents(t *testing.T) {
	a := New(Options{Clock: fixedClock("Current time: 2024-01-02 03:04:05")})
	ctx := context.Background()

	assert.Equal(t, "Current time: 2024-01-02 03:04:05", a.Dispatch(ctx, Classification{Intent: IntentTime}))
	assert.Equal(t,
		"Hello! I'm your AI assistant. I can help with weather, news, time, and simple math. What would you like to know?",
		a.Dispatch(ctx, Classification{Intent: IntentGreeting}))
	assert.Equal(t,
		"I can help you with: check weather, get news, tell time, simple math, greet user. Just ask me something!",
		a.Dispatch(ctx, Classification{Intent: IntentHelp}))
}

func TestDispatch_Fallback(t *testing.T) {
	a := New(Options{})
	ctx := context.Background()

	assert.Equal(t, FallbackResponse, a.Dispatch(ctx, Classification{Intent: IntentUnknown, Argument: Text("tell me a joke")}))
	assert.Equal(t, FallbackResponse, a.Dispatch(ctx, Classification{Intent: Intent("bogus")}))
	assert.Equal(t, FallbackResponse, a.Dispatch(ctx, Classification{}))
}

func TestDispatch_UnwiredProvidersAreUnavailable(t *testing.T) {
	a := New(Options{})
	ctx := context.Background()

	assert.Equal(t, "Weather service is currently unavailable", a.Dispatch(ctx, Classification{Intent: IntentWeather}))
	assert.Equal(t, "News service is currently unavailable", a.Dispatch(ctx, Classification{Intent: IntentNews}))
}

func TestStripMathVerbs(t *testing.T) {
	assert.Equal(t, "15 * 8", stripMathVerbs("calculate 15 * 8"))
	assert.Equal(t, "1 + 1", stripMathVerbs("math 1 + 1"))
	assert.Equal(t, "calculated 1+1", stripMathVerbs("calculated 1+1"))
	assert.Equal(t, "", stripMathVerbs("calculate"))
	assert.Equal(t, "2  +  2", stripMathVerbs("2  +  2"))
}
