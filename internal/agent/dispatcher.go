package agent

import (
	"context"
	"strings"
)

// FallbackResponse answers unknown intents.
const FallbackResponse = "I'm not sure how to help with that. Try asking about weather, news, time, or math!"

// mathVerbs are dropped from a math utterance before evaluation so that
// "calculate 15 * 8 + 4" reaches the calculator as "15 * 8 + 4".
var mathVerbs = map[string]bool{"calculate": true, "math": true}

// Dispatch runs the handler for c and returns its response. It is total over every Intent
// value, including ones outside the declared set, and over mismatched arguments.
func (a *Agent) Dispatch(ctx context.Context, c Classification) string {
	switch c.Intent {
	case IntentWeather:
		location := DefaultLocation
		if l, ok := c.Argument.(Location); ok && l != "" {
			location = string(l)
		}
		return a.weather.Weather(ctx, location)
	case IntentNews:
		topic := DefaultTopic
		if t, ok := c.Argument.(Topic); ok && t != "" {
			topic = string(t)
		}
		return a.news.Headlines(ctx, topic)
	case IntentTime:
		return a.clock.Now()
	case IntentMath:
		var expression string
		if e, ok := c.Argument.(Expression); ok {
			expression = stripMathVerbs(string(e))
		}
		return a.calculator.Calculate(expression)
	case IntentGreeting:
		return a.smallTalk.Greet()
	case IntentHelp:
		return a.smallTalk.Help()
	default:
		return FallbackResponse
	}
}

func stripMathVerbs(expression string) string {
	words := strings.Fields(expression)
	kept := words[:0]
	for _, w := range words {
		if !mathVerbs[w] {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(words) {
		return expression
	}
	return strings.Join(kept, " ")
}
