package agent

import "strings"

type rule struct {
	intent   Intent
	keywords []string
	argument func(normalized string) Argument
}

// rules is evaluated top to bottom and the first hit wins. Keyword sets overlap
// ("news" vs "now", "hi" inside "this"), so the order is part of the contract.
var rules = []rule{
	{
		intent:   IntentWeather,
		keywords: []string{"weather", "temperature", "forecast"},
		argument: func(s string) Argument { return Location(ExtractLocation(s)) },
	},
	{
		intent:   IntentNews,
		keywords: []string{"news", "headlines", "latest"},
		argument: func(s string) Argument { return Topic(ExtractTopic(s)) },
	},
	{
		intent:   IntentTime,
		keywords: []string{"time", "clock", "now"},
	},
	{
		intent:   IntentMath,
		keywords: []string{"calculate", "math", "+", "-", "*", "/"},
		argument: func(s string) Argument { return Expression(s) },
	},
	{
		intent:   IntentGreeting,
		keywords: []string{"hello", "hi", "hey", "greetings"},
	},
	{
		intent:   IntentHelp,
		keywords: []string{"help", "capabilities", "what can you do"},
	},
}

// Normalize lower-cases and trims an utterance.
func Normalize(utterance string) string {
	return strings.ToLower(strings.TrimSpace(utterance))
}

// Classify maps an utterance to exactly one classification. It is total: anything that
// matches no rule, including empty input, is unknown with the normalized text attached.
func Classify(utterance string) Classification {
	normalized := Normalize(utterance)

	for _, r := range rules {
		if !containsAny(normalized, r.keywords) {
			continue
		}
		c := Classification{Intent: r.intent}
		if r.argument != nil {
			c.Argument = r.argument(normalized)
		}
		return c
	}
	return Classification{Intent: IntentUnknown, Argument: Text(normalized)}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
