package agent

import "fmt"

// Intent is the closed set of request kinds the agent understands.
type Intent string

const (
	IntentWeather  Intent = "weather"
	IntentNews     Intent = "news"
	IntentTime     Intent = "time"
	IntentMath     Intent = "math"
	IntentGreeting Intent = "greeting"
	IntentHelp     Intent = "help"
	IntentUnknown  Intent = "unknown"
)

// Intents lists every intent in classification priority order, unknown last.
var Intents = []Intent{
	IntentWeather, IntentNews, IntentTime, IntentMath, IntentGreeting, IntentHelp, IntentUnknown,
}

// Argument is the payload attached to a classification. The concrete type depends on the
// intent; a nil Argument means the intent takes none.
type Argument interface {
	fmt.Stringer
	isArgument()
}

// Location is the weather argument.
type Location string

// Topic is the news argument.
type Topic string

// Expression is the math argument: the whole normalized utterance.
type Expression string

// Text is the unknown argument: the whole normalized utterance.
type Text string

func (l Location) String() string   { return string(l) }
func (t Topic) String() string      { return string(t) }
func (e Expression) String() string { return string(e) }
func (t Text) String() string       { return string(t) }

func (Location) isArgument()   {}
func (Topic) isArgument()      {}
func (Expression) isArgument() {}
func (Text) isArgument()       {}

// Classification is the (intent, argument) pair produced for one utterance.
type Classification struct {
	Intent   Intent
	Argument Argument
}

func (c Classification) String() string {
	if c.Argument == nil {
		return fmt.Sprintf("Intent='%s', Data=<none>", c.Intent)
	}
	return fmt.Sprintf("Intent='%s', Data='%s'", c.Intent, c.Argument)
}
