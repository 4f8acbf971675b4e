package agent

import (
	"context"
	"time"

	"weather-news-agent/internal/actions/calculator"
	"weather-news-agent/internal/actions/clock"
	"weather-news-agent/internal/actions/smalltalk"
	"weather-news-agent/internal/common/logger"
	"weather-news-agent/internal/common/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// capabilities is the fixed list shown by the help intent.
var capabilities = [...]string{
	"check weather",
	"get news",
	"tell time",
	"simple math",
	"greet user",
}

type WeatherService interface {
	Weather(ctx context.Context, location string) string
}

type NewsService interface {
	Headlines(ctx context.Context, topic string) string
}

type Calculator interface {
	Calculate(expression string) string
}

type Clock interface {
	Now() string
}

type SmallTalk interface {
	Greet() string
	Help() string
}

// ResponseRecorder receives one observation per answered utterance.
type ResponseRecorder interface {
	RecordResponse(ctx context.Context, intent string, duration time.Duration)
}

// Options wires the agent. Nil fields get local defaults; a nil weather or news
// service answers with the provider's "unavailable" message.
type Options struct {
	Weather    WeatherService
	News       NewsService
	Calculator Calculator
	Clock      Clock
	SmallTalk  SmallTalk
	Recorder   ResponseRecorder
	Logger     logger.Logger
}

// Agent classifies an utterance and dispatches it to one handler. It holds no
// per-request state.
type Agent struct {
	weather    WeatherService
	news       NewsService
	calculator Calculator
	clock      Clock
	smallTalk  SmallTalk
	recorder   ResponseRecorder
	logger     logger.Logger
}

// Turn is the full record of one Respond call.
type Turn struct {
	RequestID      string
	Utterance      string
	Classification Classification
	Response       string
	Duration       time.Duration
}

func New(opts Options) *Agent {
	a := &Agent{
		weather:    opts.Weather,
		news:       opts.News,
		calculator: opts.Calculator,
		clock:      opts.Clock,
		smallTalk:  opts.SmallTalk,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
	}
	if a.logger == nil {
		a.logger = logger.NewNoOpLogger()
	}
	if a.weather == nil {
		a.weather = unavailableWeather{}
	}
	if a.news == nil {
		a.news = unavailableNews{}
	}
	if a.calculator == nil {
		a.calculator = calculator.NewHandler(a.logger)
	}
	if a.clock == nil {
		a.clock = clock.NewHandler(nil)
	}
	if a.smallTalk == nil {
		a.smallTalk = smalltalk.NewHandler(Capabilities())
	}
	return a
}

// Capabilities returns a copy of the fixed capability list.
func Capabilities() []string {
	out := make([]string, len(capabilities))
	copy(out, capabilities[:])
	return out
}

func (a *Agent) Capabilities() []string {
	return Capabilities()
}

func (a *Agent) Classify(utterance string) Classification {
	return Classify(utterance)
}

// Respond answers one utterance.
func (a *Agent) Respond(ctx context.Context, utterance string) string {
	return a.RespondTurn(ctx, utterance).Response
}

// RespondTurn answers one utterance and returns the intermediate classification as well.
func (a *Agent) RespondTurn(ctx context.Context, utterance string) Turn {
	start := time.Now()
	turn := Turn{
		RequestID: uuid.NewString(),
		Utterance: utterance,
	}

	ctx, span := otel.Tracer("weather-news-agent/agent").Start(ctx, "agent.respond")
	defer span.End()

	log := a.logger.WithFields(map[string]interface{}{"requestId": turn.RequestID})
	log.Info("utterance received", map[string]interface{}{"utterance": utterance})

	turn.Classification = a.Classify(utterance)
	span.SetAttributes(
		attribute.String("agent.request_id", turn.RequestID),
		attribute.String("agent.intent", string(turn.Classification.Intent)),
	)
	log.Info("agent thinking", map[string]interface{}{
		"intent": string(turn.Classification.Intent),
		"data":   argumentValue(turn.Classification.Argument),
	})

	turn.Response = a.Dispatch(ctx, turn.Classification)
	turn.Duration = time.Since(start)

	metrics.AgentResponses.WithLabelValues(string(turn.Classification.Intent)).Inc()
	if a.recorder != nil {
		a.recorder.RecordResponse(ctx, string(turn.Classification.Intent), turn.Duration)
	}
	log.Info("response ready", map[string]interface{}{
		"response":   turn.Response,
		"durationMs": turn.Duration.Milliseconds(),
	})
	return turn
}

func argumentValue(arg Argument) interface{} {
	if arg == nil {
		return nil
	}
	return arg.String()
}

type unavailableWeather struct{}

func (unavailableWeather) Weather(context.Context, string) string {
	return "Weather service is currently unavailable"
}

type unavailableNews struct{}

func (unavailableNews) Headlines(context.Context, string) string {
	return "News service is currently unavailable"
}
