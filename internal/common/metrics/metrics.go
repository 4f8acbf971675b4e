// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Provider outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status"
	OutcomeEmpty     = "empty"
	OutcomeTransport = "transport"
	OutcomeMalformed = "malformed"
)

var (
	AgentResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_responses_total",
			Help: "Total number of utterances answered, by classified intent",
		},
		[]string{"intent"},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_provider_requests_total",
			Help: "Total number of external provider calls, by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_provider_request_duration_seconds",
			Help:    "Duration of external provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_calculations_total",
			Help: "Total number of arithmetic evaluations, by outcome",
		},
		[]string{"outcome"},
	)
)
