package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StageClassify labels inference calls made by the router. Agent calls are
// labelled with the agent name.
const StageClassify = "classify"

var (
	RoutedTasks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "director_routed_tasks_total",
			Help: "Total number of queries dispatched to an agent",
		},
		[]string{"agent"},
	)

	ClassificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "director_classification_failures_total",
			Help: "Total number of classifier replies without a recognized label",
		},
	)

	AgentErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "director_agent_errors_total",
			Help: "Total number of agent invocations that returned an error result",
		},
		[]string{"agent"},
	)

	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "director_inference_duration_seconds",
			Help:    "Duration of inference calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
)

// Handler exposes the default registry in Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
