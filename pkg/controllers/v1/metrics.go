package v1

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/runway-finance/backend/pkg/models"
)

// Metrics are the Prometheus collectors of the v1 API.
// They are registered by the router.
var Metrics = []prometheus.Collector{
	timelinesBuilt,
	analysesTotal,
	goalSimulationsTotal,
}

var timelinesBuilt = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "timelines_built_total",
		Help: "How many balance timelines were projected.",
	},
)

var analysesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "purchase_analyses_total",
		Help: "How many purchases were analyzed, partitioned by verdict.",
	},
	[]string{"verdict"},
)

var goalSimulationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "goal_simulations_total",
		Help: "How many goals were simulated, partitioned by feasibility.",
	},
	[]string{"possible"},
)

func observeAnalysis(verdict models.Verdict) {
	analysesTotal.WithLabelValues(string(verdict)).Inc()
}

func observeGoalSimulation(possible bool) {
	goalSimulationsTotal.WithLabelValues(strconv.FormatBool(possible)).Inc()
}
