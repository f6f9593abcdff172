// internal/httpserver/metrics.go
//
// Prometheus metrics for the scoring routes, served on /metrics.
// Responsibilities:
//   - Count evaluations per route and time each classification.
//   - Track the distribution of board scores.
//   - Count placements as ok or rejected.

package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scoring metrics, exposed on /metrics.
var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alpagoteam_evaluations_total",
		Help: "Boards scored, by route",
	}, []string{"route"})

	evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "alpagoteam_evaluation_duration_seconds",
		Help:    "Time to classify and score one board",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
	})

	boardScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "alpagoteam_board_score",
		Help:    "Scores of evaluated boards",
		Buckets: []float64{0, 5, 10, 20, 40, 80, 150, 300, 600},
	})

	placementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alpagoteam_placements_total",
		Help: "Token placements, by outcome",
	}, []string{"outcome"})
)
