package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Guess results
const (
	GuessAccepted = "accepted"
	GuessStale    = "stale"
	GuessRejected = "rejected"
)

// Resolution outcomes
const (
	OutcomeWin     = "win"
	OutcomeTie     = "tie"
	OutcomeForfeit = "forfeit"
	OutcomeTimeout = "timeout"
)

// Metrics holds the service collectors. A nil *Metrics records nothing,
// so services can run without a registry.
type Metrics struct {
	Guesses         *prometheus.CounterVec
	MatchesResolved *prometheus.CounterVec
	Notifications   *prometheus.CounterVec
	ActiveMatches   prometheus.Gauge
	LeaderboardRuns *prometheus.CounterVec
	Eligible        *prometheus.GaugeVec
	RunDuration     prometheus.Histogram
}

// New creates the collectors and registers them on reg
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guesses_total",
			Help:      "Guess submissions by result",
		}, []string{"result"}),
		MatchesResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_resolved_total",
			Help:      "Matches that reached a terminal state, by outcome",
		}, []string{"outcome"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Completion notifications by delivery result",
		}, []string{"result"}),
		ActiveMatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_matches",
			Help:      "Non-terminal matches seen by the last inactivity sweep",
		}),
		LeaderboardRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_runs_total",
			Help:      "Leaderboard aggregation runs per difficulty and result",
		}, []string{"difficulty", "result"}),
		Eligible: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leaderboard_eligible",
			Help:      "Eligible players in the latest snapshot",
		}, []string{"difficulty"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "leaderboard_run_seconds",
			Help:      "Duration of a full aggregation run",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}

	reg.MustRegister(
		m.Guesses,
		m.MatchesResolved,
		m.Notifications,
		m.ActiveMatches,
		m.LeaderboardRuns,
		m.Eligible,
		m.RunDuration,
	)

	return m
}

func (m *Metrics) ObserveGuess(result string) {
	if m == nil {
		return
	}
	m.Guesses.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveResolution(outcome string) {
	if m == nil {
		return
	}
	m.MatchesResolved.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveNotification(sent bool) {
	if m == nil {
		return
	}
	result := "sent"
	if !sent {
		result = "failed"
	}
	m.Notifications.WithLabelValues(result).Inc()
}

func (m *Metrics) SetActiveMatches(count int) {
	if m == nil {
		return
	}
	m.ActiveMatches.Set(float64(count))
}

func (m *Metrics) ObserveLeaderboardTier(difficulty string, eligible int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.LeaderboardRuns.WithLabelValues(difficulty, "failed").Inc()
		return
	}
	m.LeaderboardRuns.WithLabelValues(difficulty, "ok").Inc()
	m.Eligible.WithLabelValues(difficulty).Set(float64(eligible))
}

func (m *Metrics) ObserveRunDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(d.Seconds())
}
