package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("wordduel", reg)

	m.ObserveGuess(GuessAccepted)
	m.ObserveGuess(GuessAccepted)
	m.ObserveGuess(GuessStale)
	m.ObserveResolution(OutcomeWin)
	m.ObserveNotification(true)
	m.ObserveNotification(false)
	m.SetActiveMatches(3)
	m.ObserveLeaderboardTier("easy", 12, nil)
	m.ObserveLeaderboardTier("hard", 0, errors.New("boom"))
	m.ObserveRunDuration(150 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Guesses.WithLabelValues(GuessAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Guesses.WithLabelValues(GuessStale)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MatchesResolved.WithLabelValues(OutcomeWin)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("failed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveMatches))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LeaderboardRuns.WithLabelValues("easy", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LeaderboardRuns.WithLabelValues("hard", "failed")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.Eligible.WithLabelValues("easy")))

	count, err := testutil.GatherAndCount(reg, "wordduel_leaderboard_run_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveGuess(GuessAccepted)
		m.ObserveResolution(OutcomeTie)
		m.ObserveNotification(true)
		m.SetActiveMatches(1)
		m.ObserveLeaderboardTier("easy", 1, nil)
		m.ObserveRunDuration(time.Second)
	})
}
