// Package metrics holds the Prometheus collectors of the movie club bot.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "movieclub"

type Metrics struct {
	picksRegistered *prometheus.CounterVec
	skipsRecorded   *prometheus.CounterVec
	ratingsRecorded prometheus.Counter
	rosterChanges   *prometheus.CounterVec
	commands        *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	catalogLookups  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		picksRegistered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "picks_registered_total",
			Help:      "Picks registered or updated, by early access.",
		}, []string{"early_access"}),
		skipsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skips_recorded_total",
			Help:      "Rotation periods skipped by admins, by target.",
		}, []string{"target"}),
		ratingsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_recorded_total",
			Help:      "Ratings submitted or updated.",
		}),
		rosterChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_changes_total",
			Help:      "Roster mutations, by operation.",
		}, []string{"op"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slash_commands_total",
			Help:      "Slash commands handled, by command and outcome.",
		}, []string{"command", "outcome"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slash_command_duration_seconds",
			Help:      "Slash command handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"command"}),
		catalogLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_lookups_total",
			Help:      "Movie catalog lookups, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.picksRegistered,
		m.skipsRecorded,
		m.ratingsRecorded,
		m.rosterChanges,
		m.commands,
		m.commandDuration,
		m.catalogLookups,
	)

	return m
}

func (m *Metrics) PickRegistered(earlyAccess bool) {
	if m == nil {
		return
	}
	m.picksRegistered.WithLabelValues(strconv.FormatBool(earlyAccess)).Inc()
}

func (m *Metrics) SkipRecorded(target string) {
	if m == nil {
		return
	}
	m.skipsRecorded.WithLabelValues(target).Inc()
}

func (m *Metrics) RatingRecorded() {
	if m == nil {
		return
	}
	m.ratingsRecorded.Inc()
}

func (m *Metrics) RosterChanged(op string) {
	if m == nil {
		return
	}
	m.rosterChanges.WithLabelValues(op).Inc()
}

func (m *Metrics) CatalogLookup(result string) {
	if m == nil {
		return
	}
	m.catalogLookups.WithLabelValues(result).Inc()
}

// CommandHandled records one slash command
func (m *Metrics) CommandHandled(command string, ok bool, took time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.commands.WithLabelValues(command, outcome).Inc()
	m.commandDuration.WithLabelValues(command).Observe(took.Seconds())
}
