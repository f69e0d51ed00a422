package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Accounts registered, by role.",
		},
		[]string{"role"},
	)

	applications = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_total",
			Help:      "Applications submitted.",
		},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "application_updates_total",
			Help:      "Application status and approval changes, by new value.",
		},
		[]string{"field", "value"},
	)

	messages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Message send attempts, by outcome.",
		},
		[]string{"outcome"},
	)

	interviews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interviews_scheduled_total",
			Help:      "Interviews scheduled.",
		},
	)

	bans = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_banned_total",
			Help:      "Accounts removed by admin ban.",
		},
	)

	statsCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stats_cache_lookups_total",
			Help:      "Admin stats cache lookups, by result.",
		},
		[]string{"result"},
	)
)

func Registered(role string) { registrations.WithLabelValues(role).Inc() }

func Applied() { applications.Inc() }

func StatusChanged(value string) { statusChanges.WithLabelValues("status", value).Inc() }

func ApprovalChanged(value string) { statusChanges.WithLabelValues("approval", value).Inc() }

// MessageSent records a send attempt; outcome is "sent" or "blocked".
func MessageSent(outcome string) { messages.WithLabelValues(outcome).Inc() }

func InterviewScheduled() { interviews.Inc() }

func Banned(n int) { bans.Add(float64(n)) }

// StatsCacheLookup records "hit", "miss" or "error".
func StatsCacheLookup(result string) { statsCache.WithLabelValues(result).Inc() }
