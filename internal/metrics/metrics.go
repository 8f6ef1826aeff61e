package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registerAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_register_attempts_total",
		Help: "Number of registration attempts grouped by status.",
	}, []string{"status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	githubLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_github_lookups_total",
		Help: "GitHub repo proxy lookups grouped by outcome (hit, miss, error).",
	}, []string{"outcome"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncRegister increments the registration counter.
func IncRegister(status string) {
	registerAttempts.WithLabelValues(status).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncGithub increments the GitHub lookup counter.
func IncGithub(outcome string) {
	githubLookups.WithLabelValues(outcome).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
