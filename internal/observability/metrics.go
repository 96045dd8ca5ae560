// Package observability registers the service's prometheus collectors.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	responsesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sweatjunkies",
		Subsystem: "http",
		Name:      "responses_total",
		Help:      "API responses by status code.",
	}, []string{"status"})
	emailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sweatjunkies",
		Subsystem: "notify",
		Name:      "emails_total",
		Help:      "Transactional emails by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(responsesTotal, emailsTotal)
}

// RecordResponse counts an API response by status code.
func RecordResponse(status int) {
	responsesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// RecordEmail counts an email send attempt.
func RecordEmail(ok bool) {
	outcome := "sent"
	if !ok {
		outcome = "failed"
	}
	emailsTotal.WithLabelValues(outcome).Inc()
}
