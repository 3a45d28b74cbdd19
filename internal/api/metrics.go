// SPDX-License-Identifier: MIT

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pagevet/pagevet/internal/validate"
)

var (
	requestsValidated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagevet_requests_validated_total",
		Help: "Number of requests run through the expectation checks",
	}, []string{"method", "outcome"})

	findingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagevet_findings_total",
		Help: "Number of validation findings by kind",
	}, []string{"kind"})
)

func recordVerdict(method string, verdict validate.Verdict) {
	outcome := "fail"
	if verdict.Pass() {
		outcome = "pass"
	}
	requestsValidated.WithLabelValues(method, outcome).Inc()

	for _, f := range verdict.Findings {
		findingsTotal.WithLabelValues(string(f.Kind)).Inc()
	}
}
