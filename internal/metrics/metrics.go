// Package metrics exposes the server's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScansTotal counts QR scans by event and progress-engine decision
	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cluetrail_scans_total",
		Help: "QR code scans by event and decision.",
	}, []string{"event", "decision"})

	// RacesStartedTotal counts race starts (including resumes) by event
	RacesStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cluetrail_races_started_total",
		Help: "Race starts by event.",
	}, []string{"event"})
)
