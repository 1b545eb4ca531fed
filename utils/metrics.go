package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "haviaa_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	BookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haviaa_booking_transitions_total",
		Help: "Booking lifecycle transitions by resulting status",
	}, []string{"status"})

	SlotConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haviaa_slot_conflicts_total",
		Help: "Booking attempts rejected because the slot was taken",
	})

	ReplacementRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haviaa_replacement_requests_total",
		Help: "Replacement requests filed for manual review",
	})

	QuotesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haviaa_quotes_total",
		Help: "Price quotes computed by daily-hours tier",
	}, []string{"tier"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "haviaa_active_sessions",
		Help: "Sessions opened minus sessions closed since start",
	})
)
