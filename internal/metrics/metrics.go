package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	ListingRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialapi_listing_requests_total",
		Help: "Listing calls by collection and outcome.",
	}, []string{"collection", "outcome"})

	ListingPageSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "socialapi_listing_page_size",
		Help:    "Number of children returned per page.",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
	}, []string{"collection"})

	DegradedCursorTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialapi_listing_degraded_cursor_total",
		Help: "Cursors that did not resolve to a live anchor and fell back to the first page.",
	}, []string{"collection"})

	MarkReadErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialapi_mark_read_errors_total",
		Help: "Failed best-effort read markers written while listing.",
	}, []string{"collection"})
)
