package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saasbase", Name: "documents_created_total", Help: "Number of documents inserted by collection."},
		[]string{"collection"},
	)
	DocumentsRead = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saasbase", Name: "documents_read_total", Help: "Number of documents returned by reads, by collection."},
		[]string{"collection"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saasbase", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saasbase", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsCreated)
	reg.MustRegister(DocumentsRead)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
