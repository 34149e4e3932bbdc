package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lenslearn", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "status"})
	PaymentIntents = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lenslearn", Name: "payment_intents_total", Help: "Payment intents created with the gateway",
	})
	PaymentsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lenslearn", Name: "payments_recorded_total", Help: "Payment records persisted",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lenslearn", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal, PaymentIntents, PaymentsRecorded, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
