package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder registra durata e volume delle richieste HTTP del sito.
// Va istanziato una sola volta: promauto va in panic alla seconda
// registrazione degli stessi collector.
type MetricsBuilder struct {
	durata *prometheus.SummaryVec
	totale *prometheus.CounterVec
	inVolo prometheus.Gauge
}

func NewMetricsBuilder() *MetricsBuilder {
	return &MetricsBuilder{
		durata: promauto.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: "intus",
				Name:      "http_request_duration_seconds",
				Help:      "Durata delle richieste HTTP in secondi",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		totale: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "intus",
				Name:      "http_requests_total",
				Help:      "Numero totale di richieste HTTP",
			},
			[]string{"method", "path", "status_code"},
		),
		inVolo: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "intus",
				Name:      "http_requests_in_flight",
				Help:      "Richieste HTTP in corso",
			},
		),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		b.inVolo.Inc()

		ctx.Next()

		b.inVolo.Dec()
		method := ctx.Request.Method
		// FullPath è vuoto sulle rotte non registrate, il 404 finisce
		// sotto il path grezzo
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		b.durata.WithLabelValues(method, path, statusCode).
			Observe(time.Since(start).Seconds())
		b.totale.WithLabelValues(method, path, statusCode).Inc()
	}
}
