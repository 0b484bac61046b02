// Package metrics содержит Prometheus-метрики сервиса оценок.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lifeclock"

// Metrics — набор коллекторов, которые обновляет сервис оценок.
type Metrics struct {
	EstimatesTotal *prometheus.CounterVec
	LifeExpectancy prometheus.Histogram
	FreeYearsLeft  prometheus.Histogram
	PublishErrors  prometheus.Counter
}

// New создаёт коллекторы и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EstimatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Number of served estimates by source (computed or cache).",
		}, []string{"source"}),
		LifeExpectancy: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "life_expectancy_years",
			Help:      "Distribution of computed life expectancy.",
			Buckets:   prometheus.LinearBuckets(50, 5, 10),
		}),
		FreeYearsLeft: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "free_years_left",
			Help:      "Distribution of computed free years left.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_errors_total",
			Help:      "Number of estimate events that failed to publish.",
		}),
	}

	reg.MustRegister(m.EstimatesTotal, m.LifeExpectancy, m.FreeYearsLeft, m.PublishErrors)
	return m
}

// ObserveComputed учитывает новую оценку.
func (m *Metrics) ObserveComputed(lifeExpectancy, freeYears float64) {
	m.EstimatesTotal.WithLabelValues("computed").Inc()
	m.LifeExpectancy.Observe(lifeExpectancy)
	m.FreeYearsLeft.Observe(freeYears)
}

// ObserveCacheHit учитывает оценку, отданную из кеша.
func (m *Metrics) ObserveCacheHit() {
	m.EstimatesTotal.WithLabelValues("cache").Inc()
}

// ObservePublishError учитывает неудачную публикацию события.
func (m *Metrics) ObservePublishError() {
	m.PublishErrors.Inc()
}
