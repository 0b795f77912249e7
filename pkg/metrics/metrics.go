package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpBuckets   = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}
	layoutBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25}
	groupBuckets  = []float64{1, 2, 3, 4, 6, 8, 12, 16}
)

// Metrics набор prometheus коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	LayoutDuration       *prometheus.HistogramVec
	OverlapGroupSize     *prometheus.HistogramVec
	InvalidBookingsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry.
// Уже зарегистрированные коллекторы переиспользуются.
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Count of processed HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency distribution of HTTP handlers",
			Buckets: httpBuckets,
		}, []string{"service", "method", "route", "status"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		LayoutDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "timeline_layout_duration_seconds",
			Help:    "Duration of a board layout pass",
			Buckets: layoutBuckets,
		}, []string{"service"}),
		OverlapGroupSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "timeline_overlap_group_size",
			Help:    "Number of bookings sharing one overlap group",
			Buckets: groupBuckets,
		}, []string{"service"}),
		InvalidBookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timeline_invalid_bookings_total",
			Help: "Bookings skipped by the layout pass because of malformed data",
		}, []string{"service"}),
	}

	m.HTTPRequestsTotal = register(reg, m.HTTPRequestsTotal)
	m.HTTPRequestDuration = register(reg, m.HTTPRequestDuration)
	m.DBOpenConnections = register(reg, m.DBOpenConnections)
	m.DBInUse = register(reg, m.DBInUse)
	m.DBIdle = register(reg, m.DBIdle)
	m.DBWaitCount = register(reg, m.DBWaitCount)
	m.LayoutDuration = register(reg, m.LayoutDuration)
	m.OverlapGroupSize = register(reg, m.OverlapGroupSize)
	m.InvalidBookingsTotal = register(reg, m.InvalidBookingsTotal)

	return m
}

// register регистрирует коллектор; при повторной регистрации возвращает существующий
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(service, method, route string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"service": service,
		"method":  method,
		"route":   route,
		"status":  strconv.Itoa(status),
	}
	m.HTTPRequestsTotal.With(labels).Inc()
	m.HTTPRequestDuration.With(labels).Observe(duration.Seconds())
}

// ObserveLayout записывает результат прохода раскладки доски
func (m *Metrics) ObserveLayout(service string, duration time.Duration, groupSizes []int, invalid int) {
	m.LayoutDuration.WithLabelValues(service).Observe(duration.Seconds())
	for _, size := range groupSizes {
		m.OverlapGroupSize.WithLabelValues(service).Observe(float64(size))
	}
	if invalid > 0 {
		m.InvalidBookingsTotal.WithLabelValues(service).Add(float64(invalid))
	}
}
