// Package metrics métricas Prometheus de la API (HTTP y negocio de lencería).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

const namespace = "haru"

// Metrics colectores propios sobre un registry aislado (no el global).
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	linenUnmatched *prometheus.CounterVec
	linenReports   *prometheus.CounterVec
	chatSubs       prometheus.Gauge
}

// New registra los colectores, incluidos los de proceso y runtime de Go.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		linenUnmatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "linen",
			Name:      "unmatched_names_total",
			Help:      "Etiquetas registradas que no coinciden con ninguna categoría del catálogo.",
		}, []string{"kind"}),
		linenReports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "linen",
			Name:      "reports_total",
			Help:      "Reportes de lencería generados por formato.",
		}, []string{"format"}),
		chatSubs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "subscribers",
			Help:      "Conexiones de chat en vivo abiertas.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.linenUnmatched,
		m.linenReports,
		m.chatSubs,
	)
	return m
}

// Registry expone el registry (tests y exportadores adicionales).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler handler net/http para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP registra una petición terminada. route es el patrón de ruta, no la URL.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// UnmatchedLinenName cuenta una etiqueta fuera del catálogo.
func (m *Metrics) UnmatchedLinenName(kind linen.Kind) {
	m.linenUnmatched.WithLabelValues(string(kind)).Inc()
}

// LinenReportGenerated cuenta un reporte generado.
func (m *Metrics) LinenReportGenerated(format string) {
	m.linenReports.WithLabelValues(format).Inc()
}

// ChatSubscribed / ChatUnsubscribed siguen las conexiones de chat abiertas.
func (m *Metrics) ChatSubscribed()   { m.chatSubs.Inc() }
func (m *Metrics) ChatUnsubscribed() { m.chatSubs.Dec() }
