package middleware

import (
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	maxTenantLabels  = 100
	otherTenantLabel = "other"
)

var tenantLabelPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// tenantLabels admits at most limit distinct tenant values into the metric.
// Malformed names and anything past the cap are reported as "other".
type tenantLabels struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	limit int
}

func newTenantLabels(limit int) *tenantLabels {
	return &tenantLabels{seen: make(map[string]struct{}), limit: limit}
}

func (l *tenantLabels) value(td string) string {
	if td == "" {
		return ""
	}
	if !tenantLabelPattern.MatchString(td) {
		return otherTenantLabel
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[td]; ok {
		return td
	}
	if len(l.seen) >= l.limit {
		return otherTenantLabel
	}
	l.seen[td] = struct{}{}
	return td
}

// PrometheusMiddleware holds the prometheus metrics and registry.
type PrometheusMiddleware struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	tenants         *tenantLabels
}

// NewPrometheusMiddleware creates a new PrometheusMiddleware.
func NewPrometheusMiddleware(reg prometheus.Registerer) (*PrometheusMiddleware, error) {
	m := &PrometheusMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status", "tenant"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		tenants: newTenantLabels(maxTenantLabels),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler returns the fiber middleware handler.
func (m *PrometheusMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Exclude /metrics from being counted
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// Route pattern keeps label cardinality bounded (/applications/:id, not the id).
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		// Set by the Tenant middleware; empty for routes outside the API tree.
		td, _ := c.Locals(TenantLocalKey).(string)

		m.requestCount.WithLabelValues(
			c.Method(),
			path,
			strconv.Itoa(statusOf(c, err)),
			m.tenants.value(td),
		).Inc()
		m.requestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
