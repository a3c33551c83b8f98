package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sponsorship"

var (
	HTTPRequestsHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_requests",
			Help:      "Time taken to process HTTP requests",
			Buckets:   []float64{.005, .01, .025, .05, .075, .1, .15, .2, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status"},
	)

	StoreRequestsHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_requests",
			Help:      "Time taken by store operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"driver", "operation", "error"},
	)

	DashboardDegradedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_degraded_total",
			Help:      "Number of dashboard parts served with fallback values",
		},
		[]string{"part"},
	)
)

func CollectHTTPRequest(method, route string, status int, start time.Time) {
	HTTPRequestsHistogram.
		WithLabelValues(method, route, strconv.Itoa(status)).
		Observe(time.Since(start).Seconds())
}

// CollectStoreRequest вызывается через defer в адаптерах хранилища.
func CollectStoreRequest(driver, operation string, err error, start time.Time) {
	StoreRequestsHistogram.
		WithLabelValues(driver, operation, errLabelValue(err)).
		Observe(time.Since(start).Seconds())
}

func CollectDashboardDegraded(part string) {
	DashboardDegradedCounter.WithLabelValues(part).Inc()
}

func errLabelValue(err error) string {
	if err != nil {
		return "true"
	}
	return "false"
}
