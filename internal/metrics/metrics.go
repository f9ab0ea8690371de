package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mapviewer"

// Fetch result labels
const (
	ResultSuccess     = "success"
	ResultFetchFailed = "fetch_failed"
	ResultStoreFailed = "store_failed"
)

// Recorder holds the viewer's collectors
type Recorder struct {
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	responseSize  prometheus.Histogram
	zoomLevel     prometheus.Gauge
	actions       *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tiles",
			Name:      "fetches_total",
			Help:      "Total static map fetches by result",
		}, []string{"result"}),

		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tiles",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of static map fetches",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),

		responseSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tiles",
			Name:      "response_size_bytes",
			Help:      "Size of fetched map images in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 7),
		}),

		zoomLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "zoom_level",
			Help:      "Current zoom level of the map view",
		}),

		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "actions_total",
			Help:      "Total navigation actions applied",
		}, []string{"action"}),
	}

	var err error
	if r.fetches, err = register(reg, r.fetches); err != nil {
		return nil, err
	}
	if r.fetchDuration, err = register(reg, r.fetchDuration); err != nil {
		return nil, err
	}
	if r.responseSize, err = register(reg, r.responseSize); err != nil {
		return nil, err
	}
	if r.zoomLevel, err = register(reg, r.zoomLevel); err != nil {
		return nil, err
	}
	if r.actions, err = register(reg, r.actions); err != nil {
		return nil, err
	}
	return r, nil
}

// register adds c to reg, reusing an identical collector registered earlier
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveFetch records one fetch attempt. A nil Recorder is a no-op.
func (r *Recorder) ObserveFetch(result string, duration time.Duration, size int) {
	if r == nil {
		return
	}
	r.fetches.WithLabelValues(result).Inc()
	r.fetchDuration.Observe(duration.Seconds())
	if result == ResultSuccess {
		r.responseSize.Observe(float64(size))
	}
}

// ObserveAction records a navigation action and the zoom it produced
func (r *Recorder) ObserveAction(action string, zoom int) {
	if r == nil {
		return
	}
	r.actions.WithLabelValues(action).Inc()
	r.zoomLevel.Set(float64(zoom))
}

// SetZoom publishes the current zoom level
func (r *Recorder) SetZoom(zoom int) {
	if r == nil {
		return
	}
	r.zoomLevel.Set(float64(zoom))
}

// Handler returns an HTTP handler exposing g in the Prometheus text format
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

// Serve starts a metrics listener on addr. It returns the server so the
// caller can shut it down; listen errors are delivered to onError.
func Serve(addr string, g prometheus.Gatherer, onError func(error)) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(g),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) && onError != nil {
			onError(err)
		}
	}()
	return srv
}
