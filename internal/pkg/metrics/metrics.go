package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec

	// イベント操作の総数（operation: add/edit/delete, status: success/error）
	EventOperationsTotal *prometheus.CounterVec

	// バッキングファイルへの保存回数（status: success/failure）
	StoreSavesTotal *prometheus.CounterVec

	// ストアが保持しているイベント数
	CalendarEvents prometheus.Gauge
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		EventOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_operations_total",
				Help: "Total number of calendar event operations",
			},
			[]string{"operation", "status"},
		),
		StoreSavesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_saves_total",
				Help: "Total number of backing file writes",
			},
			[]string{"status"},
		),
		CalendarEvents: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "calendar_events",
				Help: "Current number of events held by the store",
			},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.EventOperationsTotal,
		m.StoreSavesTotal,
		m.CalendarEvents,
	)

	return m
}

// デフォルトのメトリクスインスタンス
var defaultMetrics *Metrics

// Init はデフォルトのメトリクスインスタンスを初期化する
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

// Get はデフォルトのメトリクスインスタンスを返す
func Get() *Metrics {
	return defaultMetrics
}

// ObserveEventOperation はイベント操作の結果を記録する
// Initが呼ばれていない場合は何もしない
func ObserveEventOperation(operation string, success bool) {
	if defaultMetrics == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	defaultMetrics.EventOperationsTotal.WithLabelValues(operation, status).Inc()
}

// ObserveStoreSave はバッキングファイルへの保存結果を記録する
// Initが呼ばれていない場合は何もしない
func ObserveStoreSave(success bool) {
	if defaultMetrics == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	defaultMetrics.StoreSavesTotal.WithLabelValues(status).Inc()
}

// SetCalendarEvents はストアが保持しているイベント数を記録する
// Initが呼ばれていない場合は何もしない
func SetCalendarEvents(count int) {
	if defaultMetrics == nil {
		return
	}
	defaultMetrics.CalendarEvents.Set(float64(count))
}
