// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層やミドルウェアから利用する。
type MetricsCollector interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	RecordRequestSubmitted(category string)
	RecordMessagePosted()
	RecordSensorReading()
	RecordPaymentIntent()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	requestsSubmitted *prometheus.CounterVec
	messagesPosted    prometheus.Counter
	sensorReadings    prometheus.Counter
	paymentIntents    prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "ルート・メソッド・ステータスコード別のHTTPリクエスト数",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTPリクエストの処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		requestsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_requests_submitted_total",
			Help: "受け付けたサービス依頼の合計数",
		}, []string{"category"}),
		messagesPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_messages_posted_total",
			Help: "投稿されたチャットメッセージの合計数",
		}),
		sensorReadings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_sensor_readings_total",
			Help: "受信したセンサー計測値の合計数",
		}),
		paymentIntents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_payment_intents_total",
			Help: "発行した支払いインテントの合計数",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.requestsSubmitted,
		c.messagesPosted,
		c.sensorReadings,
		c.paymentIntents,
	)

	return c
}

// RecordHTTPRequest はHTTPリクエストの結果と処理時間を記録する。
// routeにはパスパラメータを含まないルートパターンを渡すこと。
func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRequestSubmitted はサービス依頼の受付を記録する。
// categoryには上限のある値（フォームのカテゴリ、"other"、"unspecified"）を渡すこと。
// 空文字は "unspecified" として記録する。
func (c *Collector) RecordRequestSubmitted(category string) {
	if category == "" {
		category = "unspecified"
	}
	c.requestsSubmitted.WithLabelValues(category).Inc()
}

// RecordMessagePosted はメッセージ投稿を記録する。
func (c *Collector) RecordMessagePosted() {
	c.messagesPosted.Inc()
}

// RecordSensorReading はセンサー計測値の受信を記録する。
func (c *Collector) RecordSensorReading() {
	c.sensorReadings.Inc()
}

// RecordPaymentIntent は支払いインテントの発行を記録する。
func (c *Collector) RecordPaymentIntent() {
	c.paymentIntents.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}

// Nop は何も記録しないMetricsCollector。テストやメトリクス無効時に使用する。
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordRequestSubmitted(string)                         {}
func (Nop) RecordMessagePosted()                                  {}
func (Nop) RecordSensorReading()                                  {}
func (Nop) RecordPaymentIntent()                                  {}

var (
	_ MetricsCollector = (*Collector)(nil)
	_ MetricsCollector = Nop{}
)
