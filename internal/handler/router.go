package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/portal/internal/metrics"
	"github.com/hitoshi/portal/internal/middleware"
	"github.com/hitoshi/portal/internal/model"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Metrics           metrics.MetricsCollector
	MetricsHandler    http.Handler

	// ヘルスチェック
	Store Pinger

	// サービス
	CatalogService CatalogServiceInterface
	RequestService RequestServiceInterface
	MessageService MessageServiceInterface
	PaymentGateway PaymentGatewayInterface
	SensorService  SensorServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → RequestContext → Logging → SecurityHeaders → CORS → Metrics → RateLimit
//
// /health と /metrics はレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	collector := deps.Metrics
	if collector == nil {
		collector = metrics.Nop{}
	}

	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewRequestContextMiddleware())
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewMetricsMiddleware(collector))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeAPIErrorResponse(w, http.StatusNotFound, &model.APIError{
			Code:     "NOT_FOUND",
			Message:  "Not Found",
			Category: "system",
			Action:   "Check the request path.",
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeAPIErrorResponse(w, http.StatusMethodNotAllowed, &model.APIError{
			Code:     "METHOD_NOT_ALLOWED",
			Message:  "Method Not Allowed",
			Category: "system",
			Action:   "Check the request method.",
		})
	})

	portalHandler := NewPortalHandler(deps.CatalogService)
	requestHandler := NewRequestHandler(deps.RequestService)
	messageHandler := NewMessageHandler(deps.MessageService)
	paymentHandler := NewPaymentHandler(deps.PaymentGateway)
	sensorHandler := NewSensorHandler(deps.SensorService)
	healthHandler := NewHealthHandler(deps.Store)

	// --- 運用エンドポイント ---
	r.Get("/health", healthHandler.Health)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// --- ポータルAPI ---
	r.Group(func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.Middleware())
		}

		r.Get("/me", portalHandler.Me)

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", portalHandler.ListJobs)
			r.Get("/{job_id}", portalHandler.GetJob)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", requestHandler.CreateRequest)
			r.Get("/", requestHandler.ListRequests)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", portalHandler.ListInvoices)
			r.Post("/{invoice_id}/pay", paymentHandler.PayInvoice)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", messageHandler.PostMessage)
			r.Get("/", messageHandler.ListMessages)
		})

		r.Get("/promos", portalHandler.ListPromos)
		r.Get("/faqs", portalHandler.ListFAQs)
		r.Get("/membership", portalHandler.Membership)

		r.Post("/sensors/{sensor_id}/readings", sensorHandler.PostReading)
	})

	return r
}
