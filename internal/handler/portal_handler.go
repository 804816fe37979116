package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/portal/internal/model"
)

// CatalogServiceInterface は固定データの参照系エンドポイントが必要とするサービスインターフェース。
type CatalogServiceInterface interface {
	// CurrentUser はログイン中の顧客を返す。
	CurrentUser(ctx context.Context) *model.User
	// ListJobs はジョブ一覧を返す。statusが空でなければ完全一致で絞り込む。
	ListJobs(ctx context.Context, status string) []model.Job
	// GetJob はIDでジョブを取得する。見つからない場合は JOB_NOT_FOUND を返す。
	GetJob(ctx context.Context, id int64) (*model.Job, error)
	// ListInvoices は請求書一覧を返す。statusが空でなければ完全一致で絞り込む。
	ListInvoices(ctx context.Context, status string) []model.Invoice
	ListPromos(ctx context.Context) []model.Promo
	ListFAQs(ctx context.Context) []model.FAQ
	Membership(ctx context.Context) *model.Membership
}

// PortalHandler は顧客ポータルの参照系HTTPハンドラー。
type PortalHandler struct {
	service CatalogServiceInterface
}

// NewPortalHandler はPortalHandlerを生成する。
func NewPortalHandler(service CatalogServiceInterface) *PortalHandler {
	return &PortalHandler{service: service}
}

// Me はログイン中の顧客情報を返す。
// GET /me
func (h *PortalHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.CurrentUser(r.Context()))
}

// ListJobs はジョブ一覧を返す。
// GET /jobs?status=open|past
func (h *PortalHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	writeJSON(w, http.StatusOK, h.service.ListJobs(r.Context(), status))
}

// GetJob はジョブ詳細を返す。
// GET /jobs/{job_id}
func (h *PortalHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, apiErr := parseIntParam(r, "job_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusUnprocessableEntity, apiErr)
		return
	}

	job, err := h.service.GetJob(r.Context(), jobID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// ListInvoices は請求書一覧を返す。
// GET /invoices?status=open|paid
func (h *PortalHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	writeJSON(w, http.StatusOK, h.service.ListInvoices(r.Context(), status))
}

// ListPromos はプロモーション一覧を返す。
// GET /promos
func (h *PortalHandler) ListPromos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListPromos(r.Context()))
}

// ListFAQs はFAQ一覧を返す。
// GET /faqs
func (h *PortalHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListFAQs(r.Context()))
}

// Membership は会員プランを返す。
// GET /membership
func (h *PortalHandler) Membership(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Membership(r.Context()))
}

// SetupPortalRoutes は参照系のルーティングを設定したchi.Routerを返す。
func SetupPortalRoutes(service CatalogServiceInterface) http.Handler {
	r := chi.NewRouter()
	h := NewPortalHandler(service)

	r.Get("/me", h.Me)
	r.Get("/jobs", h.ListJobs)
	r.Get("/jobs/{job_id}", h.GetJob)
	r.Get("/invoices", h.ListInvoices)
	r.Get("/promos", h.ListPromos)
	r.Get("/faqs", h.ListFAQs)
	r.Get("/membership", h.Membership)

	return r
}
