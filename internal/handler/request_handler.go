package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/portal/internal/model"
)

// RequestServiceInterface はサービス依頼ハンドラーが必要とするサービスインターフェース。
type RequestServiceInterface interface {
	// Create は依頼を受け付け、IDと受付日時を払い出したレコードを返す。
	Create(ctx context.Context, in model.ServiceRequest) (*model.ServiceRequest, error)
	// List は受け付けた依頼を受付順に返す。
	List(ctx context.Context) ([]*model.ServiceRequest, error)
}

// RequestHandler はサービス依頼のHTTPハンドラー。
type RequestHandler struct {
	service RequestServiceInterface
}

// NewRequestHandler はRequestHandlerを生成する。
func NewRequestHandler(service RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequest はサービス依頼を受け付ける。
// ボディは任意のJSONオブジェクトで、既知フィールド以外もそのまま保存する。
// POST /requests
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var in model.ServiceRequest
	if apiErr := decodeJSONBody(w, r, &in); apiErr != nil {
		writeAPIErrorResponse(w, http.StatusUnprocessableEntity, apiErr)
		return
	}

	created, err := h.service.Create(r.Context(), in)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// ListRequests は受け付けたサービス依頼の一覧を返す。
// GET /requests
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if requests == nil {
		requests = []*model.ServiceRequest{}
	}

	writeJSON(w, http.StatusOK, requests)
}

// SetupRequestRoutes はサービス依頼のルーティングを設定したchi.Routerを返す。
func SetupRequestRoutes(service RequestServiceInterface) http.Handler {
	r := chi.NewRouter()
	h := NewRequestHandler(service)

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", h.CreateRequest)
		r.Get("/", h.ListRequests)
	})

	return r
}
