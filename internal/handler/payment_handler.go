package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/portal/internal/model"
)

// PaymentGatewayInterface は請求書支払いハンドラーが必要とする決済インターフェース。
type PaymentGatewayInterface interface {
	// CreatePaymentIntent は請求書の支払いインテントを発行する。
	CreatePaymentIntent(ctx context.Context, invoiceID int64) (*model.PaymentIntent, error)
}

// PaymentHandler は請求書支払いのHTTPハンドラー。
type PaymentHandler struct {
	gateway PaymentGatewayInterface
}

// NewPaymentHandler はPaymentHandlerを生成する。
func NewPaymentHandler(gateway PaymentGatewayInterface) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// PayInvoice は請求書の支払いインテントを発行する。
// POST /invoices/{invoice_id}/pay
func (h *PaymentHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID, apiErr := parseIntParam(r, "invoice_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusUnprocessableEntity, apiErr)
		return
	}

	intent, err := h.gateway.CreatePaymentIntent(r.Context(), invoiceID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, intent)
}

// SetupPaymentRoutes は請求書支払いのルーティングを設定したchi.Routerを返す。
func SetupPaymentRoutes(gateway PaymentGatewayInterface) http.Handler {
	r := chi.NewRouter()
	h := NewPaymentHandler(gateway)

	r.Post("/invoices/{invoice_id}/pay", h.PayInvoice)

	return r
}
