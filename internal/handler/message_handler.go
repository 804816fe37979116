package handler

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hitoshi/portal/internal/model"
)

// MessageServiceInterface はメッセージハンドラーが必要とするサービスインターフェース。
type MessageServiceInterface interface {
	// Post はメッセージを保存し、同じレコードを返す。
	Post(ctx context.Context, msg model.Message) (*model.Message, error)
	// List はメッセージを投稿順に返す。jobIDがnilなら全件。
	List(ctx context.Context, jobID *int64) ([]*model.Message, error)
}

// MessageHandler はチャットメッセージのHTTPハンドラー。
type MessageHandler struct {
	service  MessageServiceInterface
	validate *validator.Validate
}

// NewMessageHandler はMessageHandlerを生成する。
func NewMessageHandler(service MessageServiceInterface) *MessageHandler {
	return &MessageHandler{
		service:  service,
		validate: newValidator(),
	}
}

// postMessageRequest はメッセージ投稿リクエストのボディ。
// 必須項目の欠落とゼロ値を区別するためポインタで受ける。
type postMessageRequest struct {
	ID     *int64   `json:"id" validate:"required"`
	JobID  *int64   `json:"job_id" validate:"required"`
	Sender *string  `json:"sender" validate:"required"`
	Text   *string  `json:"text" validate:"required"`
	Media  []string `json:"media"`
}

func (req postMessageRequest) toModel() model.Message {
	return model.Message{
		ID:     *req.ID,
		JobID:  *req.JobID,
		Sender: *req.Sender,
		Text:   *req.Text,
		Media:  req.Media,
	}
}

// PostMessage はメッセージを投稿する。
// POST /messages
func (h *MessageHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if apiErr := decodeJSONBody(w, r, &req); apiErr != nil {
		writeAPIErrorResponse(w, http.StatusUnprocessableEntity, apiErr)
		return
	}

	if err := h.validate.StructCtx(r.Context(), req); err != nil {
		writeAPIErrorResponse(w, http.StatusUnprocessableEntity, validationError(err))
		return
	}

	msg, err := h.service.Post(r.Context(), req.toModel())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// ListMessages はメッセージ一覧を返す。
// GET /messages?job_id=101
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	jobID, apiErr := parseOptionalIntQuery(r, "job_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusUnprocessableEntity, apiErr)
		return
	}

	messages, err := h.service.List(r.Context(), jobID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if messages == nil {
		messages = []*model.Message{}
	}

	writeJSON(w, http.StatusOK, messages)
}

// SetupMessageRoutes はメッセージのルーティングを設定したchi.Routerを返す。
func SetupMessageRoutes(service MessageServiceInterface) http.Handler {
	r := chi.NewRouter()
	h := NewMessageHandler(service)

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", h.PostMessage)
		r.Get("/", h.ListMessages)
	})

	return r
}

// newValidator はエラーのフィールド名にJSONタグ名を使うvalidatorを生成する。
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError はvalidatorのエラーをフィールド単位の診断付きAPIErrorに変換する。
func validationError(err error) *model.APIError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return model.NewInvalidInputError("invalid input shape", model.FieldError{
			Field:   "body",
			Message: err.Error(),
			Code:    "validation_failed",
		})
	}

	fields := make([]model.FieldError, 0, len(errs))
	for _, fe := range errs {
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", fe.Field())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
		fields = append(fields, model.FieldError{
			Field:   fe.Field(),
			Message: message,
			Code:    fe.Tag(),
		})
	}
	return model.NewInvalidInputError("invalid input shape", fields...)
}
