// Package handler はHTTPハンドラーとルーティングを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/portal/internal/middleware"
	"github.com/hitoshi/portal/internal/model"
)

// maxBodyBytes はリクエストボディの上限サイズ。
const maxBodyBytes = 1 << 20

// writeJSON はステータスコードとJSONボディを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	middleware.WriteErrorResponse(w, statusCode, apiErr)
}

// handleServiceError はサービス層のエラーを適切なHTTPレスポンスに変換する。
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error",
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
	)
	middleware.WriteInternalServerError(w)
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeJobNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidInput:
		return http.StatusUnprocessableEntity
	case model.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	case model.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSONBody はリクエストボディをvにデコードする。
// 失敗した場合はフィールド単位の診断を含む入力形式エラーを返す。
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) *model.APIError {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var (
		apiErr      *model.APIError
		typeErr     *json.UnmarshalTypeError
		syntaxErr   *json.SyntaxError
		maxBytesErr *http.MaxBytesError
	)
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return model.NewInvalidInputError("invalid input shape", model.FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
			Code:    "type_mismatch",
		})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return model.NewInvalidInputError("invalid input shape", model.FieldError{
			Field:   "body",
			Message: "malformed JSON",
			Code:    "json_invalid",
		})
	case errors.Is(err, io.EOF):
		return model.NewInvalidInputError("invalid input shape", model.FieldError{
			Field:   "body",
			Message: "request body is required",
			Code:    "required",
		})
	case errors.As(err, &maxBytesErr):
		return model.NewInvalidInputError("invalid input shape", model.FieldError{
			Field:   "body",
			Message: fmt.Sprintf("must not exceed %d bytes", maxBytesErr.Limit),
			Code:    "too_large",
		})
	default:
		return model.NewInvalidInputError("invalid input shape", model.FieldError{
			Field:   "body",
			Message: err.Error(),
			Code:    "json_invalid",
		})
	}
}

// parseIntParam はパスパラメータを整数として解釈する。
func parseIntParam(r *http.Request, name string) (int64, *model.APIError) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, model.NewInvalidInputError("invalid input shape", model.FieldError{
			Field:   name,
			Message: "must be an integer",
			Code:    "type_integer",
		})
	}
	return id, nil
}

// parseOptionalIntQuery はクエリパラメータを整数として解釈する。
// パラメータが存在しない場合はnilを返す。
func parseOptionalIntQuery(r *http.Request, name string) (*int64, *model.APIError) {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil, nil
	}
	v, err := strconv.ParseInt(values[0], 10, 64)
	if err != nil {
		return nil, model.NewInvalidInputError("invalid input shape", model.FieldError{
			Field:   name,
			Message: "must be an integer",
			Code:    "type_integer",
		})
	}
	return &v, nil
}
