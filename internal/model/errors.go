// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string       // エラーコード
	Message  string       // エラーメッセージ（レスポンスのdetailに入る）
	Category string       // カテゴリ: validation, job, system
	Action   string       // ユーザー向け対処方法
	Fields   []FieldError // フィールド単位の検証エラー（入力検証時のみ）
}

// FieldError は入力検証エラーのフィールド単位の診断情報を表す。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeJobNotFound      = "JOB_NOT_FOUND"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeRateLimited      = "RATE_LIMIT_EXCEEDED"
)

// NewJobNotFoundError はジョブ未検出エラーを生成する。
// Messageはクライアントが参照する固定文言のため変更しないこと。
func NewJobNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeJobNotFound,
		Message:  "Job not found",
		Category: "job",
		Action:   "Check the job ID and try again.",
	}
}

// NewInvalidInputError は入力形式エラーを生成する。
func NewInvalidInputError(message string, fields ...FieldError) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidInput,
		Message:  message,
		Category: "validation",
		Action:   "Fix the highlighted fields and resend the request.",
		Fields:   fields,
	}
}

// NewStoreUnavailableError はストアが応答しない場合のエラーを生成する。
func NewStoreUnavailableError() *APIError {
	return &APIError{
		Code:     ErrCodeStoreUnavailable,
		Message:  "Storage is not available",
		Category: "system",
		Action:   "Please wait a moment and try again.",
	}
}

// NewRateLimitedError はレート制限超過エラーを生成する。
func NewRateLimitedError() *APIError {
	return &APIError{
		Code:     ErrCodeRateLimited,
		Message:  "Too many requests. Please try again later.",
		Category: "system",
		Action:   "Please wait and retry after the specified time.",
	}
}
