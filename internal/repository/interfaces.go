// Package repository はデータ永続化のインターフェースを定義する。
//
// ストアはいずれもプロセスの生存期間だけデータを保持する。
package repository

import (
	"context"

	"github.com/hitoshi/portal/internal/model"
)

// FirstRequestID はサービス依頼に最初に払い出すID。
// 以降のIDは単調増加し、並行に作成されても重複しない。
const FirstRequestID int64 = 1001

// RequestRepository はサービス依頼の永続化インターフェース。
type RequestRepository interface {
	// Create はサービス依頼を追加し、払い出したIDをreq.IDに設定する。
	// 入力のIDは無視する。
	Create(ctx context.Context, req *model.ServiceRequest) error

	// List は全件を登録順に返す。0件の場合は空スライスを返す。
	List(ctx context.Context) ([]*model.ServiceRequest, error)

	// Count は登録件数を返す。
	Count(ctx context.Context) (int, error)
}

// MessageRepository はチャットメッセージの永続化インターフェース。
type MessageRepository interface {
	// Create はメッセージを追加する。IDは呼び出し側の指定値をそのまま保存する。
	Create(ctx context.Context, msg *model.Message) error

	// List は全件を投稿順に返す。0件の場合は空スライスを返す。
	List(ctx context.Context) ([]*model.Message, error)

	// ListByJobID は指定ジョブのメッセージを投稿順に返す。
	ListByJobID(ctx context.Context, jobID int64) ([]*model.Message, error)
}
