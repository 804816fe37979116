package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hitoshi/portal/internal/model"
)

// SQLiteMessageRepo はSQLiteを使用したチャットメッセージリポジトリ。
// メッセージIDは投稿者指定のため一意ではなく、投稿順はseq列で保持する。
type SQLiteMessageRepo struct {
	db *sql.DB
}

// NewSQLiteMessageRepo はSQLiteMessageRepoを生成する。
func NewSQLiteMessageRepo(db *sql.DB) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: db}
}

// Create はメッセージを追加する。
func (r *SQLiteMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	// mediaの有無（null）と空配列を区別して保存する
	var media sql.NullString
	if msg.Media != nil {
		b, err := json.Marshal(msg.Media)
		if err != nil {
			return fmt.Errorf("メディア一覧のエンコードに失敗しました: %w", err)
		}
		media = sql.NullString{String: string(b), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, job_id, sender, text, media) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.JobID, msg.Sender, msg.Text, media,
	)
	if err != nil {
		return fmt.Errorf("メッセージの登録に失敗しました: %w", err)
	}
	return nil
}

// List は全件を投稿順に返す。
func (r *SQLiteMessageRepo) List(ctx context.Context) ([]*model.Message, error) {
	return r.query(ctx,
		`SELECT id, job_id, sender, text, media FROM messages ORDER BY seq ASC`,
	)
}

// ListByJobID は指定ジョブのメッセージを投稿順に返す。
func (r *SQLiteMessageRepo) ListByJobID(ctx context.Context, jobID int64) ([]*model.Message, error) {
	return r.query(ctx,
		`SELECT id, job_id, sender, text, media FROM messages WHERE job_id = ? ORDER BY seq ASC`,
		jobID,
	)
}

func (r *SQLiteMessageRepo) query(ctx context.Context, query string, args ...any) ([]*model.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("メッセージ一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	messages := make([]*model.Message, 0)
	for rows.Next() {
		msg := &model.Message{}
		var media sql.NullString
		if err := rows.Scan(&msg.ID, &msg.JobID, &msg.Sender, &msg.Text, &media); err != nil {
			return nil, fmt.Errorf("メッセージ行の読み取りに失敗しました: %w", err)
		}
		if media.Valid {
			if err := json.Unmarshal([]byte(media.String), &msg.Media); err != nil {
				return nil, fmt.Errorf("メディア一覧のデコードに失敗しました: %w", err)
			}
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("メッセージ一覧の走査に失敗しました: %w", err)
	}
	return messages, nil
}

// compile-time interface check
var _ MessageRepository = (*SQLiteMessageRepo)(nil)
