package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hitoshi/portal/internal/model"
)

// SQLiteRequestRepo はSQLiteを使用したサービス依頼リポジトリ。
// IDは service_requests のAUTOINCREMENTシーケンスから払い出す。
type SQLiteRequestRepo struct {
	db *sql.DB
}

// NewSQLiteRequestRepo はSQLiteRequestRepoを生成する。
func NewSQLiteRequestRepo(db *sql.DB) *SQLiteRequestRepo {
	return &SQLiteRequestRepo{db: db}
}

// Create はサービス依頼を追加し、払い出したIDをreq.IDに設定する。
func (r *SQLiteRequestRepo) Create(ctx context.Context, req *model.ServiceRequest) error {
	extra, err := json.Marshal(req.Fields)
	if err != nil {
		return fmt.Errorf("追加属性のエンコードに失敗しました: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO service_requests (status, category, description, extra, submitted_at)
		 VALUES (?, ?, ?, ?, ?)`,
		req.Status, req.Category, req.Description, string(extra),
		req.SubmittedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("サービス依頼の登録に失敗しました: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("払い出されたIDの取得に失敗しました: %w", err)
	}
	req.ID = id
	return nil
}

// List は全件をID順（登録順）に返す。
func (r *SQLiteRequestRepo) List(ctx context.Context) ([]*model.ServiceRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, status, category, description, extra, submitted_at
		 FROM service_requests ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("サービス依頼一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	requests := make([]*model.ServiceRequest, 0)
	for rows.Next() {
		var (
			req         model.ServiceRequest
			category    sql.NullString
			description sql.NullString
			extra       string
			submittedAt string
		)
		if err := rows.Scan(&req.ID, &req.Status, &category, &description, &extra, &submittedAt); err != nil {
			return nil, fmt.Errorf("サービス依頼行の読み取りに失敗しました: %w", err)
		}
		if category.Valid {
			req.Category = &category.String
		}
		if description.Valid {
			req.Description = &description.String
		}
		if err := json.Unmarshal([]byte(extra), &req.Fields); err != nil {
			return nil, fmt.Errorf("追加属性のデコードに失敗しました（id=%d）: %w", req.ID, err)
		}
		req.SubmittedAt, err = time.Parse(time.RFC3339Nano, submittedAt)
		if err != nil {
			return nil, fmt.Errorf("受付日時の解析に失敗しました（id=%d）: %w", req.ID, err)
		}
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("サービス依頼一覧の走査に失敗しました: %w", err)
	}
	return requests, nil
}

// Count は登録件数を返す。
func (r *SQLiteRequestRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM service_requests`).Scan(&count); err != nil {
		return 0, fmt.Errorf("サービス依頼件数の取得に失敗しました: %w", err)
	}
	return count, nil
}

// compile-time interface check
var _ RequestRepository = (*SQLiteRequestRepo)(nil)
