package repository

import (
	"context"
	"database/sql"
)

// Store はリポジトリ一式とそのライフサイクルをまとめる。
// アプリケーション起動時に生成し、シャットダウン時にCloseする。
type Store struct {
	Requests RequestRepository
	Messages MessageRepository

	db *sql.DB
}

// NewMemoryStore はメモリ上のスライスを使うStoreを生成する。
func NewMemoryStore() *Store {
	return &Store{
		Requests: NewMemoryRequestRepo(),
		Messages: NewMemoryMessageRepo(),
	}
}

// NewSQLStore はSQLiteデータベースを使うStoreを生成する。
// スキーマは適用済みであること。
func NewSQLStore(db *sql.DB) *Store {
	return &Store{
		Requests: NewSQLiteRequestRepo(db),
		Messages: NewSQLiteMessageRepo(db),
		db:       db,
	}
}

// PingContext はストアが応答するか確認する。
// メモリストアは常に成功する。
func (s *Store) PingContext(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close はストアが保持するリソースを解放する。
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
