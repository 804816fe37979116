package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DefaultDSN はプロセス内メモリ上に作成するSQLiteデータベースのDSN。
const DefaultDSN = ":memory:"

// Open はSQLiteデータベース接続を開く。
//
// インメモリDBは接続ごとに別のデータベースになるため、接続数を1に固定し
// アイドル接続も破棄しないようにする。データはこの*sql.DBをCloseするまで保持される。
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	return db, nil
}
