// Package config は環境変数からアプリケーション設定を読み込む。
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ストアのバックエンド種別。
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Server
	ServerPort      string
	ShutdownTimeout time.Duration

	// CORS
	CORSAllowedOrigin string

	// Store
	StoreDriver string
	SQLiteDSN   string

	// Rate Limit（req/min/client IP）
	RateLimitGeneral int

	// Logging
	LogLevel slog.Level
}

// Load は環境変数からConfigを読み込む。
// 必須の環境変数はない。数値や期間の値が不正な場合はデフォルト値を使うが、
// STORE_DRIVER と LOG_LEVEL に未知の値が指定された場合や、SQLITE_DSN が
// インメモリDBを指していない場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnvString("SERVER_PORT", "8000"),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		StoreDriver:       strings.ToLower(getEnvString("STORE_DRIVER", StoreDriverMemory)),
		SQLiteDSN:         getEnvString("SQLITE_DSN", ":memory:"),
		RateLimitGeneral:  getEnvInt("RATE_LIMIT_GENERAL", 120),
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory, StoreDriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (want %q or %q)", cfg.StoreDriver, StoreDriverMemory, StoreDriverSQLite)
	}

	if !IsInMemoryDSN(cfg.SQLiteDSN) {
		return nil, fmt.Errorf("SQLITE_DSN %q must be an in-memory database (\":memory:\" or file:...?mode=memory)", cfg.SQLiteDSN)
	}

	level, err := ParseLogLevel(getEnvString("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// IsInMemoryDSN はSQLiteのDSNがプロセス内メモリ上のデータベースを指すか返す。
// ストアはプロセス終了とともに消える前提のため、ファイルDSNは受け付けない。
func IsInMemoryDSN(dsn string) bool {
	if dsn == ":memory:" {
		return true
	}
	rest, ok := strings.CutPrefix(dsn, "file:")
	if !ok {
		return false
	}
	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == ":memory:" {
		return true
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	return query.Get("mode") == "memory"
}

// ParseLogLevel はログレベル名をslog.Levelに変換する。
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported LOG_LEVEL %q", s)
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
