// Package app はアプリケーションの初期化と起動モードの切り替えを行う。
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/hitoshi/portal/internal/catalog"
	"github.com/hitoshi/portal/internal/config"
	"github.com/hitoshi/portal/internal/database"
	"github.com/hitoshi/portal/internal/handler"
	"github.com/hitoshi/portal/internal/logger"
	"github.com/hitoshi/portal/internal/message"
	"github.com/hitoshi/portal/internal/metrics"
	"github.com/hitoshi/portal/internal/middleware"
	"github.com/hitoshi/portal/internal/payment"
	"github.com/hitoshi/portal/internal/repository"
	"github.com/hitoshi/portal/internal/request"
	"github.com/hitoshi/portal/internal/sensor"
)

// Init はアプリケーションの初期化を行う。
// JSON構造化ログをセットアップしてから環境変数でConfigを読み込み、ログレベルを反映する。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8000"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
	)

	switch cmd {
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runServe(cfg)
	}
}

const storeCloseTimeout = 2 * time.Second

// components はserveモードで組み立てた依存関係とそのライフサイクルをまとめる。
type components struct {
	store       *repository.Store
	rateLimiter *middleware.RateLimiter
	handler     http.Handler
}

// Close はレートリミッターを停止し、ストアを閉じる。
// ストアの内容はプロセスとともに消えるため、破棄する件数をログに残す。
func (c *components) Close() error {
	c.rateLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
	defer cancel()
	if n, err := c.store.Requests.Count(ctx); err != nil {
		slog.Warn("failed to count service requests", slog.String("error", err.Error()))
	} else {
		slog.Info("closing store", slog.Int("service_requests", n))
	}

	return c.store.Close()
}

// openStore は設定されたバックエンドでストアを開く。
// sqliteの場合はスキーマを適用してから返す。
func openStore(cfg *config.Config) (*repository.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := database.Open(cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		version, err := database.RunMigrations(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("sqlite store ready", slog.Uint64("schema_version", uint64(version)))
		return repository.NewSQLStore(db), nil
	default:
		slog.Info("memory store ready")
		return repository.NewMemoryStore(), nil
	}
}

// buildComponents はストア、サービス、ルーターを組み立てる。
func buildComponents(cfg *config.Config) (*components, error) {
	// 1. ストア
	store, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// 2. メトリクス（プロセス独自のレジストリを使う）
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	// 3. ドメインサービス
	catalogService := catalog.NewService()
	requestService := request.NewService(store.Requests, collector)
	messageService := message.NewService(store.Messages, collector)
	gateway := payment.NewStubGateway(collector)
	sensorService := sensor.NewService(collector)

	// 4. ルーター
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfigPerMinute(cfg.RateLimitGeneral))

	router := handler.NewRouter(&handler.RouterDeps{
		Logger:            slog.Default(),
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		Metrics:           collector,
		MetricsHandler:    metrics.Handler(reg),
		Store:             store,
		CatalogService:    catalogService,
		RequestService:    requestService,
		MessageService:    messageService,
		PaymentGateway:    gateway,
		SensorService:     sensorService,
	})

	return &components{
		store:       store,
		rateLimiter: rateLimiter,
		handler:     router,
	}, nil
}

// runServe はAPIサーバーモードで起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ":"+cfg.ServerPort)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.ServerPort, err)
	}

	return serve(ctx, cfg, ln)
}

// serve はlnでHTTPサーバーを起動し、ctxがキャンセルされるまでリクエストを処理する。
// 終了時はShutdownTimeout以内に処理中のリクエストを待ってからストアを閉じる。
func serve(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	comps, err := buildComponents(cfg)
	if err != nil {
		ln.Close()
		return err
	}
	defer func() {
		if err := comps.Close(); err != nil {
			slog.Error("failed to close store", slog.String("error", err.Error()))
		}
	}()

	server := &http.Server{
		Handler:      comps.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server starting", slog.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server listen error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate は新しいインメモリSQLiteにスキーマを適用し、適用後のバージョンを報告する。
// ストアはプロセス終了とともに消えるため、起動前のスキーマ検証として使う。
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations", slog.String("dsn", database.DefaultDSN))

	db, err := database.Open(database.DefaultDSN)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer db.Close()

	version, err := database.RunMigrations(db)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully",
		slog.Uint64("version", uint64(version)),
	)
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}
