// Package message はジョブごとのチャットメッセージを扱う。
package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/portal/internal/metrics"
	"github.com/hitoshi/portal/internal/model"
	"github.com/hitoshi/portal/internal/repository"
)

// Service はチャットメッセージのサービス層。
type Service struct {
	repo    repository.MessageRepository
	metrics metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
// collectorがnilの場合はメトリクスを記録しない。
func NewService(repo repository.MessageRepository, collector metrics.MetricsCollector) *Service {
	if collector == nil {
		collector = metrics.Nop{}
	}
	return &Service{repo: repo, metrics: collector}
}

// Post はメッセージを保存し、受け取ったレコードをそのまま返す。
// IDは投稿者の指定値を使い、重複チェックは行わない。
func (s *Service) Post(ctx context.Context, msg model.Message) (*model.Message, error) {
	if err := s.repo.Create(ctx, &msg); err != nil {
		return nil, fmt.Errorf("メッセージの保存に失敗しました: %w", err)
	}

	s.metrics.RecordMessagePosted()
	slog.Debug("message posted",
		slog.Int64("message_id", msg.ID),
		slog.Int64("job_id", msg.JobID),
		slog.String("sender", msg.Sender),
	)

	return &msg, nil
}

// List はメッセージを投稿順に返す。
// jobIDがnilの場合は全件、指定された場合はそのジョブのメッセージのみを返す。
func (s *Service) List(ctx context.Context, jobID *int64) ([]*model.Message, error) {
	var (
		messages []*model.Message
		err      error
	)
	if jobID == nil {
		messages, err = s.repo.List(ctx)
	} else {
		messages, err = s.repo.ListByJobID(ctx, *jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("メッセージ一覧の取得に失敗しました: %w", err)
	}
	return messages, nil
}
