// Package request はサービス依頼の受付処理を提供する。
package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hitoshi/portal/internal/metrics"
	"github.com/hitoshi/portal/internal/model"
	"github.com/hitoshi/portal/internal/repository"
)

const (
	categoryUnspecified = "unspecified"
	categoryOther       = "other"
)

// Service はサービス依頼のサービス層。
type Service struct {
	repo    repository.RequestRepository
	metrics metrics.MetricsCollector
	now     func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
// collectorがnilの場合はメトリクスを記録しない。
func NewService(repo repository.RequestRepository, collector metrics.MetricsCollector) *Service {
	if collector == nil {
		collector = metrics.Nop{}
	}
	return &Service{
		repo:    repo,
		metrics: collector,
		now:     time.Now,
	}
}

// Create はサービス依頼を受け付けて保存し、保存したレコードを返す。
//
// 受付日時はUTCで付与する。ステータスは呼び出し側がstatusキーを送らなければ
// "submitted" とする。IDはリポジトリが払い出す。
func (s *Service) Create(ctx context.Context, in model.ServiceRequest) (*model.ServiceRequest, error) {
	req := in
	req.SubmittedAt = s.now().UTC()
	if req.Status == "" && !req.Fields.Has("status") {
		req.Status = model.RequestStatusSubmitted
	}

	if err := s.repo.Create(ctx, &req); err != nil {
		return nil, fmt.Errorf("サービス依頼の保存に失敗しました: %w", err)
	}

	category := categoryLabel(req.Category)
	s.metrics.RecordRequestSubmitted(category)

	slog.Info("service request submitted",
		slog.Int64("request_id", req.ID),
		slog.String("category", category),
		slog.String("status", req.Status),
	)

	return &req, nil
}

// categoryLabel はカテゴリをメトリクスのラベル値に変換する。
// 自由入力の値でラベルが増え続けないよう、フォームのカテゴリ以外は "other" にまとめる。
func categoryLabel(category *string) string {
	switch {
	case category == nil || *category == "":
		return categoryUnspecified
	case model.IsKnownCategory(*category):
		return *category
	default:
		return categoryOther
	}
}

// List は受け付けたサービス依頼を登録順に返す。
func (s *Service) List(ctx context.Context) ([]*model.ServiceRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("サービス依頼一覧の取得に失敗しました: %w", err)
	}
	return requests, nil
}
