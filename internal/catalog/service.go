// Package catalog は顧客ポータルの参照系データを提供する。
//
// ジョブ、請求書、プロモーション等はCRM連携が実装されるまで固定のサンプルデータを返す。
// 呼び出しごとに新しい値を組み立てるため、呼び出し側が結果を変更しても次回の結果には影響しない。
package catalog

import (
	"context"
	"time"

	"github.com/hitoshi/portal/internal/model"
)

// Service は参照系データのサービス層。
type Service struct{}

// NewService はServiceの新しいインスタンスを生成する。
func NewService() *Service {
	return &Service{}
}

// CurrentUser は認証済みユーザーのプロフィールを返す。
// 認証は未実装のため、常に同じ顧客を返す。
func (s *Service) CurrentUser(ctx context.Context) *model.User {
	return &model.User{
		ID:      1,
		AuthUID: "firebase:abc123",
		Name:    "Jane Customer",
		Email:   "jane.customer@example.com",
		Phone:   ptr("555-0100"),
	}
}

// ListJobs はジョブ一覧を返す。
// statusが空でなければステータスが完全一致するジョブのみを返す。
func (s *Service) ListJobs(ctx context.Context, status string) []model.Job {
	jobs := sampleJobs()
	if status == "" {
		return jobs
	}
	return filterByStatus(jobs, status, func(j model.Job) string { return j.Status })
}

// GetJob は指定IDのジョブを返す。
// 見つからない場合は model.ErrCodeJobNotFound のAPIErrorを返す。
func (s *Service) GetJob(ctx context.Context, id int64) (*model.Job, error) {
	for _, job := range sampleJobs() {
		if job.ID == id {
			return &job, nil
		}
	}
	return nil, model.NewJobNotFoundError()
}

// ListInvoices は請求書一覧を返す。
// statusが空でなければステータスが完全一致する請求書のみを返す。
func (s *Service) ListInvoices(ctx context.Context, status string) []model.Invoice {
	invoices := []model.Invoice{
		{ID: 201, JobID: 101, CRMRef: "INV-001", AmountDue: 500.0, Status: "open"},
		{ID: 202, JobID: 102, CRMRef: "INV-002", AmountDue: 0.0, Status: "paid"},
	}
	if status == "" {
		return invoices
	}
	return filterByStatus(invoices, status, func(inv model.Invoice) string { return inv.Status })
}

// ListPromos は顧客向けのプロモーション一覧を返す。
func (s *Service) ListPromos(ctx context.Context) []model.Promo {
	return []model.Promo{
		{
			ID:            301,
			Title:         "Winter Crawlspace Checkup",
			Body:          "Get 15% off your next crawlspace inspection when scheduled before Dec 31.",
			TargetSegment: "all",
		},
		{
			ID:            302,
			Title:         "Member Appreciation",
			Body:          "Members receive a free dehumidifier check with any service call this month.",
			TargetSegment: "members",
		},
	}
}

// ListFAQs はよくある質問の一覧を返す。
func (s *Service) ListFAQs(ctx context.Context) []model.FAQ {
	return []model.FAQ{
		{
			ID:       1,
			Question: "Why is my crawlspace damp?",
			Answer:   "High humidity and poor ventilation can cause dampness and mold growth in crawlspaces.",
		},
		{
			ID:       2,
			Question: "Do you offer financing?",
			Answer:   "Yes, financing is available through Wisetack with terms up to 5 years.",
		},
	}
}

// Membership は顧客の会員プランを返す。
func (s *Service) Membership(ctx context.Context) *model.Membership {
	return &model.Membership{
		ID:       401,
		Plan:     "Gold",
		Status:   "active",
		RenewsAt: ptr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func sampleJobs() []model.Job {
	return []model.Job{
		{
			ID:          101,
			UserID:      1,
			PropertyID:  1,
			CRMRef:      "JB-0001",
			Status:      model.JobStatusOpen,
			ScheduledAt: ptr(time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)),
		},
		{
			ID:          102,
			UserID:      1,
			PropertyID:  1,
			CRMRef:      "JB-0002",
			Status:      model.JobStatusPast,
			ScheduledAt: ptr(time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)),
		},
	}
}

// filterByStatus はステータスが完全一致する要素のみを残す。
// 一致するものがなければ空スライス（nilではない）を返す。
func filterByStatus[T any](items []T, status string, statusOf func(T) string) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if statusOf(item) == status {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func ptr[T any](v T) *T {
	return &v
}
