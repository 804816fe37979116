package model

import "time"

// Job は施工案件を表す。
// CRMRefは外部CRM上のレコードとの対応付けに使うが、このサービスでは解決しない。
type Job struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	PropertyID  int64      `json:"property_id"`
	CRMRef      string     `json:"crm_ref"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// 既知のジョブステータス。ステータスは自由文字列であり遷移規則は持たない。
const (
	JobStatusOpen = "open"
	JobStatusPast = "past"
)

// Estimate はジョブに対する見積を表す。
type Estimate struct {
	ID     int64   `json:"id"`
	JobID  int64   `json:"job_id"`
	CRMRef string  `json:"crm_ref"`
	Total  float64 `json:"total"`
	PDFURL string  `json:"pdf_url"`
	Status string  `json:"status"`
}
