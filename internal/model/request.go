package model

import "time"

// RequestStatusSubmitted は受付直後のサービス依頼の既定ステータス。
const RequestStatusSubmitted = "submitted"

// 依頼フォームで選択できるサービスカテゴリ。検証には使用しない。
const (
	CategoryCrawlspaceRepairs = "crawlspace_repairs"
	CategoryStructuralRepairs = "structural_repairs"
	CategoryWaterproofing     = "waterproofing"
	CategoryMoldRemediation   = "mold_remediation"
	CategoryAtticSolutions    = "attic_solutions"
)

// IsKnownCategory は依頼フォームのカテゴリかどうか返す。
func IsKnownCategory(category string) bool {
	switch category {
	case CategoryCrawlspaceRepairs, CategoryStructuralRepairs, CategoryWaterproofing,
		CategoryMoldRemediation, CategoryAtticSolutions:
		return true
	}
	return false
}

// ServiceRequest は顧客から受け付けたサービス依頼を表す。
//
// JSON上はフラットなオブジェクトで、呼び出し側が送ったキーはFieldsに生JSONのまま
// 保持してエコーバックする。Status、Category、Descriptionは文字列として解釈できた
// 場合だけ設定されるビューで、型が違う値やnullもFields側でそのまま返る。
// id と submitted_at はサーバー側で払い出すため、入力に含まれていても無視する。
type ServiceRequest struct {
	ID          int64
	Status      string
	SubmittedAt time.Time
	Category    *string
	Description *string
	Fields      Attributes
}

// MarshalJSON はサーバー側の項目とFieldsを1つのオブジェクトにまとめて出力する。
// 呼び出し側がstatusを送っていればその値を優先する。
func (r ServiceRequest) MarshalJSON() ([]byte, error) {
	server := map[string]any{
		"id":           r.ID,
		"submitted_at": r.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}
	if !r.Fields.Has("status") {
		server["status"] = r.Status
	}
	return flatten(r.Fields, server)
}

// UnmarshalJSON は任意のJSONオブジェクトからServiceRequestを組み立てる。
// オブジェクト以外の場合だけ *APIError を返す。
func (r *ServiceRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	// サーバー側で払い出す項目
	delete(fields, "id")
	delete(fields, "submitted_at")

	req := ServiceRequest{
		Category:    stringView(fields["category"]),
		Description: stringView(fields["description"]),
		Fields:      fields,
	}
	if s := stringView(fields["status"]); s != nil {
		req.Status = *s
	}

	*r = req
	return nil
}
