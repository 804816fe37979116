package model

import "time"

// Promo は顧客向けプロモーションを表す。
type Promo struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	TargetSegment string     `json:"target_segment"` // 例: "all", "members"
	ActiveFrom    *time.Time `json:"active_from"`
	ActiveTo      *time.Time `json:"active_to"`
}

// FAQ はよくある質問を表す。
type FAQ struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
