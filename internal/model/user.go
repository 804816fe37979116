package model

import "time"

// User はポータルを利用する顧客を表す。
type User struct {
	ID      int64   `json:"id"`
	AuthUID string  `json:"auth_uid"` // 認証プロバイダ側のUID（例: "firebase:abc123"）
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
}

// Property は顧客が所有する物件を表す。
type Property struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Address     string  `json:"address"`
	AccessNotes *string `json:"access_notes"`
}

// Membership は顧客のメンテナンス会員プランを表す。
type Membership struct {
	ID       int64      `json:"id"`
	Plan     string     `json:"plan"`
	Status   string     `json:"status"`
	RenewsAt *time.Time `json:"renews_at"`
}
