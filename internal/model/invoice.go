package model

// Invoice はジョブに対する請求書を表す。
type Invoice struct {
	ID        int64   `json:"id"`
	JobID     int64   `json:"job_id"`
	CRMRef    string  `json:"crm_ref"`
	AmountDue float64 `json:"amount_due"`
	Status    string  `json:"status"`
	StripePI  *string `json:"stripe_pi"` // 決済代行側のPaymentIntent ID
}

// PaymentIntent は請求書支払いのためにクライアントへ渡す決済情報。
type PaymentIntent struct {
	ClientSecret string `json:"client_secret"`
}
