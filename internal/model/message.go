package model

// Message はジョブごとのチャットスレッドに投稿されたメッセージを表す。
// IDは投稿者側が指定する。サーバー側では採番しない。
type Message struct {
	ID     int64    `json:"id"`
	JobID  int64    `json:"job_id"`
	Sender string   `json:"sender"`
	Text   string   `json:"text"`
	Media  []string `json:"media"`
}
