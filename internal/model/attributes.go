package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Attributes は呼び出し側から受け取ったキーを生JSONのまま保持する。
// エコーバック時は受信した値をそのまま書き戻す。
type Attributes map[string]json.RawMessage

// Has はキーが含まれているか返す。値がnullでも含まれていればtrueとなる。
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// decodeObject はJSONオブジェクトをキーごとの生JSONに分解する。
// オブジェクト以外（配列、null、スカラー）は入力形式エラーとする。
func decodeObject(data []byte) (Attributes, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, NewInvalidInputError("invalid input shape", FieldError{
			Field:   "body",
			Message: "expected a JSON object",
			Code:    "type_object",
		})
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// 以下のview系関数は値を解釈できたときだけ結果を返す。
// 解釈できない値はエラーにせず、生JSONとしてエコーバックされる。

func stringView(raw json.RawMessage) *string {
	if raw == nil || isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func numberView(raw json.RawMessage) *float64 {
	if raw == nil || isNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}

func timeView(raw json.RawMessage) *time.Time {
	if raw == nil || isNull(raw) {
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil
	}
	return &t
}

// flatten は受信した属性とサーバー側の項目を1つのJSONオブジェクトにまとめる。
// serverに含まれるキーはattrsの同名キーより優先する。
func flatten(attrs Attributes, server map[string]any) ([]byte, error) {
	out := make(map[string]any, len(attrs)+len(server))
	for k, v := range attrs {
		out[k] = v
	}
	for k, v := range server {
		out[k] = v
	}
	return json.Marshal(out)
}
