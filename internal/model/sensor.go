package model

import "time"

// SensorReading は床下センサー等から送信された計測値を表す。
//
// 受け取ったキーはFieldsに生JSONのまま保持し、検証せずにそのまま返す。
// Temperature、Humidity、RecordedAtは解釈できた場合だけ設定されるビュー。
type SensorReading struct {
	SensorID    int64
	Temperature *float64
	Humidity    *float64
	RecordedAt  *time.Time
	Fields      Attributes
}

// MarshalJSON はsensor_idとFieldsを1つのオブジェクトにまとめて出力する。
// ボディにsensor_idが含まれていればその値をそのまま返す。
func (s SensorReading) MarshalJSON() ([]byte, error) {
	server := map[string]any{}
	if !s.Fields.Has("sensor_id") {
		server["sensor_id"] = s.SensorID
	}
	return flatten(s.Fields, server)
}

// UnmarshalJSON は任意のJSONオブジェクトからSensorReadingを組み立てる。
// オブジェクト以外の場合だけ *APIError を返す。
func (s *SensorReading) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*s = SensorReading{
		Temperature: numberView(fields["temperature"]),
		Humidity:    numberView(fields["humidity"]),
		RecordedAt:  timeView(fields["recorded_at"]),
		Fields:      fields,
	}
	return nil
}
