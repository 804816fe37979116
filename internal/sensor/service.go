// Package sensor はIoTブリッジから送られるセンサー計測値を受け付ける。
// 計測値は保存せず、受け取った内容をsensor_id付きで返す。
package sensor

import (
	"context"
	"log/slog"

	"github.com/hitoshi/portal/internal/metrics"
	"github.com/hitoshi/portal/internal/model"
)

// Service はセンサー計測値のサービス層。
type Service struct {
	metrics metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(collector metrics.MetricsCollector) *Service {
	if collector == nil {
		collector = metrics.Nop{}
	}
	return &Service{metrics: collector}
}

// Record は計測値にパスパラメータのsensor_idを設定して返す。
// ボディ側にsensor_idが含まれている場合、応答ではボディの値がそのまま返る。
func (s *Service) Record(ctx context.Context, sensorID int64, reading model.SensorReading) *model.SensorReading {
	reading.SensorID = sensorID
	s.metrics.RecordSensorReading()

	slog.Debug("sensor reading received",
		slog.Int64("sensor_id", sensorID),
		slog.Int("fields", len(reading.Fields)),
	)
	return &reading
}
