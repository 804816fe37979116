package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/portal/internal/model"
)

// SensorServiceInterface はセンサーハンドラーが必要とするサービスインターフェース。
type SensorServiceInterface interface {
	// Record は計測値にsensor_idを付与して返す。保存はしない。
	Record(ctx context.Context, sensorID int64, reading model.SensorReading) *model.SensorReading
}

// SensorHandler はセンサー計測値のHTTPハンドラー。
type SensorHandler struct {
	service SensorServiceInterface
}

// NewSensorHandler はSensorHandlerを生成する。
func NewSensorHandler(service SensorServiceInterface) *SensorHandler {
	return &SensorHandler{service: service}
}

// PostReading はセンサー計測値を受け取り、sensor_idを付与してエコーバックする。
// POST /sensors/{sensor_id}/readings
func (h *SensorHandler) PostReading(w http.ResponseWriter, r *http.Request) {
	sensorID, apiErr := parseIntParam(r, "sensor_id")
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusUnprocessableEntity, apiErr)
		return
	}

	var reading model.SensorReading
	if apiErr := decodeJSONBody(w, r, &reading); apiErr != nil {
		writeAPIErrorResponse(w, http.StatusUnprocessableEntity, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Record(r.Context(), sensorID, reading))
}

// SetupSensorRoutes はセンサーのルーティングを設定したchi.Routerを返す。
func SetupSensorRoutes(service SensorServiceInterface) http.Handler {
	r := chi.NewRouter()
	h := NewSensorHandler(service)

	r.Post("/sensors/{sensor_id}/readings", h.PostReading)

	return r
}
