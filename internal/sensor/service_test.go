package sensor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hitoshi/portal/internal/model"
)

func TestService_Record_SetsSensorID(t *testing.T) {
	svc := NewService(nil)
	temp := 21.5

	got := svc.Record(context.Background(), 42, model.SensorReading{
		SensorID:    7,
		Temperature: &temp,
		Fields:       model.Attributes{"battery": json.RawMessage(`0.8`)},
	})

	if got.SensorID != 42 {
		t.Errorf("SensorID = %d, want 42", got.SensorID)
	}
	if got.Temperature == nil || *got.Temperature != 21.5 {
		t.Errorf("Temperature = %v, want 21.5", got.Temperature)
	}
	if string(got.Fields["battery"]) != "0.8" {
		t.Errorf("Fields[battery] = %s, want 0.8", got.Fields["battery"])
	}
}
