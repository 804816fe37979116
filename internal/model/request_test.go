package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestServiceRequest_UnmarshalJSON_KeepsAllFieldsAndViews(t *testing.T) {
	var req ServiceRequest
	body := `{"category":"waterproofing","description":"Basement leak","preferred_date":"2025-12-01","photos":["a.jpg"]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Category == nil || *req.Category != CategoryWaterproofing {
		t.Errorf("Category = %v, want %q", req.Category, CategoryWaterproofing)
	}
	if req.Description == nil || *req.Description != "Basement leak" {
		t.Errorf("Description = %v, want %q", req.Description, "Basement leak")
	}
	if len(req.Fields) != 4 {
		t.Fatalf("len(Fields) = %d, want 4", len(req.Fields))
	}
	if string(req.Fields["preferred_date"]) != `"2025-12-01"` {
		t.Errorf("Fields[preferred_date] = %s", req.Fields["preferred_date"])
	}
}

func TestServiceRequest_UnmarshalJSON_IgnoresServerOwnedFields(t *testing.T) {
	var req ServiceRequest
	body := `{"id":5,"submitted_at":"1999-01-01T00:00:00Z","status":"urgent"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.ID != 0 {
		t.Errorf("ID = %d, want 0 (server-issued)", req.ID)
	}
	if !req.SubmittedAt.IsZero() {
		t.Errorf("SubmittedAt = %v, want zero", req.SubmittedAt)
	}
	if req.Status != "urgent" {
		t.Errorf("Status = %q, want %q", req.Status, "urgent")
	}
	if req.Fields.Has("id") || req.Fields.Has("submitted_at") {
		t.Error("server-owned keys should not be kept in Fields")
	}
}

func TestServiceRequest_UnmarshalJSON_NonObject_ReturnsInvalidInput(t *testing.T) {
	for _, body := range []string{`[]`, `null`, `"text"`, `42`} {
		var req ServiceRequest
		err := json.Unmarshal([]byte(body), &req)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("body %s: error = %v, want *APIError", body, err)
		}
		if apiErr.Code != ErrCodeInvalidInput {
			t.Errorf("body %s: Code = %q, want %q", body, apiErr.Code, ErrCodeInvalidInput)
		}
	}
}

func TestServiceRequest_MistypedAndNullFields_EchoVerbatim(t *testing.T) {
	var req ServiceRequest
	body := `{"status":1,"category":null,"description":["a"]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Category != nil || req.Description != nil || req.Status != "" {
		t.Errorf("views should stay unset, got %+v", req)
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["status"] != float64(1) {
		t.Errorf("status = %v, want 1", got["status"])
	}
	if v, ok := got["category"]; !ok || v != nil {
		t.Errorf("category = %v (present=%v), want null", v, ok)
	}
	if desc, ok := got["description"].([]any); !ok || len(desc) != 1 || desc[0] != "a" {
		t.Errorf("description = %v, want [a]", got["description"])
	}
}

func TestServiceRequest_MarshalJSON_IsFlat(t *testing.T) {
	category := CategoryMoldRemediation
	req := ServiceRequest{
		ID:          1001,
		Status:      RequestStatusSubmitted,
		SubmittedAt: time.Date(2025, 11, 1, 12, 30, 0, 0, time.UTC),
		Category:    &category,
		Fields: Attributes{
			"category": json.RawMessage(`"mold_remediation"`),
			"urgency":  json.RawMessage(`"high"`),
			"id":       json.RawMessage(`7`),
		},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["id"] != float64(1001) {
		t.Errorf("id = %v, server id should win", got["id"])
	}
	if got["status"] != RequestStatusSubmitted {
		t.Errorf("status = %v, want %q", got["status"], RequestStatusSubmitted)
	}
	if got["submitted_at"] != "2025-11-01T12:30:00Z" {
		t.Errorf("submitted_at = %v", got["submitted_at"])
	}
	if got["category"] != CategoryMoldRemediation {
		t.Errorf("category = %v", got["category"])
	}
	if got["urgency"] != "high" {
		t.Errorf("urgency = %v, want high", got["urgency"])
	}
	if _, ok := got["description"]; ok {
		t.Error("description should be omitted when not sent")
	}
}

func TestIsKnownCategory(t *testing.T) {
	if !IsKnownCategory(CategoryAtticSolutions) {
		t.Error("attic_solutions should be known")
	}
	for _, c := range []string{"", "Attic_Solutions", "roofing"} {
		if IsKnownCategory(c) {
			t.Errorf("IsKnownCategory(%q) = true, want false", c)
		}
	}
}

func TestSensorReading_EchoKeepsRawValues(t *testing.T) {
	var reading SensorReading
	body := `{"temperature":18.50,"battery":"low","recorded_at":"2025-11-02T08:00:00.000+00:00"}`
	if err := json.Unmarshal([]byte(body), &reading); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.Temperature == nil || *reading.Temperature != 18.5 {
		t.Errorf("Temperature = %v, want 18.5", reading.Temperature)
	}
	if reading.RecordedAt == nil {
		t.Error("RecordedAt should be parsed")
	}
	reading.SensorID = 7

	data, err := json.Marshal(reading)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if string(got["sensor_id"]) != "7" {
		t.Errorf("sensor_id = %s, want 7", got["sensor_id"])
	}
	if string(got["temperature"]) != "18.50" {
		t.Errorf("temperature = %s, want 18.50 as sent", got["temperature"])
	}
	if string(got["recorded_at"]) != `"2025-11-02T08:00:00.000+00:00"` {
		t.Errorf("recorded_at = %s, want value as sent", got["recorded_at"])
	}
	if string(got["battery"]) != `"low"` {
		t.Errorf("battery = %s, want \"low\"", got["battery"])
	}
}

func TestSensorReading_UnparsableValues_AreEchoedNotRejected(t *testing.T) {
	var reading SensorReading
	body := `{"temperature":"hot","humidity":"wet","recorded_at":"2025-11-02 08:00"}`
	if err := json.Unmarshal([]byte(body), &reading); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.Temperature != nil || reading.Humidity != nil || reading.RecordedAt != nil {
		t.Errorf("views should stay unset, got %+v", reading)
	}

	data, err := json.Marshal(reading)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["temperature"] != "hot" || got["humidity"] != "wet" || got["recorded_at"] != "2025-11-02 08:00" {
		t.Errorf("unparsable values should echo unchanged, got %v", got)
	}
}

func TestSensorReading_BodySensorIDWins(t *testing.T) {
	var reading SensorReading
	if err := json.Unmarshal([]byte(`{"sensor_id":99,"v":1}`), &reading); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reading.SensorID = 7

	data, err := json.Marshal(reading)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["sensor_id"] != float64(99) {
		t.Errorf("sensor_id = %v, want 99 from body", got["sensor_id"])
	}
	if got["v"] != float64(1) {
		t.Errorf("v = %v, want 1", got["v"])
	}
}

func TestSensorReading_NonObject_ReturnsInvalidInput(t *testing.T) {
	var reading SensorReading
	err := json.Unmarshal([]byte(`[1,2]`), &reading)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Fields[0].Code != "type_object" {
		t.Errorf("Code = %q, want type_object", apiErr.Fields[0].Code)
	}
}
