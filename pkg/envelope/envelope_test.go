package envelope_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cortexa-campus/campus-go/pkg/envelope"
)

func TestSuccess_shape(t *testing.T) {
	before := time.Now().UTC()
	resp := envelope.Success(map[string]int{"credentialId": 42}, "Credential issued")
	after := time.Now().UTC()

	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Message != "Credential issued" {
		t.Errorf("unexpected message: %s", resp.Message)
	}
	if resp.Error != "" || resp.Code != 0 {
		t.Errorf("success envelope must not carry error fields: %+v", resp)
	}
	if resp.Timestamp.Before(before) || resp.Timestamp.After(after) {
		t.Errorf("timestamp %v outside [%v, %v]", resp.Timestamp, before, after)
	}
}

func TestSuccess_defaultMessage(t *testing.T) {
	resp := envelope.Success(nil, "")
	if resp.Message != "Success" {
		t.Errorf("empty message must default to Success, got %q", resp.Message)
	}
}

func TestFailure_shape(t *testing.T) {
	resp := envelope.Failure("credential not found", 404)
	if resp.Success {
		t.Error("expected failure")
	}
	if resp.Error != "credential not found" {
		t.Errorf("unexpected error: %s", resp.Error)
	}
	if resp.Code != 404 {
		t.Errorf("unexpected code: %d", resp.Code)
	}
	if resp.Message != "" || resp.Data != nil {
		t.Errorf("failure envelope must not carry success fields: %+v", resp)
	}
}

func TestFailure_defaultCode(t *testing.T) {
	resp := envelope.Failure("bad input", 0)
	if resp.Code != 400 {
		t.Errorf("zero code must default to 400, got %d", resp.Code)
	}
}

func TestEnvelope_jsonFieldsOmitted(t *testing.T) {
	raw, err := json.Marshal(envelope.Failure("nope", 422))
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded["message"]; ok {
		t.Error("failure envelope must omit message")
	}
	if _, ok := decoded["data"]; ok {
		t.Error("failure envelope must omit data")
	}
	if decoded["error"] != "nope" || decoded["code"] != float64(422) {
		t.Errorf("unexpected wire shape: %v", decoded)
	}
}
