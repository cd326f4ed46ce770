package whatsapp

import (
	"testing"
)

func TestIsValidMessage(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"text message", textMessageFixture, true},
		{"voice message", voiceMessageFixture, true},
		{"empty payload", `{}`, false},
		{"empty entry", `{"entry": []}`, false},
		{"entry without changes", `{"entry": [{"id": "1"}]}`, false},
		{"change without value", `{"entry": [{"id": "1", "changes": [{}]}]}`, false},
		{"value without messages", `{"entry": [{"id": "1", "changes": [{"value": {"metadata": {}}}]}]}`, false},
		{"empty messages", `{"entry": [{"id": "1", "changes": [{"value": {"messages": []}}]}]}`, false},
		{"status update", statusUpdateFixture, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := mustPayload(t, tc.raw)
			if got := payload.IsValidMessage(); got != tc.want {
				t.Fatalf("IsValidMessage() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValidMessageNilPayload(t *testing.T) {
	var payload *WebhookPayload
	if payload.IsValidMessage() {
		t.Fatal("nil payload must not be valid")
	}
	if payload.HasStatuses() {
		t.Fatal("nil payload must not carry statuses")
	}
}

func TestHasStatuses(t *testing.T) {
	if !mustPayload(t, statusUpdateFixture).HasStatuses() {
		t.Fatal("status fixture must report statuses")
	}
	if mustPayload(t, textMessageFixture).HasStatuses() {
		t.Fatal("text fixture must not report statuses")
	}
}
