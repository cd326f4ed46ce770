package whatsapp

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"
)

// newTestService builds a Service pointed at a test server, with a short
// client timeout so timeout paths are quick to exercise.
func newTestService(baseURL string) *Service {
	return &Service{
		token:         "test-token",
		phoneNumberID: "196914110180497",
		apiVersion:    "v21.0",
		apiBase:       baseURL,
		client:        &http.Client{Timeout: 500 * time.Millisecond},
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func mustPayload(t *testing.T, raw string) *WebhookPayload {
	t.Helper()
	var payload WebhookPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return &payload
}

const textMessageFixture = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "206144975918077",
    "changes": [{
      "value": {
        "messaging_product": "whatsapp",
        "metadata": {"display_phone_number": "15551291301", "phone_number_id": "196914110180497"},
        "contacts": [{"profile": {"name": "Dominique Paul"}, "wa_id": "4915159922222"}],
        "messages": [{
          "from": "4915159922222",
          "id": "wamid.HBgNNDkxNTE1OTkyNjE2MhUCABIYFDNBMDIwQjk1NzQ1ODgxRUI1Njk1AA==",
          "timestamp": "1706312529",
          "text": {"body": "Hello, this is the message"},
          "type": "text"
        }]
      },
      "field": "messages"
    }]
  }]
}`

const textReplyFixture = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "206144975918077",
    "changes": [{
      "value": {
        "messaging_product": "whatsapp",
        "metadata": {"display_phone_number": "15551291301", "phone_number_id": "196914110180497"},
        "contacts": [{"profile": {"name": "Dominique Paul"}, "wa_id": "4915159922222"}],
        "messages": [{
          "context": {"from": "15551291301", "id": "wamid.HBgNNDkxNTE1OTkyNjE2MhUCABIYFDNBMDIwQjk1NzQ1ODgxRUI1Njk1AA=="},
          "from": "4915159922222",
          "id": "wamid.HBgNNDkxNTE1OTkyNjE2MhUCABIYFDNBMjVBMTJGQjcwRjM1NkZCNzQ4AA==",
          "timestamp": "1706567189",
          "text": {"body": "Hi, my message references the one above"},
          "type": "text"
        }]
      },
      "field": "messages"
    }]
  }]
}`

const voiceMessageFixture = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "206144975918077",
    "changes": [{
      "value": {
        "messaging_product": "whatsapp",
        "metadata": {"display_phone_number": "15551291301", "phone_number_id": "196914110180497"},
        "contacts": [{"profile": {"name": "Dominique Paul"}, "wa_id": "4915159922222"}],
        "messages": [{
          "from": "4915159922222",
          "id": "wamid.HBgNNDkxNTE1OTkyNjE2MhUCABIYFDNBM0M2MDQ3OEI4RDcxMDMwODE0AA==",
          "timestamp": "1706312711",
          "type": "audio",
          "audio": {"mime_type": "audio/ogg; codecs=opus", "sha256": "G1Hj0bsE1u0jOrAronuRexvsU5k+gcGncZCKgbHfcr8=", "id": "1048715742889904", "voice": true}
        }]
      },
      "field": "messages"
    }]
  }]
}`

const stickerMessageFixture = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "206144975918077",
    "changes": [{
      "value": {
        "metadata": {"phone_number_id": "196914110180497"},
        "contacts": [{"profile": {"name": "Dominique Paul"}, "wa_id": "4915159922222"}],
        "messages": [{
          "from": "4915159922222",
          "id": "wamid.test",
          "timestamp": "1706312900",
          "type": "sticker",
          "sticker": {"mime_type": "image/webp", "id": "11223344"}
        }]
      },
      "field": "messages"
    }]
  }]
}`

const statusUpdateFixture = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "206144975918077",
    "changes": [{
      "value": {
        "messaging_product": "whatsapp",
        "metadata": {"display_phone_number": "15551291301", "phone_number_id": "196914110180497"},
        "statuses": [{"id": "wamid.test", "status": "delivered", "timestamp": "1706312600", "recipient_id": "4915159922222"}]
      },
      "field": "messages"
    }]
  }]
}`
