package ws

import (
	"strings"
	"testing"

	"warelay/entity"
)

func TestNewFeedMessage(t *testing.T) {
	msg := &entity.InboundMessage{
		MessageID:  "wamid.test",
		SenderID:   "4915159922222",
		SenderName: "Dominique Paul",
		Type:       entity.MessageTypeText,
		Timestamp:  "1706312529",
		Text:       &entity.TextPayload{Body: "hello"},
	}

	feed := NewFeedMessage(msg)
	if feed.EventID == "" {
		t.Fatal("expected a generated event id")
	}
	if feed.Preview != "hello" {
		t.Fatalf("preview = %q, want %q", feed.Preview, "hello")
	}
	if feed.MIMEType != "" {
		t.Fatalf("mime type = %q, want empty for text", feed.MIMEType)
	}

	other := NewFeedMessage(msg)
	if other.EventID == feed.EventID {
		t.Fatal("event ids must be unique per broadcast")
	}
}

func TestNewFeedMessageMedia(t *testing.T) {
	msg := &entity.InboundMessage{
		MessageID: "wamid.media",
		Type:      entity.MessageTypeImage,
		Media:     &entity.MediaPayload{MIMEType: "image/jpeg", MediaID: "1", Data: []byte("bytes")},
	}

	feed := NewFeedMessage(msg)
	if feed.MIMEType != "image/jpeg" {
		t.Fatalf("mime type = %q, want image/jpeg", feed.MIMEType)
	}
	if feed.Preview != "" {
		t.Fatalf("preview = %q, want empty for media", feed.Preview)
	}
}

func TestPreviewTextBounded(t *testing.T) {
	long := strings.Repeat("a", entity.PreviewLimit+50)
	got := previewText(long)
	if len(got) != entity.PreviewLimit+3 {
		t.Fatalf("preview len = %d, want %d", len(got), entity.PreviewLimit+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("preview = %q, want ellipsis suffix", got)
	}
}
