package entity

// PreviewLimit bounds the text preview carried in feed events.
const PreviewLimit = 240

// FeedMessage is the live-feed projection of an inbound message.
// Media bytes are never broadcast, only the attachment metadata.
type FeedMessage struct {
	EventID    string      `json:"event_id"`
	MessageID  string      `json:"message_id"`
	SenderID   string      `json:"sender_id"`
	SenderName string      `json:"sender_name"`
	Type       MessageType `json:"type"`
	Timestamp  string      `json:"timestamp"`
	Preview    string      `json:"preview,omitempty"`
	MIMEType   string      `json:"mime_type,omitempty"`
}
