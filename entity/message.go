package entity

// MessageType is the WhatsApp message type as delivered in the webhook.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeAudio    MessageType = "audio"
	MessageTypeDocument MessageType = "document"
	MessageTypeImage    MessageType = "image"
)

// IsMedia reports whether the type carries a downloadable media attachment.
func (t MessageType) IsMedia() bool {
	return t == MessageTypeAudio || t == MessageTypeDocument || t == MessageTypeImage
}

// TextPayload is the variant body of a text message.
type TextPayload struct {
	Body string `json:"body"`
}

// MediaPayload is the variant body of an audio, document or image message.
// Data is filled during parsing, before the message is handed to the caller.
type MediaPayload struct {
	MIMEType string `json:"mime_type"`
	MediaID  string `json:"media_id"`
	Data     []byte `json:"-"`
}

// InboundMessage is a normalized incoming WhatsApp message.
// Exactly one of Text or Media is set, chosen by Type.
// ReplyToMessageID and ReplyToSenderPhone are set together when the
// message is a reply, and empty otherwise.
type InboundMessage struct {
	WebhookID     string      `json:"webhook_id"`
	MessageID     string      `json:"message_id"`
	PhoneNumberID string      `json:"phone_number_id"`
	SenderID      string      `json:"sender_id"`
	SenderName    string      `json:"sender_name"`
	Type          MessageType `json:"type"`
	// Timestamp is the platform's string-encoded unix seconds, kept verbatim.
	Timestamp          string `json:"timestamp"`
	ReplyToMessageID   string `json:"reply_to_message_id,omitempty"`
	ReplyToSenderPhone string `json:"reply_to_sender_phone,omitempty"`

	Text  *TextPayload  `json:"text,omitempty"`
	Media *MediaPayload `json:"media,omitempty"`
}

// IsReply reports whether the message references another message.
func (m *InboundMessage) IsReply() bool {
	return m.ReplyToMessageID != ""
}

// Body returns the text body, or the empty string for media messages.
func (m *InboundMessage) Body() string {
	if m.Text == nil {
		return ""
	}
	return m.Text.Body
}
