package whatsapp

// WebhookPayload represents the incoming webhook notification from the
// WhatsApp Business Cloud API. Only the consumed fields are modeled.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry is one business account entry of a notification batch.
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change wraps a single change notification.
type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue holds the message or status data of a change.
type ChangeValue struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Contacts         []Contact `json:"contacts,omitempty"`
	Messages         []Message `json:"messages,omitempty"`
	Statuses         []Status  `json:"statuses,omitempty"`
}

// Metadata describes the receiving business phone number.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// Contact is the sending WhatsApp user.
type Contact struct {
	Profile ContactProfile `json:"profile"`
	WaID    string         `json:"wa_id"`
}

// ContactProfile carries the sender's display name.
type ContactProfile struct {
	Name string `json:"name"`
}

// Message is one incoming message event.
type Message struct {
	From      string          `json:"from"`
	ID        string          `json:"id"`
	Timestamp string          `json:"timestamp"`
	Type      string          `json:"type"`
	Context   *MessageContext `json:"context,omitempty"`
	Text      *TextContent    `json:"text,omitempty"`
	Audio     *MediaContent   `json:"audio,omitempty"`
	Document  *MediaContent   `json:"document,omitempty"`
	Image     *MediaContent   `json:"image,omitempty"`
}

// MessageContext is present when the message replies to another message.
type MessageContext struct {
	ID   string `json:"id"`
	From string `json:"from"`
}

// TextContent holds a text message body.
type TextContent struct {
	Body string `json:"body"`
}

// MediaContent references an uploaded media asset.
type MediaContent struct {
	MIMEType string `json:"mime_type"`
	ID       string `json:"id"`
	SHA256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Status is a delivery or read receipt event.
type Status struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// firstValue returns the value of the first change of the first entry,
// or nil when any level is absent.
func (p *WebhookPayload) firstValue() *ChangeValue {
	if p == nil || len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return nil
	}
	return &p.Entry[0].Changes[0].Value
}

// IsValidMessage reports whether the payload carries at least one message
// at entry[0].changes[0].value.messages[0]. It never panics on missing
// levels.
func (p *WebhookPayload) IsValidMessage() bool {
	value := p.firstValue()
	return value != nil && len(value.Messages) > 0
}

// HasStatuses reports whether the payload is a delivery-status callback.
// Status callbacks carry no message and need no processing; callers check
// this before validity and short-circuit.
func (p *WebhookPayload) HasStatuses() bool {
	value := p.firstValue()
	return value != nil && len(value.Statuses) > 0
}

// media returns the media content matching the message type, or nil for
// text and unknown types.
func (m *Message) media() *MediaContent {
	switch m.Type {
	case "audio":
		return m.Audio
	case "document":
		return m.Document
	case "image":
		return m.Image
	default:
		return nil
	}
}
