package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/textproto"

	"warelay/entity"
)

// outboundMessage is the request body for the Graph API messages endpoint.
// Exactly one of the variant fields is set, matching Type.
type outboundMessage struct {
	MessagingProduct string           `json:"messaging_product"`
	RecipientType    string           `json:"recipient_type"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             *textBody        `json:"text,omitempty"`
	Interactive      *interactiveBody `json:"interactive,omitempty"`
	Document         *documentBody    `json:"document,omitempty"`
}

type textBody struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

type interactiveBody struct {
	Type   string            `json:"type"`
	Body   interactiveText   `json:"body"`
	Action interactiveAction `json:"action"`
}

type interactiveText struct {
	Text string `json:"text"`
}

type interactiveAction struct {
	Buttons []replyButton `json:"buttons"`
}

type replyButton struct {
	Type  string      `json:"type"`
	Reply buttonReply `json:"reply"`
}

type buttonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type documentBody struct {
	Filename string `json:"filename"`
	ID       string `json:"id"`
}

func newOutboundMessage(to, kind string) outboundMessage {
	return outboundMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             kind,
	}
}

// SendText sends a plain text message to the recipient.
func (s *Service) SendText(recipientID, body string) (*entity.SendConfirmation, error) {
	msg := newOutboundMessage(recipientID, "text")
	msg.Text = &textBody{PreviewURL: false, Body: body}

	confirmation, err := s.postJSON(s.messagesURL(), msg)
	if err != nil {
		return nil, err
	}

	s.log.With(
		slog.String("recipient_id", recipientID),
		slog.String("message_id", confirmation.MessageID),
	).Info("text message sent")

	return confirmation, nil
}

// SendQuickReply sends an interactive button message. One button is built
// per label, in input order, with generated ids choice1, choice2, ...
func (s *Service) SendQuickReply(recipientID, body string, buttons []string) (*entity.SendConfirmation, error) {
	replies := make([]replyButton, 0, len(buttons))
	for idx, title := range buttons {
		replies = append(replies, replyButton{
			Type:  "reply",
			Reply: buttonReply{ID: fmt.Sprintf("choice%d", idx+1), Title: title},
		})
	}

	msg := newOutboundMessage(recipientID, "interactive")
	msg.Interactive = &interactiveBody{
		Type:   "button",
		Body:   interactiveText{Text: body},
		Action: interactiveAction{Buttons: replies},
	}

	confirmation, err := s.postJSON(s.messagesURL(), msg)
	if err != nil {
		return nil, err
	}

	s.log.With(
		slog.String("recipient_id", recipientID),
		slog.Int("buttons", len(buttons)),
		slog.String("message_id", confirmation.MessageID),
	).Info("quick reply sent")

	return confirmation, nil
}

// uploadResponse is the Graph API media upload response.
type uploadResponse struct {
	ID string `json:"id"`
}

// UploadMedia uploads a file as multipart form data and returns the
// platform-assigned media id.
func (s *Service) UploadMedia(data []byte, filename, mimeType string) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)
	part, err := form.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("%w: build form: %v", ErrRequestFailed, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: build form: %v", ErrRequestFailed, err)
	}
	if err := form.WriteField("type", "application/json"); err != nil {
		return "", fmt.Errorf("%w: build form: %v", ErrRequestFailed, err)
	}
	if err := form.WriteField("messaging_product", "whatsapp"); err != nil {
		return "", fmt.Errorf("%w: build form: %v", ErrRequestFailed, err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("%w: build form: %v", ErrRequestFailed, err)
	}

	raw, err := s.postMultipart(s.mediaUploadURL(), buf.Bytes(), form.FormDataContentType())
	if err != nil {
		return "", err
	}

	var resp uploadResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("%w: parse upload response: %v", ErrRequestFailed, err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("%w: upload response missing media id", ErrRequestFailed)
	}

	s.log.With(
		slog.String("filename", filename),
		slog.String("media_id", resp.ID),
		slog.Int("size", len(data)),
	).Info("media uploaded")

	return resp.ID, nil
}

// SendDocument uploads the file and sends it as a document message. The two
// calls are sequential; an upload failure short-circuits the send.
func (s *Service) SendDocument(recipientID string, data []byte, filename, mimeType string) (*entity.SendConfirmation, error) {
	mediaID, err := s.UploadMedia(data, filename, mimeType)
	if err != nil {
		return nil, err
	}

	msg := newOutboundMessage(recipientID, "document")
	msg.Document = &documentBody{Filename: filename, ID: mediaID}

	confirmation, err := s.postJSON(s.messagesURL(), msg)
	if err != nil {
		return nil, err
	}

	s.log.With(
		slog.String("recipient_id", recipientID),
		slog.String("filename", filename),
		slog.String("message_id", confirmation.MessageID),
	).Info("document sent")

	return confirmation, nil
}
