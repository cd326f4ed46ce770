package whatsapp

import (
	"log/slog"

	"warelay/entity"
)

// ParseMessage normalizes a webhook payload into an InboundMessage. The
// variant is chosen solely by the message type; for media types the content
// is downloaded before the message is returned, so a returned media message
// always carries its bytes. Unknown types fail with UnsupportedTypeError.
func (s *Service) ParseMessage(payload *WebhookPayload) (*entity.InboundMessage, error) {
	if !payload.IsValidMessage() {
		return nil, ErrNoMessage
	}

	value := payload.firstValue()
	message := value.Messages[0]

	wam := &entity.InboundMessage{
		WebhookID:     payload.Entry[0].ID,
		MessageID:     message.ID,
		PhoneNumberID: value.Metadata.PhoneNumberID,
		Type:          entity.MessageType(message.Type),
		Timestamp:     message.Timestamp,
	}
	if len(value.Contacts) > 0 {
		wam.SenderID = value.Contacts[0].WaID
		wam.SenderName = value.Contacts[0].Profile.Name
	}
	if message.Context != nil {
		wam.ReplyToMessageID = message.Context.ID
		wam.ReplyToSenderPhone = message.Context.From
	}

	switch {
	case wam.Type == entity.MessageTypeText:
		wam.Text = &entity.TextPayload{}
		if message.Text != nil {
			wam.Text.Body = message.Text.Body
		}

	case wam.Type.IsMedia():
		media := message.media()
		if media == nil {
			return nil, ErrNoMessage
		}
		data, err := s.DownloadMedia(media.ID)
		if err != nil {
			return nil, err
		}
		wam.Media = &entity.MediaPayload{
			MIMEType: media.MIMEType,
			MediaID:  media.ID,
			Data:     data,
		}

	default:
		return nil, &UnsupportedTypeError{Type: message.Type}
	}

	s.log.With(
		slog.String("message_id", wam.MessageID),
		slog.String("sender_id", wam.SenderID),
		slog.String("type", string(wam.Type)),
	).Debug("message parsed")

	return wam, nil
}
