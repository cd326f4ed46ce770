package send

import (
	"warelay/entity"
)

// Core issues outbound WhatsApp sends.
type Core interface {
	SendText(recipientID, body string) (*entity.SendConfirmation, error)
	SendQuickReply(recipientID, body string, buttons []string) (*entity.SendConfirmation, error)
	SendDocument(recipientID string, data []byte, filename, mimeType string) (*entity.SendConfirmation, error)
}
