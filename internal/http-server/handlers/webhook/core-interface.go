package webhook

import (
	"warelay/entity"
	"warelay/internal/service/whatsapp"
)

// Core normalizes webhook payloads and sends replies.
type Core interface {
	ParseMessage(payload *whatsapp.WebhookPayload) (*entity.InboundMessage, error)
	SendText(recipientID, body string) (*entity.SendConfirmation, error)
}

// Feed receives normalized inbound messages for live broadcast.
type Feed interface {
	BroadcastMessage(msg *entity.InboundMessage)
}
