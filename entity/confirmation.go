package entity

// SendConfirmation is the shaped result of a successful message send.
// The Graph API echoes the contact we addressed and assigns the outbound
// message its wamid.
type SendConfirmation struct {
	MessagingProduct string `json:"messaging_product"`
	ContactInput     string `json:"contact_input"`
	ContactWaID      string `json:"contact_wa_id"`
	MessageID        string `json:"message_id"`
}
