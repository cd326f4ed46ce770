package whatsapp

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestTimeout marks an outbound Graph API call that exceeded the
	// fixed request timeout. Maps to 408 at the HTTP boundary.
	ErrRequestTimeout = errors.New("whatsapp api request timed out")

	// ErrRequestFailed marks any other transport or status failure of an
	// outbound Graph API call. Maps to 500 at the HTTP boundary.
	ErrRequestFailed = errors.New("whatsapp api request failed")

	// ErrMultipleRecipients marks a send response carrying more than one
	// contact or message. The API is expected to echo exactly one of each
	// for a single-recipient send.
	ErrMultipleRecipients = errors.New("expected a single contact and message in the send response")

	// ErrMediaFetch marks a failure on either leg of the two-step media
	// download.
	ErrMediaFetch = errors.New("media fetch failed")

	// ErrNoMessage marks a webhook payload that carries no message event.
	ErrNoMessage = errors.New("payload carries no message")
)

// UnsupportedTypeError is returned when a webhook message has a type outside
// text, audio, document and image.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported message type: %q", e.Type)
}
