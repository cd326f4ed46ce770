package whatsapp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"warelay/entity"
	"warelay/internal/config"
	"warelay/internal/lib/sl"
)

// requestTimeout bounds every Graph API call, inbound media fetches included.
const requestTimeout = 10 * time.Second

// Service talks to the WhatsApp Business Cloud API: it normalizes inbound
// webhook payloads, downloads referenced media and issues outbound sends.
// Safe for concurrent use; the embedded http.Client is the only shared state.
type Service struct {
	token         string
	phoneNumberID string
	apiVersion    string
	apiBase       string
	client        *http.Client
	log           *slog.Logger
}

func NewService(conf *config.Config, log *slog.Logger) *Service {
	return &Service{
		token:         conf.WhatsApp.Token,
		phoneNumberID: conf.WhatsApp.PhoneNumberID,
		apiVersion:    conf.WhatsApp.APIVersion,
		apiBase:       conf.WhatsApp.APIBase,
		client:        &http.Client{Timeout: requestTimeout},
		log:           log.With(sl.Module("whatsapp service")),
	}
}

func (s *Service) messagesURL() string {
	return fmt.Sprintf("%s/%s/%s/messages", s.apiBase, s.apiVersion, s.phoneNumberID)
}

func (s *Service) mediaUploadURL() string {
	return fmt.Sprintf("%s/%s/%s/media", s.apiBase, s.apiVersion, s.phoneNumberID)
}

func (s *Service) mediaLookupURL(mediaID string) string {
	return fmt.Sprintf("%s/%s/%s", s.apiBase, s.apiVersion, mediaID)
}

// classify maps a transport error to exactly one of the two outbound
// failure kinds.
func classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrRequestTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrRequestFailed, err)
}

// sendResponse is the Graph API response to a message send.
type sendResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// postJSON issues a bearer-authenticated JSON POST and shapes the response
// into a SendConfirmation. A response with more than one contact or message
// violates the single-recipient contract and fails the call.
func (s *Service) postJSON(url string, body any) (*entity.SendConfirmation, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	raw, err := s.do(req)
	if err != nil {
		return nil, err
	}

	var resp sendResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrRequestFailed, err)
	}
	if len(resp.Contacts) > 1 || len(resp.Messages) > 1 {
		return nil, ErrMultipleRecipients
	}
	if len(resp.Contacts) == 0 || len(resp.Messages) == 0 {
		return nil, fmt.Errorf("%w: response missing contact or message", ErrRequestFailed)
	}

	return &entity.SendConfirmation{
		MessagingProduct: resp.MessagingProduct,
		ContactInput:     resp.Contacts[0].Input,
		ContactWaID:      resp.Contacts[0].WaID,
		MessageID:        resp.Messages[0].ID,
	}, nil
}

// postMultipart issues a bearer-authenticated multipart POST and returns the
// raw response JSON. No content-type header is forced so the multipart
// boundary content type stands, and the response skips confirmation shaping.
func (s *Service) postMultipart(url string, form []byte, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(form))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", contentType)

	return s.do(req)
}

// do executes the request and returns the response body on a 2xx status.
func (s *Service) do(req *http.Request) ([]byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, body)
	}
	return body, nil
}
