package whatsapp

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// mediaURLResponse is the Graph API media lookup response; the url it
// carries is short-lived.
type mediaURLResponse struct {
	URL string `json:"url"`
}

// DownloadMedia resolves a media id to its short-lived download URL and
// fetches the binary content. Both legs are bearer-authenticated and bounded
// by the shared request timeout; a failure on either leg aborts the whole
// fetch with no partial result and no retry.
func (s *Service) DownloadMedia(mediaID string) ([]byte, error) {
	raw, err := s.get(s.mediaLookupURL(mediaID))
	if err != nil {
		return nil, fmt.Errorf("%w: resolve download url: %w", ErrMediaFetch, err)
	}

	var lookup mediaURLResponse
	if err := json.Unmarshal(raw, &lookup); err != nil {
		return nil, fmt.Errorf("%w: parse lookup response: %v", ErrMediaFetch, err)
	}
	if lookup.URL == "" {
		return nil, fmt.Errorf("%w: lookup response missing url", ErrMediaFetch)
	}

	data, err := s.get(lookup.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: download content: %w", ErrMediaFetch, err)
	}

	s.log.With(
		slog.String("media_id", mediaID),
		slog.Int("size", len(data)),
	).Debug("media downloaded")

	return data, nil
}

// get issues a bearer-authenticated GET and returns the body on a 2xx status.
func (s *Service) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

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
