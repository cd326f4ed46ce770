package webhook

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func verifyRequest(handler http.HandlerFunc, params url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/webhook?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestVerifyChallenge(t *testing.T) {
	handler := Verify(discardLogger(), "my-verify-token")

	rec := verifyRequest(handler, url.Values{
		"hub.mode":         {"subscribe"},
		"hub.verify_token": {"my-verify-token"},
		"hub.challenge":    {"challenge-1234"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "challenge-1234" {
		t.Fatalf("body = %q, want the challenge echoed", got)
	}
}

func TestVerifyTokenMismatch(t *testing.T) {
	handler := Verify(discardLogger(), "my-verify-token")

	rec := verifyRequest(handler, url.Values{
		"hub.mode":         {"subscribe"},
		"hub.verify_token": {"wrong"},
		"hub.challenge":    {"challenge-1234"},
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestVerifyMissingArguments(t *testing.T) {
	handler := Verify(discardLogger(), "my-verify-token")

	rec := verifyRequest(handler, url.Values{"hub.mode": {"subscribe"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
