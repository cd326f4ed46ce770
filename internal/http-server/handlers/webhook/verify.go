package webhook

import (
	"log/slog"
	"net/http"

	"warelay/internal/lib/sl"
)

// Verify handles the GET challenge-response check Meta performs when the
// webhook is registered. The hub.verify_token must match the configured
// token and hub.challenge is echoed back on success.
func Verify(log *slog.Logger, verifyToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(sl.Module("webhook.verify"))

		mode := r.URL.Query().Get("hub.mode")
		token := r.URL.Query().Get("hub.verify_token")
		challenge := r.URL.Query().Get("hub.challenge")

		if mode != "subscribe" || challenge == "" {
			http.Error(w, "Required arguments haven't passed.", http.StatusBadRequest)
			return
		}

		if token != verifyToken {
			logger.Warn("webhook verification failed",
				slog.String("mode", mode),
			)
			http.Error(w, "Verification token mismatch", http.StatusForbidden)
			return
		}

		logger.Info("webhook verified")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
	}
}
