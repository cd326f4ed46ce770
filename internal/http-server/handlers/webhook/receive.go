package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"warelay/internal/lib/api/response"
	"warelay/internal/lib/sl"
	"warelay/internal/service/whatsapp"
)

// Receive handles incoming webhook POST requests: it validates the payload,
// normalizes the message, broadcasts it to the feed and echoes a reply to
// the sender. Status-update callbacks are acknowledged without processing.
func Receive(log *slog.Logger, appSecret string, core Core, feed Feed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(sl.Module("webhook.receive"))

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("failed to read request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read request body"))
			return
		}
		defer r.Body.Close()

		if appSecret != "" {
			signature := r.Header.Get("X-Hub-Signature-256")
			if !whatsapp.ValidSignature(appSecret, body, signature) {
				logger.Warn("invalid webhook signature")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("invalid signature"))
				return
			}
		}

		var payload whatsapp.WebhookPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			logger.Error("failed to parse webhook payload", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid JSON provided"))
			return
		}

		// Delivery and read receipts carry no message and need no processing.
		if payload.HasStatuses() {
			logger.Info("received a status update")
			render.JSON(w, r, response.Ok("status update"))
			return
		}

		if !payload.IsValidMessage() {
			logger.Warn("not a whatsapp message event")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Not a WhatsApp API event"))
			return
		}

		wam, err := core.ParseMessage(&payload)
		if err != nil {
			renderParseError(w, r, logger, err)
			return
		}

		if feed != nil {
			feed.BroadcastMessage(wam)
		}

		reply := wam.Body()
		if wam.Media != nil {
			reply = fmt.Sprintf("Mmm, %s", wam.Type)
		}
		if _, err := core.SendText(wam.SenderID, reply); err != nil {
			renderSendError(w, r, logger, err)
			return
		}

		render.JSON(w, r, response.Ok("message processed"))
	}
}

func renderParseError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.Error("failed to parse message", sl.Err(err))

	var unsupported *whatsapp.UnsupportedTypeError
	switch {
	case errors.As(err, &unsupported):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(unsupported.Error()))
	case errors.Is(err, whatsapp.ErrRequestTimeout):
		render.Status(r, http.StatusRequestTimeout)
		render.JSON(w, r, response.Error("media download timed out"))
	case errors.Is(err, whatsapp.ErrNoMessage):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Not a WhatsApp API event"))
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to process message"))
	}
}

func renderSendError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.Error("failed to send reply", sl.Err(err))

	if errors.Is(err, whatsapp.ErrRequestTimeout) {
		render.Status(r, http.StatusRequestTimeout)
		render.JSON(w, r, response.Error("Request timed out"))
		return
	}
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error("Failed to send message"))
}
