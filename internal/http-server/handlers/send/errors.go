package send

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"warelay/internal/lib/api/response"
	"warelay/internal/lib/sl"
	"warelay/internal/service/whatsapp"
)

var validate = validator.New()

// renderSendError maps a classified send failure to its status code:
// timeouts to 408, everything else to 500.
func renderSendError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.Error("failed to send message", sl.Err(err))

	switch {
	case errors.Is(err, whatsapp.ErrRequestTimeout):
		render.Status(r, http.StatusRequestTimeout)
		render.JSON(w, r, response.Error("Request timed out"))
	case errors.Is(err, whatsapp.ErrMultipleRecipients):
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Unexpected response from the WhatsApp API"))
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to send message"))
	}
}
