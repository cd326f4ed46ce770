package send

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"warelay/internal/lib/api/response"
	"warelay/internal/lib/sl"
)

// The Cloud API caps interactive reply buttons at three per message.
type ButtonsRequest struct {
	To      string   `json:"to" validate:"required"`
	Text    string   `json:"text" validate:"required,min=1"`
	Buttons []string `json:"buttons" validate:"required,min=1,max=3,dive,required"`
}

// Buttons handles POST /api/v1/send/buttons.
func Buttons(log *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(sl.Module("send.buttons"))

		var req ButtonsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		confirmation, err := core.SendQuickReply(req.To, req.Text, req.Buttons)
		if err != nil {
			renderSendError(w, r, logger, err)
			return
		}

		render.JSON(w, r, confirmation)
	}
}
