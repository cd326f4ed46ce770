package send

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"warelay/internal/lib/api/response"
	"warelay/internal/lib/sl"
)

type TextRequest struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required,min=1"`
}

// Text handles POST /api/v1/send/text.
func Text(log *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(sl.Module("send.text"))

		var req TextRequest
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

		confirmation, err := core.SendText(req.To, req.Text)
		if err != nil {
			renderSendError(w, r, logger, err)
			return
		}

		render.JSON(w, r, confirmation)
	}
}
