package send

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"warelay/entity"
	"warelay/internal/lib/api/response"
	"warelay/internal/lib/sl"
)

// Document handles POST /api/v1/send/document.
// Content-Type: multipart/form-data
// Fields: file (single), to (recipient wa_id)
func Document(log *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(sl.Module("send.document"))

		if err := r.ParseMultipartForm(entity.MaxDocumentSize); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid multipart form"))
			return
		}

		to := r.FormValue("to")
		if to == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("to is required"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("file is required"))
			return
		}
		defer file.Close()

		if header.Size > entity.MaxDocumentSize {
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error(fmt.Sprintf("file %q exceeds the %d MB limit", header.Filename, entity.MaxDocumentSize>>20)))
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Error("failed to read uploaded file",
				slog.String("filename", header.Filename),
				sl.Err(err),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read uploaded file"))
			return
		}

		filename := header.Filename
		if filename == "" {
			filename = uuid.NewString()
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		confirmation, err := core.SendDocument(to, data, filename, mimeType)
		if err != nil {
			renderSendError(w, r, logger, err)
			return
		}

		render.JSON(w, r, confirmation)
	}
}
