package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// photoFormField is the multipart field carrying the uploaded image.
const photoFormField = "photo"

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	payload, err := readPhoto(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	asset, err := h.services.UploadService.UploadImage(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.UploadResponse{
		Success:  true,
		URL:      asset.URL,
		PublicID: asset.ID,
	}, http.StatusOK)
}

// readPhoto extracts the photo part of a multipart request. The declared
// content type of the part wins; when it is missing it is sniffed from the
// data.
func readPhoto(r *http.Request) (models.ImagePayload, error) {
	file, header, err := r.FormFile(photoFormField)
	if err != nil {
		return models.ImagePayload{}, uploadReadError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.ImagePayload{}, uploadReadError(err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return models.ImagePayload{
		ContentType: contentType,
		Filename:    header.Filename,
		Data:        data,
	}, nil
}

func uploadReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return app.InvalidInput(app.MsgFileTooLarge, err)
	}
	return app.InvalidInput(app.MsgNoFileUploaded, err)
}
