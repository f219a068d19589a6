package handler

import (
	"errors"
	"io"
	"net/http"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// POST /classify
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "image_too_large", "Image exceeds the upload limit")
			return
		}
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Expected a multipart form with an image field")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Missing image field")
		return
	}
	defer file.Close()

	img, err := io.ReadAll(file)
	if err != nil || len(img) == 0 {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Image could not be read")
		return
	}

	contentType := http.DetectContentType(img)
	if !allowedImageTypes[contentType] {
		h.writeError(w, http.StatusUnsupportedMediaType, "unsupported_image", "Only JPEG and PNG images are supported")
		return
	}

	result, err := h.service.Classify(r.Context(), img, contentType)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
