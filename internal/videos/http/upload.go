package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/dancereel/internal/videos/service"
	"github.com/aussiebroadwan/dancereel/pkg/httpx"
	"github.com/aussiebroadwan/dancereel/pkg/slogx"
	"github.com/aussiebroadwan/dancereel/pkg/videosdk"
)

// maxFormMemory is how much of a multipart form is held in memory before
// file parts spill to temporary files.
const maxFormMemory = 32 << 20

type UploadHandler struct {
	IngestService *service.IngestService
	MaxBytes      int64
}

// ServeHTTP godoc
//
//	@Summary		Upload Video
//	@Description	Upload a video as multipart form data. Only .mp4, .mov, .avi and .webm files are accepted (by extension).
//	@Tags			Videos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file						true	"Video file"
//	@Param			title	formData	string						false	"Display title"
//	@Success		200		{object}	videosdk.UploadResponse		"message, id, filename"
//	@Failure		400		{object}	videosdk.ErrorResponse		"invalid_request or unsupported_media_type"
//	@Failure		401		{object}	videosdk.ErrorResponse		"unauthenticated"
//	@Failure		413		{object}	videosdk.ErrorResponse		"file_too_large"
//	@Failure		429		{object}	videosdk.ErrorResponse		"rate_limit_exceeded"
//	@Failure		500		{object}	videosdk.ErrorResponse		"storage_write_error"
//	@Router			/upload [post].
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if h.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn("upload rejected: too large", "limit", tooLarge.Limit)
		}
		writeServiceError(w, r, formError(err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeServiceError(w, r, service.NewValidationError(map[string]string{"file": "required"}))
		return
	}
	defer func() { _ = file.Close() }()

	rec, err := h.IngestService.Ingest(ctx, service.UploadInput{
		Token:    httpx.BearerToken(r),
		Filename: header.Filename,
		Title:    r.FormValue("title"),
		Body:     file,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, videosdk.UploadResponse{
		Message:  "Uploaded!",
		ID:       rec.ID,
		Filename: rec.Filename,
	})
}

// formError keeps size-limit errors intact and folds every other parse
// failure into a validation error.
func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return service.NewValidationError(map[string]string{"body": "must be multipart/form-data"})
}
