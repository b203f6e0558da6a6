package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/dancereel/internal/videos/service"
	"github.com/aussiebroadwan/dancereel/pkg/httpx"
	"github.com/aussiebroadwan/dancereel/pkg/slogx"
	"github.com/aussiebroadwan/dancereel/pkg/videosdk"
)

// writeServiceError maps service errors onto status codes and error codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		httpx.WriteError(w, http.StatusRequestEntityTooLarge,
			videosdk.ErrorCodeFileTooLarge, "Upload exceeds the size limit")
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest,
			videosdk.ErrorCodeInvalidRequest, verr.Error())
	case errors.Is(err, service.ErrDuplicateUsername):
		httpx.WriteError(w, http.StatusBadRequest,
			videosdk.ErrorCodeDuplicateUsername, "username exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized,
			videosdk.ErrorCodeInvalidCredentials, "Invalid username or password")
	case errors.Is(err, service.ErrUnauthenticated):
		httpx.WriteUnauthenticated(w, "A valid token is required")
	case errors.Is(err, service.ErrUnsupportedMediaType):
		httpx.WriteError(w, http.StatusBadRequest,
			videosdk.ErrorCodeUnsupportedMediaType,
			"File extension must be one of: "+strings.Join(service.AllowedExtensions, ", "))
	case errors.Is(err, service.ErrVideoNotFound):
		httpx.WriteError(w, http.StatusNotFound, videosdk.ErrorCodeNotFound, "Not found")
	case errors.Is(err, service.ErrStorageWrite):
		slogx.FromContext(r.Context()).Error("storage write failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			videosdk.ErrorCodeStorageWriteError, "Failed to store upload")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			videosdk.ErrorCodeServerError, "Internal server error")
	}
}
