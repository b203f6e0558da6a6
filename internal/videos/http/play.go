package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/dancereel/internal/videos/service"
)

type PlayHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP godoc
//
//	@Summary		Play Video
//	@Description	Stream a video's bytes. Supports Range requests. Non-numeric ids are not found.
//	@Tags			Videos
//	@Produce		video/mp4,video/quicktime,video/x-msvideo,video/webm
//	@Param			id	path		int						true	"Video id"
//	@Success		200	{file}		binary					"video bytes"
//	@Success		206	{file}		binary					"partial content"
//	@Failure		404	{object}	videosdk.ErrorResponse	"not_found"
//	@Router			/play/{id} [get].
func (h *PlayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := parseVideoID(r.PathValue("id"))
	if !ok {
		writeServiceError(w, r, service.ErrVideoNotFound)
		return
	}

	video, blob, err := h.CatalogService.Open(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer func() { _ = blob.Close() }()

	w.Header().Set("Content-Type", service.MediaType(video.Filename))
	http.ServeContent(w, r, video.Filename, blob.ModTime, blob)
}

// parseVideoID accepts unsigned decimal ids only.
func parseVideoID(s string) (int64, bool) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
