package http

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/dancereel/internal/videos/service"
	"github.com/aussiebroadwan/dancereel/pkg/httpx"
	"github.com/aussiebroadwan/dancereel/pkg/videosdk"
)

type ListVideosHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP godoc
//
//	@Summary		List Videos
//	@Description	List every uploaded video in upload order. The listing is global, not filtered by school.
//	@Tags			Videos
//	@Produce		json
//	@Success		200	{array}		videosdk.Video			"id, title, filename, url"
//	@Failure		500	{object}	videosdk.ErrorResponse	"server_error"
//	@Router			/videos [get].
func (h *ListVideosHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	videos, err := h.CatalogService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]videosdk.Video, 0, len(videos))
	for _, v := range videos {
		out = append(out, videosdk.Video{
			ID:       v.ID,
			Title:    v.Title,
			Filename: v.Filename,
			URL:      fmt.Sprintf("/play/%d", v.ID),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}
