package http

import (
	"net/http"

	"github.com/aussiebroadwan/dancereel/internal/videos/service"
	"github.com/aussiebroadwan/dancereel/pkg/httpx"
	"github.com/aussiebroadwan/dancereel/pkg/videosdk"
)

type RegisterHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Create an account and receive its bearer token. The token is issued once and never expires.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		videosdk.RegisterRequest	true	"username, password, school"
//	@Success		200		{object}	videosdk.TokenResponse		"token"
//	@Failure		400		{object}	videosdk.ErrorResponse		"invalid_request or duplicate_username"
//	@Failure		429		{object}	videosdk.ErrorResponse		"rate_limit_exceeded"
//	@Failure		500		{object}	videosdk.ErrorResponse		"server_error"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.IdentityService.Register(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, videosdk.TokenResponse{Token: token})
}
