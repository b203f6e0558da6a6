package http

import (
	"net/http"

	"github.com/aussiebroadwan/dancereel/internal/videos/service"
	"github.com/aussiebroadwan/dancereel/pkg/httpx"
	"github.com/aussiebroadwan/dancereel/pkg/videosdk"
)

type LoginHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Exchange credentials for the account's token. Logging in again returns the same token.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		videosdk.LoginRequest	true	"username, password"
//	@Success		200		{object}	videosdk.TokenResponse	"token"
//	@Failure		400		{object}	videosdk.ErrorResponse	"invalid_request"
//	@Failure		401		{object}	videosdk.ErrorResponse	"invalid_credentials"
//	@Failure		429		{object}	videosdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.IdentityService.AuthenticateByPassword(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, videosdk.TokenResponse{Token: token})
}
