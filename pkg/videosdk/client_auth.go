package videosdk

import (
	"context"
	"net/http"
)

// Register creates an account and returns its bearer token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/register", req)
	if err != nil {
		return "", err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return "", err
	}
	return tokenResp.Token, nil
}

// Login exchanges credentials for the account's token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return "", err
	}
	return tokenResp.Token, nil
}
