package videos_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/dancereel/pkg/videosdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin checks the strict credential limit (5 req/min per
// address and username) using production defaults.
func TestRateLimitLogin(t *testing.T) {
	client := setupVideosContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "5",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "5",
	})
	ctx := t.Context()

	for i := range 5 {
		_, err := client.Login(ctx, "mallory", "guess")
		requireAPIError(t, err, http.StatusUnauthorized, videosdk.ErrorCodeInvalidCredentials)
		require.NotContains(t, err.Error(), "429", "request %d should not be limited", i+1)
	}

	_, err := client.Login(ctx, "mallory", "guess")
	requireAPIError(t, err, http.StatusTooManyRequests, videosdk.ErrorCodeRateLimitExceeded)

	// Another username from the same address has its own bucket.
	_, err = client.Login(ctx, "trent", "guess")
	requireAPIError(t, err, http.StatusUnauthorized, videosdk.ErrorCodeInvalidCredentials)
}
