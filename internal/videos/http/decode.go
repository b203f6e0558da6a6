package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/dancereel/internal/videos/service"
)

const maxJSONBody = 64 << 10

// decodeJSONBody decodes the request body into dst. Unreadable bodies are
// reported as a *service.ValidationError so they share the
// invalid_request path with field validation.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.NewValidationError(map[string]string{
			"body": "must be a JSON object",
		})
	}
	return nil
}
