package videosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeDuplicateUsername    = "duplicate_username"
	ErrorCodeInvalidCredentials   = "invalid_credentials"
	ErrorCodeUnauthenticated      = "unauthenticated"
	ErrorCodeUnsupportedMediaType = "unsupported_media_type"
	ErrorCodeFileTooLarge         = "file_too_large"
	ErrorCodeStorageWriteError    = "storage_write_error"
	ErrorCodeNotFound             = "not_found"
	ErrorCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

// parseErrorResponse builds an *APIError from an error reply. Bodies that
// are not JSON (a proxy page, say) fall back to a code derived from the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	code := ErrorCodeServerError
	if resp.StatusCode == http.StatusNotFound {
		code = ErrorCodeNotFound
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        code,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
