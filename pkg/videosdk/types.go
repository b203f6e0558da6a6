package videosdk

import "io"

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw123"`
	School   string `json:"school" example:"Juilliard"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw123"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	// Token is the opaque bearer token for the Authorization header.
	Token string `json:"token" example:"q1H4l8o1Vb4Yx9m2m0gYJ1o6bq3tZxkz9d2bVQ6u0jE"`
}

// UploadRequest describes a file to upload. Body is streamed, not buffered.
type UploadRequest struct {
	Filename string
	Title    string
	Body     io.Reader
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Message  string `json:"message" example:"Uploaded!"`
	ID       int64  `json:"id" example:"1"`
	Filename string `json:"filename" example:"3f0c0b3a9d6e4e0f8f1b2c3d4e5f6a7b_solo.mp4"`
}

// Video is one entry of GET /videos.
type Video struct {
	ID       int64  `json:"id" example:"1"`
	Title    string `json:"title" example:"Solo"`
	Filename string `json:"filename" example:"3f0c0b3a9d6e4e0f8f1b2c3d4e5f6a7b_solo.mp4"`
	URL      string `json:"url" example:"/play/1"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error            string `json:"error" example:"invalid_request"`
	ErrorDescription string `json:"error_description,omitempty" example:"username: required"`
}

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime,omitempty" example:"1h23m45s"`
	Version string        `json:"version,omitempty" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
	Storage  string `json:"storage" example:"ok"`
}
