package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2 encoded
	Token        string // bearer token sealed with cryptox.TokenSealer, issued once at registration
	TokenHash    string // sha256 fingerprint of Token, used for lookup
	School       string
	CreatedAt    time.Time
}
