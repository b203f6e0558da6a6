package service

import "errors"

var (
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrStorageWrite         = errors.New("failed to store upload")
	ErrVideoNotFound        = errors.New("video not found")
)
