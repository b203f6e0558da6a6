package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// Column limits shared by every store driver.
const (
	MaxUsernameLen = 80
	MaxSchoolLen   = 80
	MaxTitleLen    = 200
)

const requiredReason = "required"

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("invalid request")

// ValidationError lists the offending fields and why each was rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid request: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError returns nil when errs is empty.
func NewValidationError(errs map[string]string) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	School   string `json:"school"`
}

// Validate checks required fields and column limits. Values are taken as
// given: usernames are matched exactly, without trimming or case folding.
func (in RegisterInput) Validate() error {
	errs := make(map[string]string)
	validateText(errs, "username", in.Username, MaxUsernameLen)
	validateText(errs, "school", in.School, MaxSchoolLen)
	if in.Password == "" {
		errs["password"] = requiredReason
	}
	return NewValidationError(errs)
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	errs := make(map[string]string)
	if in.Username == "" {
		errs["username"] = requiredReason
	}
	if in.Password == "" {
		errs["password"] = requiredReason
	}
	return NewValidationError(errs)
}

func validateText(errs map[string]string, field, value string, maxLen int) {
	switch {
	case value == "":
		errs[field] = requiredReason
	case utf8.RuneCountInString(value) > maxLen:
		errs[field] = fmt.Sprintf("too long (max %d)", maxLen)
	}
}
