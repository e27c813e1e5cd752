package domain

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized         = errors.New("not authorized")
	ErrForbidden            = errors.New("access forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrEventNotFound        = errors.New("event not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidImage         = errors.New("invalid image")
)

// ValidationError reports request fields that are missing or malformed.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	reason := e.Reason
	if reason == "" {
		reason = "missing required fields"
	}
	return reason + ": " + strings.Join(e.Fields, ", ")
}

// Missing returns a ValidationError for the named fields whose value is blank,
// or nil when every field is present. Pairs are (name, value).
func Missing(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}

// IsNotFound reports whether err is any of the resource-absent sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrAnnouncementNotFound) ||
		errors.Is(err, ErrInquiryNotFound)
}
