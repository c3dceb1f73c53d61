package validator

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"file-share-api/internal/interface/api/rest/dto/auth"
	"file-share-api/internal/interface/api/rest/dto/share"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	minUsernameLen = 2
	maxUsernameLen = 64

	maxShareTargets = 100
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	username := strings.TrimSpace(r.Username)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// username (required + length)
	if username == "" {
		errs["username"] = "username is required"
	} else if l := utf8.RuneCountInString(username); l < minUsernameLen || l > maxUsernameLen {
		errs["username"] = "username length must be 2-64 characters"
	}

	// password (required + length)
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required)
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateShareTargets parses the requested target ids. Malformed ids
// reject the whole request; unknown-but-well-formed ids are left for
// the service to report per target.
func ValidateShareTargets(r share.ShareRequest) ([]uuid.UUID, error) {
	if len(r.UserIDs) == 0 {
		return nil, errors.New("user_ids must be a non-empty array")
	}
	if len(r.UserIDs) > maxShareTargets {
		return nil, errors.New("too many user_ids in one request")
	}

	ids := make([]uuid.UUID, 0, len(r.UserIDs))
	for _, s := range r.UserIDs {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.New("user_ids must contain valid UUIDs")
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ValidateExpiresAt parses an optional RFC 3339 expiry. A nil or empty
// value means the share never expires.
func ValidateExpiresAt(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*s))
	if err != nil {
		return nil, errors.New("expires_at must be an RFC 3339 timestamp")
	}
	if !t.After(time.Now().UTC()) {
		return nil, errors.New("expires_at must be in the future")
	}

	return &t, nil
}
