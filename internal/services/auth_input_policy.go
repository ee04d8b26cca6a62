package services

import (
	"errors"
	"strings"
)

var ErrCredentialsMissing = errors.New("email and password are required")

// NormalizeCredentials trims both fields and requires them to be non-empty.
// That is the only client-side check: format and uniqueness rules belong to
// the remote service, which reports them through its rejection detail.
func NormalizeCredentials(emailRaw string, passwordRaw string) (string, string, error) {
	email := strings.TrimSpace(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrCredentialsMissing
	}
	return email, password, nil
}
