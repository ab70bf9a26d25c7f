// Package uuid generates and validates the identifiers used as primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"

	apperrors "estatedesk/internal/errors"
)

// New generates a new time-ordered UUIDv7, suitable for use as a database
// primary key. It falls back to a random UUIDv4 if the clock source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates and parses a UUID string
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// Require returns the canonical form of s, or a BAD_REQUEST naming the
// offending field when s is not a UUID.
func Require(field, s string) (string, error) {
	id, err := Parse(s)
	if err != nil {
		return "", apperrors.WithMessagef(apperrors.ErrBadRequest, "Invalid data: %s: must be a valid UUID", field)
	}
	return id, nil
}
