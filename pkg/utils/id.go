package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a random correlation ID for an outgoing request.
func NewRequestID() string {
	return uuid.NewString()
}

// IsRequestID reports whether s looks like an ID produced by NewRequestID.
func IsRequestID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
