package types

import "github.com/google/uuid"

// NewID returns a time-ordered UUID v7 string, falling back to a random
// v4 when the v7 clock source fails.
func NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
