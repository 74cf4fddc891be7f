package domain

import "github.com/google/uuid"

// NewID generates a collision-resistant record identifier.
func NewID() string {
	return uuid.NewString()
}
