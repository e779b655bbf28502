package logging

import "github.com/google/uuid"

// GenerateRequestID returns a random request ID.
func GenerateRequestID() string {
	return uuid.NewString()
}
