package utils

import "github.com/google/uuid"

// UUIDGenerator assigns user ids. Ids are UUIDv7, so they sort by creation
// time in every backend.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random v4 if the v7 clock source
// fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// NewTraceID returns a random id for requests that arrive without a usable
// X-Trace-ID.
func NewTraceID() string {
	return uuid.NewString()
}
