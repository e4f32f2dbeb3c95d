package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for new users and request traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// v7 source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Reuse keeps candidate if it is a well-formed UUID and issues a new one
// otherwise. Caller-supplied values never reach logs unchecked.
func (g *UUIDGenerator) Reuse(candidate string) string {
	if candidate != "" && uuid.Validate(candidate) == nil {
		return candidate
	}
	return g.Generate()
}
