// Package uuid hides ID generation behind an interface so tests can supply
// deterministic tokens.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique string identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates random v4 UUIDs via google/uuid
type GoogleUUIDGenerator struct{}

// New returns a fresh UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
