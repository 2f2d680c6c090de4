package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/goldhollow/trophytable/internal/common/uuid UUID

// UUID abstracts identifier generation so record and die ids are testable.
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements UUID with random v4 identifiers.
type DefaultUUID struct{}

// New returns a random-identifier generator.
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new identifier string.
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
