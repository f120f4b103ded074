package token

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/cluetrail/cluetrail/internal/common/token Generator

// Generator produces opaque tokens for session and race identifiers
type Generator interface {
	NewToken() string
}

// DefaultGenerator implements the Generator interface using the uuid package
type DefaultGenerator struct{}

// New creates a new DefaultGenerator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewToken returns a new opaque token
func (g *DefaultGenerator) NewToken() string {
	return uuid.New().String()
}
