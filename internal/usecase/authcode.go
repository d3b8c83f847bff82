package usecase

import "github.com/oklog/ulid/v2"

// AuthCodeGenerator issues authorization codes backed by ULIDs, which embed a
// millisecond timestamp plus random entropy, so collisions within a process
// lifetime are effectively impossible.
type AuthCodeGenerator struct{}

// NewAuthCodeGenerator creates an AuthCodeGenerator.
func NewAuthCodeGenerator() *AuthCodeGenerator {
	return &AuthCodeGenerator{}
}

// Generate returns a new authorization code.
func (g *AuthCodeGenerator) Generate() string {
	return "AUTH" + ulid.Make().String()
}
