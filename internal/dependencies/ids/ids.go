package ids

import (
	"crypto/rand"
	"encoding/base64"
)

// Generator produces opaque record identifiers. It can be mocked for
// deterministic tests.
type Generator interface {
	// NewID returns a fresh identifier carrying the given prefix
	NewID(prefix string) string
}

// RandomGenerator implements Generator using crypto/rand
type RandomGenerator struct{}

// New creates a new RandomGenerator
func New() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns prefix followed by 128 bits of randomness in URL-safe base64
func (g *RandomGenerator) NewID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
