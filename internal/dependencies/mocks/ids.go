package mocks

import (
	"fmt"

	"github.com/mrodgar/gymrat/internal/dependencies/ids"
)

// MockIDs is a deterministic Generator for testing. IDs are sequential
// per prefix: u_1, u_2, ts_1, ...
type MockIDs struct {
	counters map[string]int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{counters: make(map[string]int)}
}

// NewID returns the next sequential id for the prefix
func (g *MockIDs) NewID(prefix string) string {
	g.counters[prefix]++
	return fmt.Sprintf("%s%d", prefix, g.counters[prefix])
}
