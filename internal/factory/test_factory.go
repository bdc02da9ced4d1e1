package factory

import (
	"time"

	"github.com/mrodgar/gymrat/internal/dependencies/mocks"
	"github.com/mrodgar/gymrat/internal/services/token"
	"github.com/mrodgar/gymrat/internal/storage/memory"
)

// TestJWTSecret is the signing key used by test apps
const TestJWTSecret = "test-secret-0123456789abcdef0123456789"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs()

	app, err := newWithDependencies(store, mockClock, mockIDs, TestJWTSecret, token.DefaultTTL)
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}
