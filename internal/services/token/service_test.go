package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrodgar/gymrat/internal/dependencies/mocks"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestService(t *testing.T, clk *mocks.MockClock) *Service {
	t.Helper()
	svc, err := New(testSecret, time.Hour, clk)
	require.NoError(t, err)
	return svc
}

func TestNewRejectsShortKey(t *testing.T) {
	clk := mocks.NewMockClock(time.Now())

	_, err := New([]byte("too-short"), time.Hour, clk)
	assert.ErrorIs(t, err, ErrKeyTooShort)
}

func TestIssueValidateRoundTrip(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	tok, err := svc.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestValidateFailsAfterExpiry(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	tok, err := svc.Issue("alice")
	require.NoError(t, err)

	clk.Advance(61 * time.Minute)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateBeforeExpirySurvivesClockAdvance(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	tok, err := svc.Issue("alice")
	require.NoError(t, err)

	clk.Advance(59 * time.Minute)

	subject, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestValidateFailsWithWrongKey(t *testing.T) {
	clk := mocks.NewMockClock(time.Now())
	svc := newTestService(t, clk)

	other, err := New([]byte("ffffffffffffffffffffffffffffffff"), time.Hour, clk)
	require.NoError(t, err)

	tok, err := other.Issue("alice")
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateFailsOnMalformedInput(t *testing.T) {
	clk := mocks.NewMockClock(time.Now())
	svc := newTestService(t, clk)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}
