package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	raw, err := m.Issue("a@b.com")
	require.NoError(t, err)

	claims, err := m.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	m := NewManager("secret-one", time.Hour)
	other := NewManager("secret-two", time.Hour)

	raw, err := m.Issue("a@b.com")
	require.NoError(t, err)

	_, err = other.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	raw, err := m.Issue("a@b.com")
	require.NoError(t, err)

	_, err = m.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RevokeInvalidatesSession(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	raw, err := m.Issue("a@b.com")
	require.NoError(t, err)
	claims, err := m.Verify(raw)
	require.NoError(t, err)

	m.Revoke(claims.ID)

	_, err = m.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Other sessions for the same account survive.
	raw2, err := m.Issue("a@b.com")
	require.NoError(t, err)
	_, err = m.Verify(raw2)
	assert.NoError(t, err)
}
