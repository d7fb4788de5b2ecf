package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	i := NewIssuer("secret", time.Hour)

	token, err := i.Issue(Claims{UserID: 12, Email: "ana@example.com", Role: "client"})
	require.NoError(t, err)

	claims, err := i.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: 12, Email: "ana@example.com", Role: "client"}, claims)
}

func TestIssuer_RejectsForeignAndExpiredTokens(t *testing.T) {
	i := NewIssuer("secret", time.Hour)
	other := NewIssuer("other", time.Hour)

	token, err := other.Issue(Claims{UserID: 1})
	require.NoError(t, err)
	_, err = i.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err = i.Issue(Claims{UserID: 1})
	require.NoError(t, err)
	i.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = i.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = i.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
