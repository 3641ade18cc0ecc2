package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_Pair(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", time.Hour, 24*time.Hour)

	pair, err := m.IssuePair(7)
	require.NoError(t, err)

	c, err := m.ParseAccess(pair.Access)
	require.NoError(t, err)
	require.Equal(t, int64(7), c.UserID)
	require.Equal(t, TypeAccess, c.TokenType)
	require.NotEmpty(t, c.ID)

	_, err = m.ParseAccess(pair.Refresh)
	require.ErrorIs(t, err, ErrInvalidToken)

	access, err := m.Refresh(pair.Refresh)
	require.NoError(t, err)
	c, err = m.ParseAccess(access)
	require.NoError(t, err)
	require.Equal(t, int64(7), c.UserID)

	_, err = m.Refresh(pair.Access)
	require.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, m.Verify(pair.Access))
	require.NoError(t, m.Verify(pair.Refresh))
}

func TestTokenManager_Rejects(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", time.Hour, time.Hour)
	pair, err := m.IssuePair(1)
	require.NoError(t, err)

	other := NewTokenManager("other", time.Hour, time.Hour)

	expired := NewTokenManager("secret", time.Hour, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.IssuePair(1)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{TokenType: TypeAccess, UserID: 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		mgr   *TokenManager
	}{
		{name: "garbage", token: "not-a-jwt", mgr: m},
		{name: "wrong secret", token: pair.Access, mgr: other},
		{name: "expired", token: old.Access, mgr: m},
		{name: "alg none", token: unsigned, mgr: m},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.mgr.ParseAccess(tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
