package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", 240*time.Hour, time.Hour)

	for _, kind := range []Kind{KindAdmin, KindEmployee} {
		p := Principal{Kind: kind, ID: "64a000000000000000000001", Username: "alice"}
		signed, err := tokens.Issue(p)
		require.NoError(t, err)

		got, err := tokens.Verify(signed)
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestVerifyExpired(t *testing.T) {
	// Negative TTLs produce already-expired tokens. Expiry is a pure claims
	// check: whether the subject still exists in the store is irrelevant.
	tokens := NewTokens("test-secret", -time.Minute, -time.Minute)

	signed, err := tokens.Issue(Principal{Kind: KindEmployee, ID: "x", Username: "bob"})
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokens("secret-a", time.Hour, time.Hour)
	verifier := NewTokens("secret-b", time.Hour, time.Hour)

	signed, err := issuer.Issue(Principal{Kind: KindAdmin, ID: "x", Username: "root"})
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour, time.Hour)
	for _, bad := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tokens.Verify(bad)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", bad)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("p@ss")
	require.NoError(t, err)
	require.True(t, CheckPassword(hash, "p@ss"))
	require.True(t, CheckPassword(hash, "  p@ss  "), "passwords are trimmed on both ends of the flow")
	require.False(t, CheckPassword(hash, "wrong"))
	require.False(t, CheckPassword("", "p@ss"))
}
