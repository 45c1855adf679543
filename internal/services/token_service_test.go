package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestTokenService(accessTTL, refreshTTL time.Duration) *TokenService {
	return NewTokenService([]byte("test-secret"), accessTTL, refreshTTL, NewBlacklist())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(10*time.Minute, 720*time.Hour)

	access, err := svc.IssueAccessToken("a@b.co")
	require.NoError(t, err)

	claims, err := svc.Verify(access, TokenKindAccess)
	require.NoError(t, err)
	require.Equal(t, "a@b.co", claims.Subject)
	require.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenService_Verify_WrongKind(t *testing.T) {
	svc := newTestTokenService(10*time.Minute, 720*time.Hour)

	access, err := svc.IssueAccessToken("a@b.co")
	require.NoError(t, err)
	refresh, err := svc.IssueRefreshToken("a@b.co")
	require.NoError(t, err)

	_, err = svc.Verify(access, TokenKindRefresh)
	require.ErrorIs(t, err, ErrTokenKind)
	_, err = svc.Verify(refresh, TokenKindAccess)
	require.ErrorIs(t, err, ErrTokenKind)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := newTestTokenService(-1*time.Second, 720*time.Hour)

	access, err := svc.IssueAccessToken("a@b.co")
	require.NoError(t, err)

	_, err = svc.Verify(access, TokenKindAccess)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	svc := newTestTokenService(10*time.Minute, 720*time.Hour)
	other := NewTokenService([]byte("other-secret"), 10*time.Minute, 720*time.Hour, NewBlacklist())

	access, err := other.IssueAccessToken("a@b.co")
	require.NoError(t, err)

	_, err = svc.Verify(access, TokenKindAccess)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := newTestTokenService(10*time.Minute, 720*time.Hour)

	_, err := svc.Verify("not.a.jwt", TokenKindAccess)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_RevokeThenVerify(t *testing.T) {
	svc := newTestTokenService(10*time.Minute, 720*time.Hour)

	refresh, err := svc.IssueRefreshToken("a@b.co")
	require.NoError(t, err)

	_, err = svc.Verify(refresh, TokenKindRefresh)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(refresh))

	_, err = svc.Verify(refresh, TokenKindRefresh)
	require.ErrorIs(t, err, ErrTokenRevoked)

	// Revoking again fails verification with the same sentinel.
	require.ErrorIs(t, svc.Revoke(refresh), ErrTokenRevoked)
}

func TestTokenService_Refresh(t *testing.T) {
	svc := newTestTokenService(10*time.Minute, 720*time.Hour)

	refresh, err := svc.IssueRefreshToken("a@b.co")
	require.NoError(t, err)

	access, err := svc.Refresh(refresh)
	require.NoError(t, err)

	claims, err := svc.Verify(access, TokenKindAccess)
	require.NoError(t, err)
	require.Equal(t, "a@b.co", claims.Subject)

	// The refresh token stays valid; refresh does not rotate it.
	_, err = svc.Verify(refresh, TokenKindRefresh)
	require.NoError(t, err)
}

func TestTokenService_Refresh_RevokedToken(t *testing.T) {
	svc := newTestTokenService(10*time.Minute, 720*time.Hour)

	refresh, err := svc.IssueRefreshToken("a@b.co")
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(refresh))

	_, err = svc.Refresh(refresh)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

func TestTokenService_NonExpiringRefreshToken(t *testing.T) {
	svc := newTestTokenService(10*time.Minute, 0)

	refresh, err := svc.IssueRefreshToken("a@b.co")
	require.NoError(t, err)

	claims, err := svc.Verify(refresh, TokenKindRefresh)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
}

func TestBlacklist_PrunesExpiredEntries(t *testing.T) {
	b := NewBlacklist()

	b.Add("lapsed", time.Now().Add(-time.Minute))
	b.Add("current", time.Now().Add(time.Hour))
	b.Add("forever", time.Time{})

	// The next Add prunes entries whose token already expired.
	b.Add("trigger", time.Now().Add(time.Hour))

	require.False(t, b.Contains("lapsed"))
	require.True(t, b.Contains("current"))
	require.True(t, b.Contains("forever"))
	require.Equal(t, 3, b.Len())
}
