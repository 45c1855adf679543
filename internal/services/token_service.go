package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenKind    = errors.New("wrong token kind")
	ErrTokenRevoked = errors.New("token revoked")
)

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims carried by every issued token. Subject holds the user's email,
// ID the jti used as the revocation key.
type Claims struct {
	jwt.RegisteredClaims
	Kind TokenKind `json:"kind"`
}

// TokenService issues and verifies the HS256-signed access/refresh token
// pair and owns the revocation set for refresh tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	blacklist  *Blacklist
}

// NewTokenService creates a TokenService. A refreshTTL of zero issues
// refresh tokens without an expiry claim.
func NewTokenService(secret []byte, accessTTL, refreshTTL time.Duration, blacklist *Blacklist) *TokenService {
	return &TokenService{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		blacklist:  blacklist,
	}
}

// IssueAccessToken signs a short-lived access token for identity.
func (s *TokenService) IssueAccessToken(identity string) (string, error) {
	return s.issue(identity, TokenKindAccess, s.accessTTL)
}

// IssueRefreshToken signs a refresh token for identity.
func (s *TokenService) IssueRefreshToken(identity string) (string, error) {
	return s.issue(identity, TokenKindRefresh, s.refreshTTL)
}

func (s *TokenService) issue(identity string, kind TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  identity,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Kind: kind,
	}
	if ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry, kind, and (for refresh tokens) the
// revocation set, and returns the token's claims. Failures come back as
// one of the Err* sentinels; callers map them all to the same generic
// status so a client cannot tell which check tripped.
func (s *TokenService) Verify(tokenString string, kind TokenKind) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Kind != kind {
		return nil, ErrTokenKind
	}
	if kind == TokenKindRefresh && s.blacklist.Contains(claims.ID) {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke verifies a refresh token and adds its jti to the revocation set.
func (s *TokenService) Revoke(tokenString string) error {
	claims, err := s.Verify(tokenString, TokenKindRefresh)
	if err != nil {
		return err
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	s.blacklist.Add(claims.ID, expiresAt)
	return nil
}

// Refresh verifies a refresh token and issues a fresh access token for
// the same identity. The refresh token itself is not rotated.
func (s *TokenService) Refresh(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString, TokenKindRefresh)
	if err != nil {
		return "", err
	}
	return s.IssueAccessToken(claims.Subject)
}
