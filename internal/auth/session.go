package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the pair of tokens issued by a login or refresh
type Session struct {
	AccessToken  string
	RefreshToken string
}

// LoggedIn reports whether an access token is present
// The token is neither verified nor checked for expiry
func (s Session) LoggedIn() bool {
	return s.AccessToken != ""
}

// Claims are the access token details shown to the user
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the claims expired before now
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// ErrInvalidToken is returned when the access token cannot be decoded
var ErrInvalidToken = errors.New("the provided authentication token is invalid")

// AccessTokenClaims decodes the access token without verifying its signature
func (s Session) AccessTokenClaims() (Claims, error) {
	if s.AccessToken == "" {
		return Claims{}, ErrInvalidToken
	}

	var registered jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, &registered); err != nil {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	claims.Subject = registered.Subject
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims, nil
}
