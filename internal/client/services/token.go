package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read from the stored token without verifying it.
// The token is opaque to the client: none of this is used to decide whether
// the session is valid, only to show it.
type TokenInfo struct {
	JWT       bool
	UserName  string
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that is before now.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

type tokenClaims struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// InspectToken decodes token as a JWT without checking its signature.
// Tokens that are not JWTs come back with JWT=false.
func InspectToken(token string) TokenInfo {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}
	}

	info := TokenInfo{JWT: true, UserName: claims.UserName, Email: claims.Email}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if info.UserName == "" {
		info.UserName = claims.Subject
	}
	return info
}
