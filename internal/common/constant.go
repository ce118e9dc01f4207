// Package common contains shared constants and small helpers used across
// sessionview components.
package common

const (
	// CredentialHeaderName is the HTTP header that carries the raw session
	// token on authenticated requests.
	CredentialHeaderName = "authorization"

	// TokenStorageKey is the fixed key the session token is persisted under.
	TokenStorageKey = "authorization"

	// AnonymousUserName is the display name used when no valid session exists.
	AnonymousUserName = "Guest"

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-Id"
)
