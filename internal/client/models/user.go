// Package models defines the request and response shapes exchanged with the
// authentication service, plus the client-side identity.
package models

import "github.com/dmitrijs2005/sessionview/internal/common"

// Identity is the user as resolved from the identify endpoint. It lives for
// one session only and is never persisted.
type Identity struct {
	UserName    string `json:"user_name"`
	Email       string `json:"email,omitempty"`
	IsSuperuser bool   `json:"is_superuser,omitempty"`
}

// Anonymous returns the identity shown when no valid session exists.
func Anonymous() Identity {
	return Identity{UserName: common.AnonymousUserName}
}

type RegisterRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

type SignInResponse struct {
	AccessToken string `json:"access_token"`
}

// ProfilePatch carries only the fields being changed. A nil field is sent as
// JSON null, which the server reads as "no change".
type ProfilePatch struct {
	UserName *string `json:"edited_user_name"`
	Email    *string `json:"edited_email"`
	Password *string `json:"edited_password"`
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.UserName == nil && p.Email == nil && p.Password == nil
}

type StatusChangeRequest struct {
	UID string `json:"uid"`
}
