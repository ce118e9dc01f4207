package client

import (
	"context"

	"github.com/dmitrijs2005/sessionview/internal/client/models"
)

// Client is the transport-agnostic contract with the authentication service.
// Every call is resolved exactly once; there is no retry.
type Client interface {
	Identify(ctx context.Context, token string) (models.Identity, error)
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
	SignIn(ctx context.Context, req models.SignInRequest) (string, error)
	UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (string, error)
	ListUsers(ctx context.Context, token string) (string, error)
	ChangeUserStatus(ctx context.Context, token string, uid string) (string, error)
}
