// Package services contains application services for the sessionview client.
// This file defines the session service: identity resolution, registration,
// sign-in/out, profile updates and the superuser listing operations, all
// bound to the persisted session token.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sessionview/internal/client/client"
	"github.com/dmitrijs2005/sessionview/internal/client/models"
	"github.com/dmitrijs2005/sessionview/internal/client/store"
	"github.com/dmitrijs2005/sessionview/internal/client/validate"
	"github.com/dmitrijs2005/sessionview/internal/common"
	"github.com/dmitrijs2005/sessionview/internal/logging"
)

// AuthService defines the session operations used by the controller.
//
// Contract:
//   - Resolve: identity for the stored token; never touches storage.
//   - Register / SignIn / UpdateProfile: validate the form first and return
//     a *validate.AlertError without any network call when it fails.
//   - SignIn persists the issued token; SignOut drops it.
//   - UpdateProfile drops the token on success (the server invalidates it)
//     and when the server reports the session as expired.
//   - ListUsers / ChangeUserStatus / TokenInfo need a stored token and
//     return common.ErrNotSignedIn otherwise.
//
// All methods honor context cancellation.
type AuthService interface {
	Resolve(ctx context.Context) (models.Identity, bool, error)
	Register(ctx context.Context, form validate.RegisterForm) (string, error)
	SignIn(ctx context.Context, form validate.SignInForm) error
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, form validate.ProfileForm) (string, error)
	ListUsers(ctx context.Context) (string, error)
	ChangeUserStatus(ctx context.Context, uid string) (string, error)
	TokenInfo(ctx context.Context) (TokenInfo, error)
}

// ErrIncompleteIdentity is returned by Resolve when the server accepts the
// token but names no user.
var ErrIncompleteIdentity = errors.New("identity has no user name")

type authService struct {
	client client.Client
	tokens store.TokenStore
	log    logging.Logger
}

func NewAuthService(c client.Client, tokens store.TokenStore, log logging.Logger) AuthService {
	return &authService{client: c, tokens: tokens, log: log}
}

// Resolve returns the anonymous identity without a network call when no
// token is stored. Otherwise it asks the server; any failure yields the
// anonymous identity, authenticated=false and the error, which matches
// client.ErrSessionExpired when the caller should drop the token.
func (a *authService) Resolve(ctx context.Context) (models.Identity, bool, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return models.Anonymous(), false, fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return models.Anonymous(), false, nil
	}

	identity, err := a.client.Identify(ctx, token)
	if err != nil {
		a.log.Info(ctx, "identity not resolved", "error", err)
		return models.Anonymous(), false, err
	}
	if identity.UserName == "" {
		a.log.Warn(ctx, "identity without user name, treating session as anonymous")
		return models.Anonymous(), false, fmt.Errorf("failed to decode identity: %w", ErrIncompleteIdentity)
	}
	return identity, true, nil
}

func (a *authService) Register(ctx context.Context, form validate.RegisterForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}
	return a.client.Register(ctx, form.Request())
}

func (a *authService) SignIn(ctx context.Context, form validate.SignInForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	token, err := a.client.SignIn(ctx, form.Request())
	if err != nil {
		return err
	}

	if err := a.tokens.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	a.log.Info(ctx, "signed in", "user", form.UserName)
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.tokens.DropToken(ctx); err != nil {
		return fmt.Errorf("drop token: %w", err)
	}
	return nil
}

func (a *authService) UpdateProfile(ctx context.Context, form validate.ProfileForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}

	token, err := a.requireToken(ctx)
	if err != nil {
		return "", err
	}

	msg, err := a.client.UpdateProfile(ctx, token, form.Patch())
	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			if dropErr := a.SignOut(ctx); dropErr != nil {
				return "", errors.Join(err, dropErr)
			}
		}
		return "", err
	}

	if err := a.SignOut(ctx); err != nil {
		return msg, err
	}
	return msg, nil
}

func (a *authService) ListUsers(ctx context.Context) (string, error) {
	token, err := a.requireToken(ctx)
	if err != nil {
		return "", err
	}
	return a.client.ListUsers(ctx, token)
}

func (a *authService) ChangeUserStatus(ctx context.Context, uid string) (string, error) {
	if err := validate.UserID(uid); err != nil {
		return "", err
	}

	token, err := a.requireToken(ctx)
	if err != nil {
		return "", err
	}
	return a.client.ChangeUserStatus(ctx, token, uid)
}

func (a *authService) TokenInfo(ctx context.Context) (TokenInfo, error) {
	token, err := a.requireToken(ctx)
	if err != nil {
		return TokenInfo{}, err
	}
	return InspectToken(token), nil
}

func (a *authService) requireToken(ctx context.Context) (string, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return "", common.ErrNotSignedIn
	}
	return token, nil
}
