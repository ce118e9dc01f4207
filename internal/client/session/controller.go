// Package session drives the session view: it owns the current view.Model
// and moves it between states as the user acts, going through the auth
// service for anything that needs the server or the stored token.
//
// Every operation runs to completion before returning: the identity is
// resolved, then the action is taken, then the model is replaced. Nothing
// here is safe for concurrent use; the CLI calls it from one goroutine.
package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sessionview/internal/client/client"
	"github.com/dmitrijs2005/sessionview/internal/client/models"
	"github.com/dmitrijs2005/sessionview/internal/client/services"
	"github.com/dmitrijs2005/sessionview/internal/client/validate"
	"github.com/dmitrijs2005/sessionview/internal/client/view"
	"github.com/dmitrijs2005/sessionview/internal/common"
	"github.com/dmitrijs2005/sessionview/internal/logging"
)

type Controller struct {
	auth  services.AuthService
	log   logging.Logger
	model view.Model
}

func NewController(auth services.AuthService, log logging.Logger) *Controller {
	return &Controller{
		auth:  auth,
		log:   log,
		model: view.ForIdentity(models.Anonymous(), false),
	}
}

func (c *Controller) Model() view.Model { return c.model }

// Init resolves the identity behind the stored token and shows the home
// view for it. An expired session drops the token.
func (c *Controller) Init(ctx context.Context) view.Model {
	identity, ok, err := c.auth.Resolve(ctx)
	c.model = view.ForIdentity(identity, ok)

	switch {
	case err == nil:
	case errors.Is(err, client.ErrSessionExpired):
		c.expire(ctx, err)
	case errors.Is(err, client.ErrUnavailable):
		c.model = c.model.WithAlert(client.Message(err))
	default:
		c.log.Warn(ctx, "identify failed", "error", err)
	}
	return c.model
}

// Reset drops back to the anonymous home view without asking the server.
func (c *Controller) Reset() view.Model {
	c.model = view.ForIdentity(models.Anonymous(), false)
	return c.model
}

func (c *Controller) OpenRegister() view.Model {
	c.model = c.model.WithoutNotice().WithFragment(view.FragmentRegister)
	return c.model
}

func (c *Controller) Register(ctx context.Context, form validate.RegisterForm) view.Model {
	m := c.model.WithoutNotice().WithFragment(view.FragmentRegister)

	msg, err := c.auth.Register(ctx, form)
	if err != nil {
		c.model = c.fail(ctx, m, err)
		return c.model
	}
	c.model = m.WithFragment(view.FragmentRegistered).WithMessage(msg)
	return c.model
}

func (c *Controller) OpenSignIn() view.Model {
	c.model = c.model.WithoutNotice().WithFragment(view.FragmentSignIn)
	return c.model
}

// SignIn persists the issued token and re-resolves the identity, so the
// resulting view is the one the server confirms.
func (c *Controller) SignIn(ctx context.Context, form validate.SignInForm) view.Model {
	m := c.model.WithoutNotice().WithFragment(view.FragmentSignIn)

	if err := c.auth.SignIn(ctx, form); err != nil {
		c.model = c.fail(ctx, m, err)
		return c.model
	}
	return c.Init(ctx)
}

func (c *Controller) SignOut(ctx context.Context) view.Model {
	if err := c.auth.SignOut(ctx); err != nil {
		c.log.Error(ctx, "sign out failed", "error", err)
		c.model = c.model.WithAlert(err.Error())
		return c.model
	}
	return c.Reset()
}

// OpenProfile shows the profile editor for the current identity, or the
// home view when there is no session.
func (c *Controller) OpenProfile(ctx context.Context) view.Model {
	c.Init(ctx)
	if c.model.IsAuthenticated() {
		c.model = c.model.WithFragment(view.FragmentProfile)
	}
	return c.model
}

func (c *Controller) BeginEdit(f view.Field) view.Model {
	c.model = c.model.WithoutNotice().BeginEdit(f)
	return c.model
}

func (c *Controller) CancelEdit(f view.Field) view.Model {
	c.model = c.model.WithoutNotice().CancelEdit(f)
	return c.model
}

// ApplyProfile sends the active fields of form. Which fields are active is
// decided by the model, not by the caller. Success signs the user out since
// the server no longer honours the old token.
func (c *Controller) ApplyProfile(ctx context.Context, form validate.ProfileForm) view.Model {
	m := c.model.WithoutNotice()
	form.NameActive = m.Active(view.FieldName)
	form.EmailActive = m.Active(view.FieldEmail)
	form.PasswordActive = m.Active(view.FieldPassword)

	msg, err := c.auth.UpdateProfile(ctx, form)
	if err != nil {
		c.model = c.fail(ctx, m, err)
		return c.model
	}
	c.Reset()
	c.model = c.model.WithNotice(msg)
	return c.model
}

// ResetProfile throws away pending edits by reloading the editor.
func (c *Controller) ResetProfile(ctx context.Context) view.Model {
	return c.OpenProfile(ctx)
}

func (c *Controller) ShowUsers(ctx context.Context) view.Model {
	m := c.model.WithoutNotice()
	if !m.UsersPanel() {
		c.model = m.WithFragment(view.FragmentNone)
		return c.model
	}

	listing, err := c.auth.ListUsers(ctx)
	if err != nil {
		c.model = c.fail(ctx, m, err)
		return c.model
	}
	c.model = m.WithUsers(listing)
	return c.model
}

func (c *Controller) HideUsers() view.Model {
	c.model = c.model.WithoutNotice().WithoutUsers()
	return c.model
}

// ToggleUserStatus flips the active flag of the user with the given id,
// reports the server's answer and refreshes the listing.
func (c *Controller) ToggleUserStatus(ctx context.Context, uid string) view.Model {
	m := c.model.WithoutNotice()
	if !m.UsersPanel() {
		c.model = m.WithFragment(view.FragmentNone)
		return c.model
	}

	msg, err := c.auth.ChangeUserStatus(ctx, uid)
	var se *client.ServerError
	switch {
	case err == nil:
		m = m.WithNotice(msg)
	case errors.As(err, &se) && !errors.Is(err, client.ErrSessionExpired):
		c.log.Warn(ctx, "status change rejected", "uid", uid, "status", se.Status)
		m = m.WithAlert(se.Error())
	default:
		c.model = c.fail(ctx, m, err)
		return c.model
	}

	listing, err := c.auth.ListUsers(ctx)
	if err != nil {
		c.model = c.fail(ctx, m, err)
		return c.model
	}
	c.model = m.WithUsers(listing)
	return c.model
}

func (c *Controller) TokenInfo(ctx context.Context) (services.TokenInfo, error) {
	return c.auth.TokenInfo(ctx)
}

// fail maps err onto m: validation problems become alerts, an expired
// session forces a sign-out, and anything the server said is shown inline
// in the current panel.
func (c *Controller) fail(ctx context.Context, m view.Model, err error) view.Model {
	if msg, ok := validate.IsAlert(err); ok {
		return m.WithAlert(msg)
	}

	if errors.Is(err, client.ErrSessionExpired) {
		c.expire(ctx, err)
		return c.model
	}
	if errors.Is(err, common.ErrNotSignedIn) {
		return c.Reset()
	}

	var se *client.ServerError
	if errors.As(err, &se) {
		c.log.Warn(ctx, "request rejected", "status", se.Status, "message", se.Message)
		if m.Fragment() == view.FragmentNone {
			return m.WithAlert(se.Error())
		}
		return m.WithMessage(se.Error())
	}

	c.log.Error(ctx, "request failed", "error", err)
	return m.WithAlert(client.Message(err))
}

func (c *Controller) expire(ctx context.Context, err error) {
	if dropErr := c.auth.SignOut(ctx); dropErr != nil {
		c.log.Error(ctx, "drop expired token", "error", dropErr)
	}
	c.log.Info(ctx, "session expired")
	c.Reset()
	c.model = c.model.WithAlert(client.Message(err))
}
