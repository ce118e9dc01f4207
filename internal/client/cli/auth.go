package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sessionview/internal/client/validate"
	"github.com/dmitrijs2005/sessionview/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register shows the registration panel, prompts for user name, email and
// password and submits them. The form is checked before anything is sent;
// the outcome, success or the server's reason, is drawn in the panel.
func (a *App) Register(ctx context.Context) error {
	if err := a.render(a.controller.OpenRegister()); err != nil {
		return err
	}

	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := validate.RegisterForm{UserName: userName, Email: email, Password: string(password)}
	return a.render(a.controller.Register(ctx, form))
}

// SignIn prompts for credentials. On success the token is stored and the
// authenticated view is drawn.
func (a *App) SignIn(ctx context.Context) error {
	if err := a.render(a.controller.OpenSignIn()); err != nil {
		return err
	}

	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := validate.SignInForm{UserName: userName, Password: string(password)}
	return a.render(a.controller.SignIn(ctx, form))
}

func (a *App) SignOut(ctx context.Context) error {
	return a.render(a.controller.SignOut(ctx))
}

// Reload resolves the stored token again, as on start.
func (a *App) Reload(ctx context.Context) error {
	return a.render(a.controller.Init(ctx))
}

// WhoAmI prints what the stored token says about the session.
func (a *App) WhoAmI(ctx context.Context) error {
	info, err := a.controller.TokenInfo(ctx)
	if errors.Is(err, common.ErrNotSignedIn) {
		printlnFn("Not signed in.")
		return nil
	}
	if err != nil {
		return err
	}
	return a.renderer.RenderToken(info)
}
