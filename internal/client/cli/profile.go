package cli

import (
	"context"

	"github.com/dmitrijs2005/sessionview/internal/client/validate"
	"github.com/dmitrijs2005/sessionview/internal/client/view"
	"github.com/dmitrijs2005/sessionview/internal/common"
)

func (a *App) Profile(ctx context.Context) error {
	return a.render(a.controller.OpenProfile(ctx))
}

func (a *App) Edit(_ context.Context, field string) error {
	f, ok := view.ParseField(field)
	if !ok {
		printlnFn("Unknown field:", field)
		return nil
	}
	return a.render(a.controller.BeginEdit(f))
}

func (a *App) Cancel(_ context.Context, field string) error {
	f, ok := view.ParseField(field)
	if !ok {
		printlnFn("Unknown field:", field)
		return nil
	}
	return a.render(a.controller.CancelEdit(f))
}

// Apply prompts for the new value of every field being edited and submits
// them together.
func (a *App) Apply(ctx context.Context) error {
	m := a.controller.Model()
	var form validate.ProfileForm
	var err error

	if m.Active(view.FieldName) {
		if form.UserName, err = getSimpleText(a.reader, "Enter new user name", a.out); err != nil {
			return err
		}
	}

	if m.Active(view.FieldEmail) {
		if form.Email, err = getSimpleText(a.reader, "Enter new email", a.out); err != nil {
			return err
		}
	}

	if m.Active(view.FieldPassword) {
		password, err := getPassword(a.reader, "Enter new password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)

		confirm, err := getPassword(a.reader, "Confirm new password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)

		form.Password, form.Confirm = string(password), string(confirm)
	}

	return a.render(a.controller.ApplyProfile(ctx, form))
}

func (a *App) Reset(ctx context.Context) error {
	return a.render(a.controller.ResetProfile(ctx))
}
