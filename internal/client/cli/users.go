package cli

import "context"

func (a *App) Users(ctx context.Context) error {
	return a.render(a.controller.ShowUsers(ctx))
}

func (a *App) Hide(_ context.Context) error {
	return a.render(a.controller.HideUsers())
}

func (a *App) Toggle(ctx context.Context, uid string) error {
	return a.render(a.controller.ToggleUserStatus(ctx, uid))
}
