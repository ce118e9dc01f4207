package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sessionview/internal/client/view"
)

func (a *App) getStatus() string {
	m := a.controller.Model()
	s := m.Identity().UserName
	if m.State() == view.Editing {
		s += " editing"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, draws the view for the stored session and runs the
// REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	a.log.Info(ctx, "starting session", "server", a.config.ServerURL)
	fmt.Fprintln(a.out, "Welcome to sessionview (type 'help' for commands)")

	if err := a.Reload(ctx); err != nil {
		a.log.Error(ctx, "initial render failed", "error", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
