package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/sessionview/internal/client/client"
	"github.com/dmitrijs2005/sessionview/internal/client/config"
	"github.com/dmitrijs2005/sessionview/internal/client/services"
	"github.com/dmitrijs2005/sessionview/internal/client/session"
	"github.com/dmitrijs2005/sessionview/internal/client/store"
	"github.com/dmitrijs2005/sessionview/internal/client/view"
	"github.com/dmitrijs2005/sessionview/internal/logging"
)

type App struct {
	config     *config.Config
	controller *session.Controller
	renderer   *view.Renderer
	log        logging.Logger
	reader     *bufio.Reader
	out        io.Writer
	closeFn    func() error
}

// NewApp opens the token storage at c.StoragePath and wires the HTTP client,
// auth service and session controller. Logs go to stderr, the view to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogLevel, os.Stderr)

	tokens, closeFn, err := store.OpenTokenStore(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing storage", "path", c.StoragePath, "error", err)
		return nil, err
	}
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, log)
	auth := services.NewAuthService(api, tokens, log)

	renderer, err := view.NewRenderer(os.Stdout)
	if err != nil {
		if closeFn != nil {
			_ = closeFn()
		}
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	app := newApp(c, session.NewController(auth, log), renderer, log, bufio.NewReader(os.Stdin), os.Stdout)
	app.closeFn = closeFn
	return app, nil
}

func newApp(c *config.Config, ctrl *session.Controller, r *view.Renderer, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		config:     c,
		controller: ctrl,
		renderer:   r,
		log:        log,
		reader:     reader,
		out:        out,
	}
}

// shutdownGrace bounds how long Run waits for an in-flight command after ctx
// is cancelled.
var shutdownGrace = 2 * time.Second

// Run starts the REPL and blocks until the user leaves or ctx is done. After
// a cancel it waits up to shutdownGrace for Root to return; storage is only
// closed once nothing uses it, otherwise process exit releases it.
func (a *App) Run(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Root(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		finished := true
		select {
		case <-done:
		case <-time.After(shutdownGrace):
			finished = false
		}
		fmt.Fprintln(a.out)
		if !finished {
			a.log.Warn(ctx, "session still busy on shutdown, leaving storage open")
			return
		}
	}
	a.close(ctx)
}

func (a *App) close(ctx context.Context) {
	if a.closeFn == nil {
		return
	}
	if err := a.closeFn(); err != nil {
		a.log.Error(ctx, "error closing storage", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.controller.Model().IsAuthenticated()
}

func (a *App) isEditing() bool {
	return a.controller.Model().State() == view.Editing
}

func (a *App) render(m view.Model) error {
	return a.renderer.Render(m)
}
