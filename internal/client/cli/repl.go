package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isEditing() bool
	Register(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	Reload(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context, field string) error
	Cancel(ctx context.Context, field string) error
	Apply(ctx context.Context) error
	Reset(ctx context.Context) error
	Users(ctx context.Context) error
	Hide(ctx context.Context) error
	Toggle(ctx context.Context, uid string) error
}

func helpText(loggedIn, editing bool) string {
	switch {
	case editing:
		return "Available commands: edit <name|email|password>, cancel <name|email|password>, apply, reset, profile, users, hide, toggle <uid>, whoami, reload, signout, exit"
	case loggedIn:
		return "Available commands: profile, users, hide, toggle <uid>, whoami, reload, signout, exit"
	default:
		return "Available commands: register, signin, reload, exit"
	}
}

// runREPL starts a simple read–eval–print loop for the sessionview CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that need an argument print their
// usage when it is missing. The loop exits on EOF, when ctx is done, or when
// the user types "exit" or "quit".
//
// Handlers draw their own results; an error they return is printed and the
// loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("sv %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText(a.isLoggedIn(), a.isEditing()))

		case "register":
			cmdErr = a.Register(ctx)

		case "signin", "login":
			cmdErr = a.SignIn(ctx)

		case "signout", "logout":
			cmdErr = a.SignOut(ctx)

		case "reload":
			cmdErr = a.Reload(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit name|email|password")
				continue
			}
			cmdErr = a.Edit(ctx, args[0])

		case "cancel":
			if len(args) == 0 {
				printlnFn("Usage: cancel name|email|password")
				continue
			}
			cmdErr = a.Cancel(ctx, args[0])

		case "apply":
			cmdErr = a.Apply(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "users":
			cmdErr = a.Users(ctx)

		case "hide":
			cmdErr = a.Hide(ctx)

		case "toggle":
			if len(args) == 0 {
				printlnFn("Usage: toggle <uid>")
				continue
			}
			cmdErr = a.Toggle(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
