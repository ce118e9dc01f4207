package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	editing  bool

	calls []string
}

func (f *fakeExec) record(s string) error {
	f.calls = append(f.calls, s)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isEditing() bool  { return f.editing }

func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) SignIn(context.Context) error {
	f.loggedIn = true
	return f.record("signin")
}
func (f *fakeExec) SignOut(context.Context) error {
	f.loggedIn = false
	return f.record("signout")
}
func (f *fakeExec) Reload(context.Context) error  { return f.record("reload") }
func (f *fakeExec) WhoAmI(context.Context) error  { return f.record("whoami") }
func (f *fakeExec) Profile(context.Context) error { return f.record("profile") }
func (f *fakeExec) Edit(_ context.Context, field string) error {
	return f.record("edit " + field)
}
func (f *fakeExec) Cancel(_ context.Context, field string) error {
	return f.record("cancel " + field)
}
func (f *fakeExec) Apply(context.Context) error { return f.record("apply") }
func (f *fakeExec) Reset(context.Context) error { return f.record("reset") }
func (f *fakeExec) Users(context.Context) error { return f.record("users") }
func (f *fakeExec) Hide(context.Context) error  { return f.record("hide") }
func (f *fakeExec) Toggle(_ context.Context, uid string) error {
	return f.record("toggle " + uid)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"register",
		"login",
		"profile",
		"edit email",
		"cancel email",
		"apply",
		"reset",
		"users",
		"toggle 42",
		"hide",
		"whoami",
		"reload",
		"logout",
		"exit",
		"register",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"register", "signin", "profile", "edit email", "cancel email", "apply",
		"reset", "users", "toggle 42", "hide", "whoami", "reload", "signout",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("edit\ntoggle\nfoobar\nquit\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: edit name|email|password")
	assert.Contains(t, *out, "Usage: toggle <uid>")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_HelpDependsOnState(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nsignin\nhelp\n")))

	assert.Contains(t, *out, helpText(false, false))
	assert.Contains(t, *out, helpText(true, false))
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("reload")))

	assert.Equal(t, []string{"reload"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("reload\n")))

	assert.Empty(t, exec.calls)
}
