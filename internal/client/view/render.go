package view

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/flosch/pongo2/v6"

	"github.com/dmitrijs2005/sessionview/internal/client/services"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type fieldRow struct {
	Label string
	Value string
	State string
}

// Renderer draws models to out. It is not safe for concurrent use.
type Renderer struct {
	out   io.Writer
	page  *pongo2.Template
	token *pongo2.Template
	now   func() time.Time

	heading *color.Color
	alert   *color.Color
	notice  *color.Color
}

func NewRenderer(out io.Writer) (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}

	set := pongo2.NewSet("view", pongo2.NewFSLoader(sub))
	set.Options.TrimBlocks = true
	set.Options.LStripBlocks = true

	page, err := set.FromFile("page.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	token, err := set.FromFile("token.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse token template: %w", err)
	}

	return &Renderer{
		out:     out,
		page:    page,
		token:   token,
		now:     time.Now,
		heading: color.New(color.FgCyan, color.Bold),
		alert:   color.New(color.FgRed, color.Bold),
		notice:  color.New(color.FgGreen),
	}, nil
}

func (r *Renderer) Render(m Model) error {
	ctx := pongo2.Context{
		"heading":     r.heading.Sprint("=== " + m.Greeting() + " ==="),
		"control":     m.ControlLabel(),
		"commands":    strings.Join(commands(m), ", "),
		"fragment":    m.Fragment().String(),
		"message":     m.Message(),
		"users_panel": m.UsersPanel(),
		"users_shown": m.UsersShown(),
		"users":       strings.TrimRight(m.Users(), "\n"),
		"show":        enabled(m.ShowEnabled()),
		"hide":        enabled(m.HideEnabled()),
		"apply":       enabled(m.ApplyEnabled()),
	}

	if n := m.Notice(); n != "" {
		if m.IsAlert() {
			ctx["notice"] = r.alert.Sprint(n)
		} else {
			ctx["notice"] = r.notice.Sprint(n)
		}
	}

	if m.Fragment() == FragmentProfile {
		id := m.Identity()
		ctx["fields"] = []fieldRow{
			{Label: "name    ", Value: id.UserName, State: editState(m, FieldName)},
			{Label: "email   ", Value: id.Email, State: editState(m, FieldEmail)},
			{Label: "password", Value: "********", State: editState(m, FieldPassword)},
		}
	}

	return r.page.ExecuteWriter(ctx, r.out)
}

// RenderToken prints what the stored token says about itself.
func (r *Renderer) RenderToken(info services.TokenInfo) error {
	ctx := pongo2.Context{
		"jwt":   info.JWT,
		"user":  orDash(info.UserName),
		"email": orDash(info.Email),
	}

	switch {
	case info.ExpiresAt.IsZero():
		ctx["expires"] = "never"
	case info.Expired(r.now()):
		ctx["expires"] = r.alert.Sprint("expired " + humanize.RelTime(info.ExpiresAt, r.now(), "ago", "from now"))
	default:
		ctx["expires"] = humanize.RelTime(info.ExpiresAt, r.now(), "ago", "from now")
	}

	return r.token.ExecuteWriter(ctx, r.out)
}

func commands(m Model) []string {
	if !m.IsAuthenticated() {
		return []string{"signin", "register", "reload", "help"}
	}

	cmds := []string{"signout", "profile"}
	if m.State() == Editing {
		cmds = append(cmds, "edit <field>", "cancel <field>")
		if m.ApplyEnabled() {
			cmds = append(cmds, "apply")
		}
		cmds = append(cmds, "reset")
	}
	if m.ShowEnabled() {
		cmds = append(cmds, "users")
	}
	if m.HideEnabled() {
		cmds = append(cmds, "hide", "toggle <uid>")
	}
	return append(cmds, "whoami", "help")
}

func editState(m Model, f Field) string {
	if m.Active(f) {
		return "editing"
	}
	return "edit"
}

func enabled(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
