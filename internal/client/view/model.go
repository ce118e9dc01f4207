package view

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sessionview/internal/client/models"
)

type State int

const (
	Anonymous State = iota
	Authenticated
	Editing
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case Editing:
		return "editing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Fragment is the panel shown under the header.
type Fragment int

const (
	FragmentNone Fragment = iota
	FragmentRegister
	FragmentRegistered
	FragmentSignIn
	FragmentProfile
)

func (f Fragment) String() string {
	switch f {
	case FragmentRegister:
		return "register"
	case FragmentRegistered:
		return "registered"
	case FragmentSignIn:
		return "signin"
	case FragmentProfile:
		return "profile"
	}
	return "none"
}

// Field is an editable profile field.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPassword
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func ParseField(s string) (Field, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "user_name", "username":
		return FieldName, true
	case "email":
		return FieldEmail, true
	case "password":
		return FieldPassword, true
	}
	return 0, false
}

// Model is the rendered state of the session. It is a value: every
// transition returns a new Model and leaves the receiver untouched.
type Model struct {
	state    State
	identity models.Identity
	fragment Fragment
	message  string

	notice string
	alert  bool

	users      string
	usersShown bool

	active [fieldCount]bool
}

// ForIdentity builds the home view for a resolved identity.
func ForIdentity(identity models.Identity, authenticated bool) Model {
	if !authenticated {
		return Model{state: Anonymous, identity: models.Anonymous()}
	}
	return Model{state: Authenticated, identity: identity}
}

func (m Model) State() State              { return m.state }
func (m Model) Identity() models.Identity { return m.identity }
func (m Model) Fragment() Fragment        { return m.fragment }
func (m Model) Message() string           { return m.message }
func (m Model) Notice() string            { return m.notice }
func (m Model) IsAlert() bool             { return m.alert }
func (m Model) Users() string             { return m.users }
func (m Model) UsersShown() bool          { return m.usersShown }
func (m Model) Active(f Field) bool       { return f >= 0 && f < fieldCount && m.active[f] }
func (m Model) IsAuthenticated() bool     { return m.state != Anonymous }
func (m Model) Greeting() string          { return "Hello " + m.identity.UserName + "!" }

func (m Model) ControlLabel() string {
	if m.IsAuthenticated() {
		return "Sign out"
	}
	return "Sign in"
}

// UsersPanel reports whether the user listing controls are offered at all.
func (m Model) UsersPanel() bool {
	return m.IsAuthenticated() && m.identity.IsSuperuser
}

func (m Model) ShowEnabled() bool { return m.UsersPanel() && !m.usersShown }
func (m Model) HideEnabled() bool { return m.UsersPanel() && m.usersShown }

// ApplyEnabled is true while at least one profile field is being edited.
func (m Model) ApplyEnabled() bool {
	if m.state != Editing {
		return false
	}
	for _, a := range m.active {
		if a {
			return true
		}
	}
	return false
}

// WithFragment switches the panel. Any inline message and edit state are
// reset. The profile panel is only reachable while authenticated.
func (m Model) WithFragment(f Fragment) Model {
	if f == FragmentProfile && !m.IsAuthenticated() {
		f = FragmentNone
	}
	m.fragment = f
	m.message = ""
	m.active = [fieldCount]bool{}

	switch {
	case f == FragmentProfile:
		m.state = Editing
	case m.state == Editing:
		m.state = Authenticated
	}
	return m
}

// WithMessage sets the inline response text of the current panel.
func (m Model) WithMessage(msg string) Model {
	m.message = msg
	return m
}

func (m Model) WithNotice(msg string) Model {
	m.notice = msg
	m.alert = false
	return m
}

// WithAlert sets a blocking notice, drawn highlighted.
func (m Model) WithAlert(msg string) Model {
	m.notice = msg
	m.alert = true
	return m
}

func (m Model) WithoutNotice() Model {
	m.notice = ""
	m.alert = false
	return m
}

func (m Model) WithUsers(listing string) Model {
	if !m.UsersPanel() {
		return m
	}
	m.users = listing
	m.usersShown = true
	return m
}

func (m Model) WithoutUsers() Model {
	m.users = ""
	m.usersShown = false
	return m
}

// BeginEdit activates a field editor and clears the last response message.
// Outside the editing state it is a no-op.
func (m Model) BeginEdit(f Field) Model {
	if m.state != Editing || f < 0 || f >= fieldCount {
		return m
	}
	m.active[f] = true
	m.message = ""
	return m
}

// CancelEdit deactivates a field editor; closing the last one also clears
// the response message.
func (m Model) CancelEdit(f Field) Model {
	if m.state != Editing || f < 0 || f >= fieldCount {
		return m
	}
	m.active[f] = false
	if !m.ApplyEnabled() {
		m.message = ""
	}
	return m
}
