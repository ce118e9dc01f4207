// Package cli provides the interactive sessionview command-line client.
//
// It wires configuration, local token storage, the HTTP auth client and the
// session controller behind a small REPL. On start the stored token is
// resolved and the matching view is drawn; every command then prompts for
// what it needs, hands it to the controller and redraws the view.
//
// Commands:
//   - register, signin | login, signout | logout, reload, whoami
//   - profile, edit <field>, cancel <field>, apply, reset
//   - users, hide, toggle <uid>   (superusers only)
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is cancelled.
package cli
