// Package view holds the declarative session view: an immutable Model that
// the controller moves between states, and a Renderer that draws it to the
// terminal with pongo2 templates.
//
// States:
//
//	Anonymous      no valid session; greeting for Guest, "Sign in" control
//	Authenticated  identity resolved; "Sign out" control
//	Editing        authenticated with the profile editor open
//
// Exactly one of Anonymous and Authenticated (Editing included) is shown at
// a time, and it always matches the identity the model was built for.
package view
