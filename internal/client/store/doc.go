// Package store persists client-side session state in a local SQLite
// database.
//
// The schema is a single key/value table managed by goose migrations
// (see package migrations). On top of the generic Repository sits
// TokenStore, which keeps the session token under the fixed key
// common.TokenStorageKey: present means the user claims to be signed in,
// absent means anonymous. OpenTokenStore also accepts MemoryPath for a
// session that is never written to disk.
package store
