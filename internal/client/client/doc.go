// Package client talks to the remote authentication service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Identify, Register, SignIn, UpdateProfile, ListUsers, ChangeUserStatus.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     raw session token in the "authorization" header, tags each request with
//     an X-Request-Id and turns non-2xx answers into *ServerError carrying the
//     response text verbatim.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. A *ServerError whose text is
// SessionExpiredMessage matches ErrSessionExpired with errors.Is. Use Message
// to get the user-facing text of any error.
//
// # Contexts
//
// All operations accept context.Context and honor cancellation. No timeout is
// applied unless the HTTPClient is built with one.
package client
