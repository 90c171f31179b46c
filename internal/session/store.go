// Package session maps opaque tokens to logged-in user snapshots. The token
// travels in a cookie; the snapshot never leaves the server. Snapshots are
// copies taken at login time, not live references to the registration
// collection.
package session

import (
	"context"
	"errors"

	"movie-catalog/internal/model"
)

// CookieName is the cookie that carries the opaque session token.
const CookieName = "session_id"

// ErrNoSession is returned by Get when the token is unknown or expired and
// by Destroy when there is nothing to destroy.
var ErrNoSession = errors.New("session not found")

// Store is the session backend injected into middleware and handlers.
type Store interface {
	// Create starts a session for the user and returns its opaque token.
	Create(ctx context.Context, u model.User) (string, error)
	// Get resolves a token to the user snapshot stored at login.
	Get(ctx context.Context, token string) (model.User, error)
	// Destroy invalidates the token unconditionally.
	Destroy(ctx context.Context, token string) error
}
