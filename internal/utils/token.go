package utils

import "github.com/google/uuid"

// NewSessionToken mints the opaque value stored in the session cookie. The
// token carries no information; it is only a key into the session store.
func NewSessionToken() string {
	return uuid.NewString()
}
