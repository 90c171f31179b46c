// Package repository provides typed access to the movies and registration
// collections. Sentinel errors defined here let handlers distinguish failure
// scenarios without inspecting driver errors directly.
package repository

import "errors"

// ErrNotFound is returned when an id (or credential pair) does not resolve
// to a document. An id that is not valid ObjectID hex resolves to this as
// well, since such an id can never match a stored document.
var ErrNotFound = errors.New("not found")

// ErrDuplicateUsername is returned when registration collides with an
// existing UserName. The unique index on the collection is the enforcement
// point; this error is the translation of the store's duplicate-key failure.
var ErrDuplicateUsername = errors.New("username already exists")
