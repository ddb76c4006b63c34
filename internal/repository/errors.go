// Package repository holds the database access layer.  This file defines
// sentinel errors reused across repositories so handlers can map failure
// scenarios onto HTTP statuses without string matching.
package repository

import "errors"

// ErrNotFound is returned when a row lookup or a targeted update matches
// nothing.  Handlers translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource it may not touch, such as deleting the seed administrator.
// Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")
