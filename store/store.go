// Package store contains thin per-entity data-access helpers over gorm.
// Domain errors (ErrNotFound, ErrDuplicateEmail) are returned as-is so
// handlers can map them to HTTP status codes; anything else is an
// internal failure.
package store

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email is already in use")
	ErrMenuItemRef    = errors.New("order item references unknown menu item")
)
