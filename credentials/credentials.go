// Package credentials persists the small client-held identity record that
// route guards and UI code read. Two interchangeable backings exist: an
// ephemeral per-process session store and a signed cookie file with a
// 30-day expiry. Malformed stored data is treated as absent and purged.
package credentials

import "restaurant-orders-api/models"

// Record is the identity snapshot saved after login. It is not a
// cryptographic token; the server never re-validates it.
type Record struct {
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      models.Role `json:"role"`
}

// Store persists a single credentials record.
type Store interface {
	// Load returns the stored record, or ok=false when nothing valid is
	// stored.
	Load() (rec *Record, ok bool)
	Save(rec Record) error
	Clear()
}
