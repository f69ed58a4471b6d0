// Package store contains the SQL for every resource domain. Functions take
// database.DB so handlers and tests can substitute FakeDB.
package store

import "errors"

// ErrNotFound is returned when an update or delete target does not exist.
var ErrNotFound = errors.New("not found")
