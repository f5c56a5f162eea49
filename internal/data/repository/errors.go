// Package repository defines the sentinel errors shared across the
// record-set repositories and the services above them. Handlers match
// these with errors.Is to pick the HTTP status, so wrapping with
// fmt.Errorf("...: %w", err) must be preserved all the way up.
package repository

import "errors"

// ErrTableUnavailable is returned when an occupancy already exists for
// the requested table id (booking collision).
var ErrTableUnavailable = errors.New("table unavailable")

// ErrTableNotFound is returned on checkout of a table id with no
// occupancy row.
var ErrTableNotFound = errors.New("table not found")

// ErrTableNotActive is returned when an order is submitted against a
// table that is absent or expired.
var ErrTableNotActive = errors.New("table not active")

// ErrOrderNotFound is returned on serve of an unknown order id.
var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidParty is returned when the party size is not positive.
var ErrInvalidParty = errors.New("invalid party size")

// ErrMenuItemNotFound is returned on removal of an unknown menu item.
var ErrMenuItemNotFound = errors.New("menu item not found")
