package entity

import (
	"time"
)

type TableStatus string

const (
	TableStatusActive  TableStatus = "active"
	TableStatusExpired TableStatus = "expired"
)

// Table is one occupancy row. A table id is either absent (free) or
// present exactly once (occupied). Checkout deletes the row, so there
// is no checked_out status.
type Table struct {
	TableID    string      `db:"table_id"`
	Adults     int         `db:"adults"`
	Children   int         `db:"children"`
	StartTime  time.Time   `db:"start_time"`
	EndTime    time.Time   `db:"end_time"`
	TotalPrice float64     `db:"total_price"`
	Status     TableStatus `db:"status"`
	QRCodePath string      `db:"qr_code_path"`
}

// Expired reports whether the occupancy window has passed at the given
// instant. Only active rows flip; an expired row stays expired.
func (t *Table) Expired(now time.Time) bool {
	return t.Status == TableStatusActive && t.EndTime.Before(now)
}
