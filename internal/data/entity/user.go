package entity

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	RoleCashier StaffRole = "cashier"
	RoleChef    StaffRole = "chef"
	RoleAdmin   StaffRole = "admin"
)

type StaffUser struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         StaffRole `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}
