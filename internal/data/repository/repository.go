package repository

import (
	"github.com/nopasawa/Suki/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Table   TableRepository
	Order   OrderRepository
	Menu    MenuRepository
	Staff   StaffRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Table:   NewTableRepository(db, log),
		Order:   NewOrderRepository(db, log),
		Menu:    NewMenuRepository(db, log),
		Staff:   NewStaffRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
