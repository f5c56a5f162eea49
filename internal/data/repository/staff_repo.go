package repository

import (
	"context"
	"fmt"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StaffRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error)
	FindByUsername(ctx context.Context, username string) (*entity.StaffUser, error)
}

type staffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStaffRepository(db database.PgxIface, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM staff_users
		WHERE id = $1
	`

	var user entity.StaffUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find staff user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (r *staffRepository) FindByUsername(ctx context.Context, username string) (*entity.StaffUser, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM staff_users
		WHERE username = $1
	`

	var user entity.StaffUser
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find staff user by username %s: %w", username, err)
	}

	return &user, nil
}
