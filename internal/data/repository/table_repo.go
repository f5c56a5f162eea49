package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	FindByID(ctx context.Context, tableID string) (*entity.Table, error)
	FindAll(ctx context.Context) ([]*entity.Table, error)
	MarkExpired(ctx context.Context, cutoff time.Time) (int64, error)
	Delete(ctx context.Context, tableID string) error
}

type tableRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTableRepository(db database.PgxIface, log *zap.Logger) TableRepository {
	return &tableRepository{
		db:  db,
		log: log.With(zap.String("repository", "table")),
	}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	query := `
		INSERT INTO tables (table_id, adults, children, start_time, end_time, total_price, status, qr_code_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		table.TableID,
		table.Adults,
		table.Children,
		table.StartTime,
		table.EndTime,
		table.TotalPrice,
		table.Status,
		table.QRCodePath,
	)

	if err != nil {
		// The primary key on table_id is the backstop against two
		// bookings racing for the same table.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("create occupancy %s: %w", table.TableID, ErrTableUnavailable)
		}

		r.log.Error("Failed to create occupancy",
			zap.Error(err),
			zap.String("table_id", table.TableID),
		)
		return fmt.Errorf("create occupancy %s: %w", table.TableID, err)
	}

	return nil
}

func (r *tableRepository) FindByID(ctx context.Context, tableID string) (*entity.Table, error) {
	query := `
		SELECT table_id, adults, children, start_time, end_time, total_price, status, qr_code_path
		FROM tables
		WHERE table_id = $1
	`

	var table entity.Table
	err := r.db.QueryRow(ctx, query, tableID).Scan(
		&table.TableID,
		&table.Adults,
		&table.Children,
		&table.StartTime,
		&table.EndTime,
		&table.TotalPrice,
		&table.Status,
		&table.QRCodePath,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find occupancy",
			zap.Error(err),
			zap.String("table_id", tableID),
		)
		return nil, fmt.Errorf("find occupancy %s: %w", tableID, err)
	}

	return &table, nil
}

func (r *tableRepository) FindAll(ctx context.Context) ([]*entity.Table, error) {
	query := `
		SELECT table_id, adults, children, start_time, end_time, total_price, status, qr_code_path
		FROM tables
		ORDER BY table_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list occupancies", zap.Error(err))
		return nil, fmt.Errorf("list occupancies: %w", err)
	}
	defer rows.Close()

	var tables []*entity.Table
	for rows.Next() {
		var table entity.Table
		err := rows.Scan(
			&table.TableID,
			&table.Adults,
			&table.Children,
			&table.StartTime,
			&table.EndTime,
			&table.TotalPrice,
			&table.Status,
			&table.QRCodePath,
		)
		if err != nil {
			r.log.Error("Failed to scan occupancy row", zap.Error(err))
			return nil, fmt.Errorf("scan occupancy row: %w", err)
		}
		tables = append(tables, &table)
	}

	return tables, nil
}

// MarkExpired flips every active row whose window closed before cutoff
// to expired. Safe to run on every read; rows already expired are not
// touched, so a second sweep is a no-op.
func (r *tableRepository) MarkExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE tables SET status = $2 WHERE status = $3 AND end_time < $1`

	result, err := r.db.Exec(ctx, query, cutoff, entity.TableStatusExpired, entity.TableStatusActive)
	if err != nil {
		r.log.Error("Failed to run expiry sweep",
			zap.Error(err),
			zap.Time("cutoff", cutoff),
		)
		return 0, fmt.Errorf("expiry sweep: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *tableRepository) Delete(ctx context.Context, tableID string) error {
	query := `DELETE FROM tables WHERE table_id = $1`

	result, err := r.db.Exec(ctx, query, tableID)
	if err != nil {
		r.log.Error("Failed to delete occupancy",
			zap.Error(err),
			zap.String("table_id", tableID),
		)
		return fmt.Errorf("delete occupancy %s: %w", tableID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete occupancy %s: %w", tableID, ErrTableNotFound)
	}

	return nil
}
