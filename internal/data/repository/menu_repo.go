package repository

import (
	"context"
	"fmt"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByName(ctx context.Context, name string) (*entity.MenuItem, error)
	FindAll(ctx context.Context) ([]*entity.MenuItem, error)
	Delete(ctx context.Context, name string) error
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

func (r *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, category)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET category = EXCLUDED.category
	`

	_, err := r.db.Exec(ctx, query, item.Name, item.Category)
	if err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("name", item.Name),
		)
		return fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return nil
}

func (r *menuRepository) FindByName(ctx context.Context, name string) (*entity.MenuItem, error) {
	query := `SELECT name, category FROM menu_items WHERE name = $1`

	var item entity.MenuItem
	err := r.db.QueryRow(ctx, query, name).Scan(&item.Name, &item.Category)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find menu item %s: %w", name, err)
	}

	return &item, nil
}

func (r *menuRepository) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	query := `SELECT name, category FROM menu_items ORDER BY category, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list menu items", zap.Error(err))
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		if err := rows.Scan(&item.Name, &item.Category); err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *menuRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM menu_items WHERE name = $1`

	result, err := r.db.Exec(ctx, query, name)
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.String("name", name),
		)
		return fmt.Errorf("delete menu item %s: %w", name, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete menu item %s: %w", name, ErrMenuItemNotFound)
	}

	return nil
}
