package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/config"
	"github.com/dheighten/laundryapi/internal/domain"
)

// NewConnection opens a database connection
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

type catalogRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB, logger *zap.Logger) *catalogRepository {
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// ListItems returns all active catalog items in display order
func (r *catalogRepository) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	query := `
		SELECT id, name, unit_price, category
		FROM catalog_items
		WHERE is_active = true
		ORDER BY sort_order, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query catalog items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.UnitPrice, &item.Category); err != nil {
			r.logger.Error("Failed to scan catalog item", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
