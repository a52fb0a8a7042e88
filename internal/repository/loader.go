package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/catalog"
	"github.com/dheighten/laundryapi/internal/config"
	"github.com/dheighten/laundryapi/internal/repository/postgres"
	"github.com/dheighten/laundryapi/internal/repository/yamlfile"
)

// LoadCatalog loads the catalog from the configured source. The catalog is
// read once; callers treat it as immutable for the process lifetime.
func LoadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case "file":
		return yamlfile.LoadCatalog(cfg.Catalog.FilePath)
	case "postgres":
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		repo := postgres.NewCatalogRepository(db, logger)
		items, err := repo.ListItems(ctx)
		if err != nil {
			return nil, err
		}
		// Plans are marketing copy, not priced entities; the database only
		// manages items.
		return catalog.New(items, catalog.Default().Plans())
	default:
		return catalog.Default(), nil
	}
}
