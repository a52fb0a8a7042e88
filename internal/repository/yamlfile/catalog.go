package yamlfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dheighten/laundryapi/internal/catalog"
	"github.com/dheighten/laundryapi/internal/domain"
)

type catalogFile struct {
	Items []itemEntry `yaml:"items"`
	Plans []planEntry `yaml:"plans"`
}

type itemEntry struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	UnitPrice int64  `yaml:"unit_price"`
	Category  string `yaml:"category"`
}

type planEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

// LoadCatalog reads a catalog definition from a YAML file
func LoadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	items := make([]domain.CatalogItem, 0, len(file.Items))
	for _, entry := range file.Items {
		items = append(items, domain.CatalogItem{
			ID:        entry.ID,
			Name:      entry.Name,
			UnitPrice: entry.UnitPrice,
			Category:  entry.Category,
		})
	}

	plans := make([]domain.MonthlyPlan, 0, len(file.Plans))
	for _, entry := range file.Plans {
		plans = append(plans, domain.MonthlyPlan{
			Name:        entry.Name,
			Description: entry.Description,
			Price:       entry.Price,
		})
	}

	return catalog.New(items, plans)
}
