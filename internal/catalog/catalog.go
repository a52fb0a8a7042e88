package catalog

import (
	"fmt"

	"github.com/dheighten/laundryapi/internal/domain"
	apperrors "github.com/dheighten/laundryapi/pkg/errors"
)

// Catalog is the immutable set of orderable items, loaded once at startup.
// Lookup order is preserved from the source so quotes and the catalog
// endpoint list items the way the business published them.
type Catalog struct {
	items []domain.CatalogItem
	byID  map[string]domain.CatalogItem
	plans []domain.MonthlyPlan
}

// New builds a catalog from loaded items and plans
func New(items []domain.CatalogItem, plans []domain.MonthlyPlan) (*Catalog, error) {
	byID := make(map[string]domain.CatalogItem, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %q has an empty id", item.Name)
		}
		if item.Name == "" {
			return nil, fmt.Errorf("catalog item %q has an empty name", item.ID)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("catalog item %q has a negative unit price %d", item.ID, item.UnitPrice)
		}
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		byID[item.ID] = item
	}

	return &Catalog{
		items: append([]domain.CatalogItem(nil), items...),
		byID:  byID,
		plans: append([]domain.MonthlyPlan(nil), plans...),
	}, nil
}

// Get returns the item with the given id
func (c *Catalog) Get(id string) (domain.CatalogItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return domain.CatalogItem{}, &apperrors.ErrNotFound{Resource: "catalog item", ID: id}
	}
	return item, nil
}

// Items returns all items in catalog order
func (c *Catalog) Items() []domain.CatalogItem {
	return append([]domain.CatalogItem(nil), c.items...)
}

// Plans returns the monthly plans in catalog order
func (c *Catalog) Plans() []domain.MonthlyPlan {
	return append([]domain.MonthlyPlan(nil), c.plans...)
}

// Len returns the number of orderable items
func (c *Catalog) Len() int {
	return len(c.items)
}
