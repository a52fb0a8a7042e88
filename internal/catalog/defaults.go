package catalog

import "github.com/dheighten/laundryapi/internal/domain"

// Default returns the built-in catalog: the published price list and the
// monthly plans the business offers. Used when no file or database source
// is configured.
func Default() *Catalog {
	c, err := New(defaultItems(), defaultPlans())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: "coloured-top", Name: "Coloured Top", UnitPrice: 300, Category: "Tops"},
		{ID: "white-top", Name: "White Top", UnitPrice: 400, Category: "Tops"},
		{ID: "coloured-shirt", Name: "Coloured Shirt", UnitPrice: 400, Category: "Tops"},
		{ID: "white-shirt", Name: "White Shirt", UnitPrice: 500, Category: "Tops"},
		{ID: "sweat-shirt", Name: "Sweat Shirt", UnitPrice: 400, Category: "Tops"},
		{ID: "denim-trouser", Name: "Denim/Jean Trouser", UnitPrice: 500, Category: "Bottoms"},
		{ID: "joggers", Name: "Joggers", UnitPrice: 400, Category: "Bottoms"},
		{ID: "kaftan-coloured", Name: "Kaftan (Coloured)", UnitPrice: 800, Category: "Special"},
		{ID: "kaftan-white", Name: "Kaftan (White)", UnitPrice: 1000, Category: "Special"},
		{ID: "gown", Name: "Gown", UnitPrice: 500, Category: "Special"},
		{ID: "garment", Name: "Garment", UnitPrice: 1500, Category: "Special"},
		{ID: "wedding-gown", Name: "Wedding Gown", UnitPrice: 5000, Category: "Special"},
		{ID: "bedspread", Name: "Bedspread Only", UnitPrice: 500, Category: "Bedding"},
		{ID: "bedspread-pillow", Name: "Bedspread & Pillow Cases", UnitPrice: 700, Category: "Bedding"},
		{ID: "duvet", Name: "Duvet Only", UnitPrice: 1000, Category: "Bedding"},
		{ID: "duvet-family", Name: "Duvet Only (Family Size)", UnitPrice: 1500, Category: "Bedding"},
		{ID: "complete-duvet", Name: "Complete Duvet", UnitPrice: 1500, Category: "Bedding"},
		{ID: "complete-duvet-family", Name: "Complete Duvet (Family Size)", UnitPrice: 3000, Category: "Bedding"},
		{ID: "socks", Name: "Socks (Pair)", UnitPrice: 300, Category: "Accessories"},
		{ID: "towel-small", Name: "Towel (Small)", UnitPrice: 300, Category: "Accessories"},
		{ID: "towel-large", Name: "Towel (Large)", UnitPrice: 400, Category: "Accessories"},
	}
}

func defaultPlans() []domain.MonthlyPlan {
	return []domain.MonthlyPlan{
		{Name: "Basic (Wash & Fold)", Description: "Up to 20 items per month", Price: "₦8,500/month"},
		{Name: "Standard (Full Laundry)", Description: "Up to 20 items — wash, iron & fold", Price: "₦15,999/month"},
		{Name: "Premium", Description: "Up to 40 items — full laundry + special care", Price: "₦28,999/month"},
		{Name: "Family Plan", Description: "Unlimited items for the whole family", Price: "Contact for quote"},
	}
}
