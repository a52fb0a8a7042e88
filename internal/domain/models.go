package domain

import (
	"time"

	"github.com/google/uuid"
)

// CatalogItem represents one orderable laundry item. Prices are whole naira;
// the catalog never deals in fractional units.
type CatalogItem struct {
	ID        string
	Name      string
	UnitPrice int64
	Category  string
}

// MonthlyPlan represents a subscription plan shown alongside the catalog.
// Plans are quoted over chat, not priced by the engine.
type MonthlyPlan struct {
	Name        string
	Description string
	Price       string
}

// Customer holds the optional contact details attached to a quote
type Customer struct {
	Name    string
	Phone   string
	Address string
}

// QuoteLine is one active item on a quote, quantity > 0
type QuoteLine struct {
	ItemID    string
	Name      string
	Category  string
	UnitPrice int64
	Quantity  int
	LineTotal int64
}

// Quote represents a computed price breakdown. ExpressMarkup is set only
// when the quote is express; Discount only when an adjustment rule matched.
type Quote struct {
	ID             uuid.UUID
	Lines          []QuoteLine
	IsExpress      bool
	Subtotal       int64
	ExpressMarkup  *int64
	Discount       *int64
	AppliedRuleID  string
	Total          int64
	FormattedTotal string
	Customer       Customer
	CreatedAt      time.Time
}
