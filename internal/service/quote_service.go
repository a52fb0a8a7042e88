package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/catalog"
	"github.com/dheighten/laundryapi/internal/domain"
	"github.com/dheighten/laundryapi/internal/rules"
	"github.com/dheighten/laundryapi/internal/whatsapp"
	apperrors "github.com/dheighten/laundryapi/pkg/errors"
	"github.com/dheighten/laundryapi/pkg/money"
)

type QuoteService struct {
	catalog       *catalog.Catalog
	templates     *whatsapp.Templates
	links         *whatsapp.LinkBuilder
	rules         *rules.Engine // nil when no rule pack is configured
	formatter     *money.Formatter
	markupPercent int
	logger        *zap.Logger
}

// NewQuoteService creates a new quote service. markupPercent is the express
// surcharge as a percentage of the subtotal.
func NewQuoteService(
	cat *catalog.Catalog,
	templates *whatsapp.Templates,
	links *whatsapp.LinkBuilder,
	ruleEngine *rules.Engine,
	formatter *money.Formatter,
	markupPercent int,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		catalog:       cat,
		templates:     templates,
		links:         links,
		rules:         ruleEngine,
		formatter:     formatter,
		markupPercent: markupPercent,
		logger:        logger,
	}
}

// ComputeQuote prices a selection. Zero-quantity lines are filtered out; an
// empty or all-zero selection is valid and yields a zero total with no
// active lines. The express markup is set only when the request is express,
// rounded half-up to the nearest whole currency unit.
func (s *QuoteService) ComputeQuote(req QuoteRequest) (*domain.Quote, error) {
	lines := make([]domain.QuoteLine, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		if lineReq.Quantity < 0 {
			return nil, &apperrors.ErrValidation{
				Field:   "quantity",
				Message: fmt.Sprintf("must not be negative for item %q", lineReq.ItemID),
			}
		}
		if lineReq.Quantity == 0 {
			continue
		}

		item, err := s.catalog.Get(lineReq.ItemID)
		if err != nil {
			return nil, err
		}

		lines = append(lines, domain.QuoteLine{
			ItemID:    item.ID,
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
			Quantity:  lineReq.Quantity,
			LineTotal: item.UnitPrice * int64(lineReq.Quantity),
		})
	}

	var subtotal int64
	for _, line := range lines {
		subtotal += line.LineTotal
	}

	quote := &domain.Quote{
		ID:        uuid.New(),
		Lines:     lines,
		IsExpress: req.IsExpress,
		Subtotal:  subtotal,
		Customer: domain.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		CreatedAt: time.Now().UTC(),
	}

	total := subtotal
	if req.IsExpress {
		markup := percentOf(subtotal, int64(s.markupPercent))
		quote.ExpressMarkup = &markup
		total += markup
	}

	if s.rules != nil {
		rule, err := s.rules.Match(quoteFacts(quote, total))
		if err != nil {
			return nil, err
		}
		if rule != nil {
			discount := percentOf(subtotal, int64(rule.DiscountPercent))
			if discount > total {
				discount = total
			}
			quote.Discount = &discount
			quote.AppliedRuleID = rule.ID
			total -= discount
		}
	}

	quote.Total = total
	quote.FormattedTotal = s.formatter.Format(total)
	return quote, nil
}

// QuoteMessage renders the order message and deep link for a computed quote.
// An empty selection is refused so callers never hand out a degenerate link.
func (s *QuoteService) QuoteMessage(quote *domain.Quote) (message, link string, err error) {
	if len(quote.Lines) == 0 {
		return "", "", &apperrors.ErrEmptySelection{}
	}

	message = s.templates.OrderMessage(quote.Lines, quote.Total, quote.IsExpress, quote.Customer)
	link, err = s.links.Build(message)
	if err != nil {
		return "", "", err
	}
	return message, link, nil
}

// percentOf applies an integer percentage rounded half-up to the nearest
// whole currency unit. Inputs are never negative.
func percentOf(amount, percent int64) int64 {
	return (amount*percent + 50) / 100
}

func quoteFacts(quote *domain.Quote, total int64) map[string]any {
	var quantity int
	for _, line := range quote.Lines {
		quantity += line.Quantity
	}
	return map[string]any{
		"subtotal":   quote.Subtotal,
		"total":      total,
		"is_express": quote.IsExpress,
		"item_count": len(quote.Lines),
		"quantity":   quantity,
	}
}
