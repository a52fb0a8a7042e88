package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/catalog"
	"github.com/dheighten/laundryapi/internal/rules"
	"github.com/dheighten/laundryapi/internal/whatsapp"
	apperrors "github.com/dheighten/laundryapi/pkg/errors"
	"github.com/dheighten/laundryapi/pkg/money"
)

func newTestService(t *testing.T, markupPercent int, ruleEngine *rules.Engine) *QuoteService {
	t.Helper()
	formatter := money.NewFormatter("₦", "en-NG")
	templates := whatsapp.NewTemplates("D'heighten", formatter)
	links := whatsapp.NewLinkBuilder("2348050766253")
	return NewQuoteService(catalog.Default(), templates, links, ruleEngine, formatter, markupPercent, zap.NewNop())
}

func TestComputeQuoteSingleItem(t *testing.T) {
	svc := newTestService(t, 50, nil)

	quote, err := svc.ComputeQuote(QuoteRequest{
		Lines: []QuoteLineRequest{{ItemID: "coloured-top", Quantity: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1500), quote.Subtotal)
	assert.Nil(t, quote.ExpressMarkup)
	assert.Equal(t, int64(1500), quote.Total)
	assert.Equal(t, "₦1,500", quote.FormattedTotal)
	require.Len(t, quote.Lines, 1)
	assert.Equal(t, int64(1500), quote.Lines[0].LineTotal)
}

func TestComputeQuoteExpress(t *testing.T) {
	svc := newTestService(t, 50, nil)

	quote, err := svc.ComputeQuote(QuoteRequest{
		Lines:     []QuoteLineRequest{{ItemID: "coloured-top", Quantity: 5}},
		IsExpress: true,
	})
	require.NoError(t, err)

	require.NotNil(t, quote.ExpressMarkup)
	assert.Equal(t, int64(750), *quote.ExpressMarkup)
	assert.Equal(t, int64(2250), quote.Total)
	assert.Equal(t, "₦2,250", quote.FormattedTotal)
}

func TestComputeQuoteAllZeroQuantities(t *testing.T) {
	svc := newTestService(t, 50, nil)

	quote, err := svc.ComputeQuote(QuoteRequest{
		Lines: []QuoteLineRequest{
			{ItemID: "coloured-top", Quantity: 0},
			{ItemID: "white-shirt", Quantity: 0},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, quote.Lines)
	assert.Equal(t, int64(0), quote.Subtotal)
	assert.Equal(t, int64(0), quote.Total)
	assert.Nil(t, quote.ExpressMarkup)
}

func TestComputeQuoteExpressWithEmptySelection(t *testing.T) {
	svc := newTestService(t, 50, nil)

	// Express is toggled regardless of subtotal: the markup is present with
	// value zero, not absent.
	quote, err := svc.ComputeQuote(QuoteRequest{IsExpress: true})
	require.NoError(t, err)

	require.NotNil(t, quote.ExpressMarkup)
	assert.Equal(t, int64(0), *quote.ExpressMarkup)
	assert.Equal(t, int64(0), quote.Total)
}

func TestComputeQuoteTwoItems(t *testing.T) {
	svc := newTestService(t, 50, nil)

	quote, err := svc.ComputeQuote(QuoteRequest{
		Lines: []QuoteLineRequest{
			{ItemID: "white-shirt", Quantity: 2},
			{ItemID: "kaftan-white", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), quote.Subtotal)
	assert.Equal(t, int64(2000), quote.Total)
	require.Len(t, quote.Lines, 2)
	// Input order is preserved for message readability
	assert.Equal(t, "white-shirt", quote.Lines[0].ItemID)
	assert.Equal(t, "kaftan-white", quote.Lines[1].ItemID)
}

func TestComputeQuoteZeroLinesAreFiltered(t *testing.T) {
	svc := newTestService(t, 50, nil)

	quote, err := svc.ComputeQuote(QuoteRequest{
		Lines: []QuoteLineRequest{
			{ItemID: "white-shirt", Quantity: 2},
			{ItemID: "gown", Quantity: 0},
			{ItemID: "kaftan-white", Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, quote.Lines, 2)
	assert.Equal(t, int64(2000), quote.Subtotal)
}

func TestComputeQuoteUnknownItem(t *testing.T) {
	svc := newTestService(t, 50, nil)

	_, err := svc.ComputeQuote(QuoteRequest{
		Lines: []QuoteLineRequest{{ItemID: "dry-cleaning", Quantity: 1}},
	})
	var notFound *apperrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestComputeQuoteNegativeQuantity(t *testing.T) {
	svc := newTestService(t, 50, nil)

	_, err := svc.ComputeQuote(QuoteRequest{
		Lines: []QuoteLineRequest{{ItemID: "coloured-top", Quantity: -2}},
	})
	var validation *apperrors.ErrValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "quantity", validation.Field)
}

func TestComputeQuoteIdempotent(t *testing.T) {
	svc := newTestService(t, 50, nil)
	req := QuoteRequest{
		Lines:     []QuoteLineRequest{{ItemID: "wedding-gown", Quantity: 3}},
		IsExpress: true,
	}

	first, err := svc.ComputeQuote(req)
	require.NoError(t, err)
	second, err := svc.ComputeQuote(req)
	require.NoError(t, err)

	assert.Equal(t, first.Subtotal, second.Subtotal)
	assert.Equal(t, *first.ExpressMarkup, *second.ExpressMarkup)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.FormattedTotal, second.FormattedTotal)
}

func TestPercentOfRoundsHalfUp(t *testing.T) {
	assert.Equal(t, int64(750), percentOf(1500, 50))
	assert.Equal(t, int64(50), percentOf(150, 33))  // 49.5 rounds up
	assert.Equal(t, int64(49), percentOf(149, 33))  // 49.17 rounds down
	assert.Equal(t, int64(1), percentOf(1, 50))     // 0.5 rounds up
	assert.Equal(t, int64(0), percentOf(0, 50))
	assert.Equal(t, int64(1500), percentOf(1500, 100))
}

func TestQuoteMessage(t *testing.T) {
	svc := newTestService(t, 50, nil)

	quote, err := svc.ComputeQuote(QuoteRequest{
		Lines:    []QuoteLineRequest{{ItemID: "coloured-top", Quantity: 5}},
		Customer: CustomerInfo{Name: "Aisha"},
	})
	require.NoError(t, err)

	message, link, err := svc.QuoteMessage(quote)
	require.NoError(t, err)

	assert.Contains(t, message, "• Coloured Top x5 = ₦1,500")
	assert.Contains(t, message, "Name: Aisha")
	assert.Contains(t, message, "Phone: Not provided")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, message, u.Query().Get("text"))
}

func TestQuoteMessageEmptySelection(t *testing.T) {
	svc := newTestService(t, 50, nil)

	quote, err := svc.ComputeQuote(QuoteRequest{})
	require.NoError(t, err)

	_, _, err = svc.QuoteMessage(quote)
	var empty *apperrors.ErrEmptySelection
	require.ErrorAs(t, err, &empty)
}

func TestComputeQuoteWithDiscountRule(t *testing.T) {
	pack := &rules.Pack{Rules: []rules.Rule{
		{
			ID:              "bulk-discount",
			When:            map[string]any{">=": []any{map[string]any{"var": "subtotal"}, 10000}},
			DiscountPercent: 5,
		},
	}}
	svc := newTestService(t, 50, rules.NewEngine(pack, zap.NewNop()))

	// 3 wedding gowns: subtotal 15000, discount 750
	quote, err := svc.ComputeQuote(QuoteRequest{
		Lines: []QuoteLineRequest{{ItemID: "wedding-gown", Quantity: 3}},
	})
	require.NoError(t, err)

	require.NotNil(t, quote.Discount)
	assert.Equal(t, int64(750), *quote.Discount)
	assert.Equal(t, "bulk-discount", quote.AppliedRuleID)
	assert.Equal(t, int64(14250), quote.Total)

	// Below the threshold the rule does not apply
	small, err := svc.ComputeQuote(QuoteRequest{
		Lines: []QuoteLineRequest{{ItemID: "coloured-top", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Nil(t, small.Discount)
	assert.Empty(t, small.AppliedRuleID)
	assert.Equal(t, int64(300), small.Total)
}

func TestComputeQuoteDiscountAppliesAfterMarkup(t *testing.T) {
	pack := &rules.Pack{Rules: []rules.Rule{
		{
			ID:              "express-deal",
			When:            map[string]any{"==": []any{map[string]any{"var": "is_express"}, true}},
			DiscountPercent: 10,
		},
	}}
	svc := newTestService(t, 50, rules.NewEngine(pack, zap.NewNop()))

	quote, err := svc.ComputeQuote(QuoteRequest{
		Lines:     []QuoteLineRequest{{ItemID: "coloured-top", Quantity: 5}},
		IsExpress: true,
	})
	require.NoError(t, err)

	// subtotal 1500, markup 750, discount 10% of subtotal = 150
	require.NotNil(t, quote.ExpressMarkup)
	assert.Equal(t, int64(750), *quote.ExpressMarkup)
	require.NotNil(t, quote.Discount)
	assert.Equal(t, int64(150), *quote.Discount)
	assert.Equal(t, int64(2100), quote.Total)
}
