package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheighten/laundryapi/internal/domain"
	apperrors "github.com/dheighten/laundryapi/pkg/errors"
	"github.com/dheighten/laundryapi/pkg/money"
)

func newTestTemplates() *Templates {
	return NewTemplates("D'heighten", money.NewFormatter("₦", "en-NG"))
}

func TestOrderMessage(t *testing.T) {
	tpl := newTestTemplates()

	lines := []domain.QuoteLine{
		{Name: "Coloured Top", Quantity: 5, LineTotal: 1500},
	}
	got := tpl.OrderMessage(lines, 1500, false, domain.Customer{Name: "Aisha"})

	want := "Hi D'heighten! 👋\n" +
		"\n" +
		"I'd like to place a laundry order:\n" +
		"\n" +
		"*Items:*\n" +
		"• Coloured Top x5 = ₦1,500\n" +
		"\n" +
		"*Total:* ₦1,500\n" +
		"\n" +
		"*My Details:*\n" +
		"Name: Aisha\n" +
		"Phone: Not provided\n" +
		"\n" +
		"Please confirm availability. Thank you!"
	assert.Equal(t, want, got)
}

func TestOrderMessageExpressSuffix(t *testing.T) {
	tpl := newTestTemplates()

	lines := []domain.QuoteLine{
		{Name: "Coloured Top", Quantity: 5, LineTotal: 1500},
	}
	got := tpl.OrderMessage(lines, 2250, true, domain.Customer{})

	assert.Contains(t, got, "*Total:* ₦2,250 (Express)")
	assert.Contains(t, got, "Name: Not provided")
	assert.Contains(t, got, "Phone: Not provided")
}

func TestOrderMessagePreservesLineOrder(t *testing.T) {
	tpl := newTestTemplates()

	lines := []domain.QuoteLine{
		{Name: "White Shirt", Quantity: 2, LineTotal: 1000},
		{Name: "Kaftan (White)", Quantity: 1, LineTotal: 1000},
	}
	got := tpl.OrderMessage(lines, 2000, false, domain.Customer{})

	assert.Contains(t, got, "*Items:*\n• White Shirt x2 = ₦1,000\n• Kaftan (White) x1 = ₦1,000\n")
}

func TestOrderMessageAddressLine(t *testing.T) {
	tpl := newTestTemplates()

	lines := []domain.QuoteLine{{Name: "Gown", Quantity: 1, LineTotal: 500}}

	withAddress := tpl.OrderMessage(lines, 500, false, domain.Customer{Address: "12 Unity Road, Ilorin"})
	assert.Contains(t, withAddress, "Phone: Not provided\nAddress: 12 Unity Road, Ilorin\n")

	withoutAddress := tpl.OrderMessage(lines, 500, false, domain.Customer{})
	assert.NotContains(t, withoutAddress, "Address:")
}

func TestOrderMessageDeterministic(t *testing.T) {
	tpl := newTestTemplates()

	lines := []domain.QuoteLine{{Name: "Duvet Only", Quantity: 2, LineTotal: 2000}}
	customer := domain.Customer{Name: "Tunde", Phone: "08012345678"}

	first := tpl.OrderMessage(lines, 2000, false, customer)
	second := tpl.OrderMessage(lines, 2000, false, customer)
	assert.Equal(t, first, second)
}

func TestBlankContactRendersPlaceholder(t *testing.T) {
	tpl := newTestTemplates()

	lines := []domain.QuoteLine{{Name: "Gown", Quantity: 1, LineTotal: 500}}
	got := tpl.OrderMessage(lines, 500, false, domain.Customer{Name: "   ", Phone: ""})

	assert.Contains(t, got, "Name: Not provided")
	assert.Contains(t, got, "Phone: Not provided")
}

func TestInquiryMessages(t *testing.T) {
	tpl := newTestTemplates()
	customer := domain.Customer{Name: "Aisha"}

	general, err := tpl.InquiryMessage(domain.InquiryGeneral, customer)
	require.NoError(t, err)
	assert.Equal(t, "Hi D'heighten! I'd like to inquire about your laundry services.", general)

	monthly, err := tpl.InquiryMessage(domain.InquiryMonthlyPlan, customer)
	require.NoError(t, err)
	assert.Equal(t,
		"Hi D'heighten! I'm interested in your monthly laundry plans.\n\nName: Aisha\nPhone: Not provided\n\nPlease share more details. Thank you!",
		monthly)

	cleaning, err := tpl.InquiryMessage(domain.InquiryCleaning, customer)
	require.NoError(t, err)
	assert.Contains(t, cleaning, "inquire about your cleaning services")
	assert.Contains(t, cleaning, "Please let me know the options available. Thank you!")

	callback, err := tpl.InquiryMessage(domain.InquiryCallback, customer)
	require.NoError(t, err)
	assert.Contains(t, callback, "request a callback")
	assert.Contains(t, callback, "Please call me at your earliest convenience. Thank you!")
}

func TestInquiryMessageUnknownKind(t *testing.T) {
	tpl := newTestTemplates()

	_, err := tpl.InquiryMessage(domain.InquiryKind("pickup"), domain.Customer{})
	var validation *apperrors.ErrValidation
	require.ErrorAs(t, err, &validation)
}
