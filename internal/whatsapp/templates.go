package whatsapp

import (
	"fmt"
	"strings"

	"github.com/dheighten/laundryapi/internal/domain"
	apperrors "github.com/dheighten/laundryapi/pkg/errors"
	"github.com/dheighten/laundryapi/pkg/money"
)

// NotProvided is the literal placeholder for missing contact details.
// Fields are never omitted from a message, only substituted.
const NotProvided = "Not provided"

// Templates renders the outbound chat messages. Output is deterministic:
// identical inputs produce byte-identical text.
type Templates struct {
	businessName string
	formatter    *money.Formatter
}

// NewTemplates creates a template renderer for the given business name
func NewTemplates(businessName string, formatter *money.Formatter) *Templates {
	return &Templates{
		businessName: businessName,
		formatter:    formatter,
	}
}

// OrderMessage renders the itemized order message: one bullet per active
// line in the order supplied, the total (suffixed with "(Express)" for
// express orders) and the customer's contact block.
func (t *Templates) OrderMessage(lines []domain.QuoteLine, total int64, isExpress bool, customer domain.Customer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s! 👋\n\n", t.businessName)
	b.WriteString("I'd like to place a laundry order:\n\n")
	b.WriteString("*Items:*\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "• %s x%d = %s\n", line.Name, line.Quantity, t.formatter.Format(line.LineTotal))
	}

	fmt.Fprintf(&b, "\n*Total:* %s", t.formatter.Format(total))
	if isExpress {
		b.WriteString(" (Express)")
	}

	b.WriteString("\n\n*My Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", orPlaceholder(customer.Name))
	fmt.Fprintf(&b, "Phone: %s\n", orPlaceholder(customer.Phone))
	if customer.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", customer.Address)
	}

	b.WriteString("\nPlease confirm availability. Thank you!")
	return b.String()
}

// InquiryMessage renders the fixed template for a non-itemized contact flow
func (t *Templates) InquiryMessage(kind domain.InquiryKind, customer domain.Customer) (string, error) {
	switch kind {
	case domain.InquiryGeneral:
		return fmt.Sprintf("Hi %s! I'd like to inquire about your laundry services.", t.businessName), nil
	case domain.InquiryMonthlyPlan:
		return t.contactMessage("I'm interested in your monthly laundry plans.", "Please share more details. Thank you!", customer), nil
	case domain.InquiryCleaning:
		return t.contactMessage("I'd like to inquire about your cleaning services.", "Please let me know the options available. Thank you!", customer), nil
	case domain.InquiryCallback:
		return t.contactMessage("I'd like to request a callback.", "Please call me at your earliest convenience. Thank you!", customer), nil
	default:
		return "", &apperrors.ErrValidation{Field: "kind", Message: fmt.Sprintf("unknown inquiry kind %q", kind)}
	}
}

func (t *Templates) contactMessage(intro, closing string, customer domain.Customer) string {
	return fmt.Sprintf(
		"Hi %s! %s\n\nName: %s\nPhone: %s\n\n%s",
		t.businessName, intro,
		orPlaceholder(customer.Name), orPlaceholder(customer.Phone),
		closing,
	)
}

func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotProvided
	}
	return value
}
