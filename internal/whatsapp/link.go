package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/dheighten/laundryapi/pkg/errors"
)

const baseURL = "https://wa.me"

// LinkBuilder builds deep links that open a chat with the business with the
// given text pre-filled.
type LinkBuilder struct {
	number string
}

// NewLinkBuilder creates a link builder for the business WhatsApp number
// (digits only, international format without the plus sign).
func NewLinkBuilder(number string) *LinkBuilder {
	return &LinkBuilder{number: number}
}

// Build encodes the message into a wa.me link. Percent-decoding the text
// query parameter reproduces the message byte for byte, newlines, bullets
// and currency symbol included.
func (b *LinkBuilder) Build(message string) (string, error) {
	if b.number == "" {
		return "", &apperrors.ErrValidation{Field: "whatsapp number", Message: "not configured"}
	}
	if message == "" {
		return "", &apperrors.ErrValidation{Field: "message", Message: "must not be empty"}
	}
	return fmt.Sprintf("%s/%s?text=%s", baseURL, b.number, encodeText(message)), nil
}

// encodeText matches encodeURIComponent: QueryEscape uses '+' for spaces,
// which some chat clients keep literal, so rewrite them to %20.
func encodeText(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
