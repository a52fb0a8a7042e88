package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/service"
	apperrors "github.com/dheighten/laundryapi/pkg/errors"
)

// QuoteResponse represents the quote response
type QuoteResponse struct {
	ID             string              `json:"id"`
	Lines          []QuoteLineResponse `json:"lines"`
	IsExpress      bool                `json:"is_express"`
	Subtotal       int64               `json:"subtotal"`
	ExpressMarkup  *int64              `json:"express_markup,omitempty"`
	Discount       *int64              `json:"discount,omitempty"`
	AppliedRule    string              `json:"applied_rule,omitempty"`
	Total          int64               `json:"total"`
	FormattedTotal string              `json:"formatted_total"`
	Message        string              `json:"message"`
	WhatsAppURL    string              `json:"whatsapp_url"`
	CreatedAt      string              `json:"created_at"`
}

type QuoteLineResponse struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// HandleCreateQuote handles POST /v1/quotes
func HandleCreateQuote(quotes *service.QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		quote, err := quotes.ComputeQuote(req)
		if err != nil {
			switch err.(type) {
			case *apperrors.ErrValidation, *apperrors.ErrNotFound:
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to compute quote", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		message, link, err := quotes.QuoteMessage(quote)
		if err != nil {
			if _, ok := err.(*apperrors.ErrEmptySelection); ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no items selected"})
				return
			}
			logger.Error("Failed to build quote message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		lineResponses := make([]QuoteLineResponse, len(quote.Lines))
		for i, line := range quote.Lines {
			lineResponses[i] = QuoteLineResponse{
				ItemID:    line.ItemID,
				Name:      line.Name,
				Category:  line.Category,
				UnitPrice: line.UnitPrice,
				Quantity:  line.Quantity,
				LineTotal: line.LineTotal,
			}
		}

		c.JSON(http.StatusOK, QuoteResponse{
			ID:             quote.ID.String(),
			Lines:          lineResponses,
			IsExpress:      quote.IsExpress,
			Subtotal:       quote.Subtotal,
			ExpressMarkup:  quote.ExpressMarkup,
			Discount:       quote.Discount,
			AppliedRule:    quote.AppliedRuleID,
			Total:          quote.Total,
			FormattedTotal: quote.FormattedTotal,
			Message:        message,
			WhatsAppURL:    link,
			CreatedAt:      quote.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}
