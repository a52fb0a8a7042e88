package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/service"
	apperrors "github.com/dheighten/laundryapi/pkg/errors"
)

// InquiryResponse represents the inquiry response
type InquiryResponse struct {
	Kind        string `json:"kind"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// HandleCreateInquiry handles POST /v1/inquiries
func HandleCreateInquiry(inquiries *service.InquiryService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.InquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		message, link, err := inquiries.BuildInquiry(req)
		if err != nil {
			if _, ok := err.(*apperrors.ErrValidation); ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to build inquiry", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, InquiryResponse{
			Kind:        req.Kind,
			Message:     message,
			WhatsAppURL: link,
		})
	}
}
