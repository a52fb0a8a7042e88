package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/domain"
	"github.com/dheighten/laundryapi/internal/whatsapp"
	apperrors "github.com/dheighten/laundryapi/pkg/errors"
)

type InquiryService struct {
	templates *whatsapp.Templates
	links     *whatsapp.LinkBuilder
	logger    *zap.Logger
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(templates *whatsapp.Templates, links *whatsapp.LinkBuilder, logger *zap.Logger) *InquiryService {
	return &InquiryService{
		templates: templates,
		links:     links,
		logger:    logger,
	}
}

// BuildInquiry renders the fixed message for an inquiry kind and its deep link
func (s *InquiryService) BuildInquiry(req InquiryRequest) (message, link string, err error) {
	kind := domain.InquiryKind(req.Kind)
	if !kind.IsValid() {
		return "", "", &apperrors.ErrValidation{
			Field:   "kind",
			Message: fmt.Sprintf("unknown inquiry kind %q", req.Kind),
		}
	}

	customer := domain.Customer{
		Name:  req.Customer.Name,
		Phone: req.Customer.Phone,
	}
	message, err = s.templates.InquiryMessage(kind, customer)
	if err != nil {
		return "", "", err
	}

	link, err = s.links.Build(message)
	if err != nil {
		return "", "", err
	}
	return message, link, nil
}
