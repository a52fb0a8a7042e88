package domain

// InquiryKind identifies a fixed-template chat inquiry
type InquiryKind string

const (
	InquiryGeneral     InquiryKind = "general"
	InquiryMonthlyPlan InquiryKind = "monthly_plan"
	InquiryCleaning    InquiryKind = "cleaning"
	InquiryCallback    InquiryKind = "callback"
)

// IsValid checks if the inquiry kind is one of the known templates
func (k InquiryKind) IsValid() bool {
	switch k {
	case InquiryGeneral, InquiryMonthlyPlan, InquiryCleaning, InquiryCallback:
		return true
	default:
		return false
	}
}
