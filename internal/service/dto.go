package service

// QuoteRequest represents the quote computation payload
type QuoteRequest struct {
	Lines     []QuoteLineRequest `json:"lines" binding:"required"`
	IsExpress bool               `json:"is_express"`
	Customer  CustomerInfo       `json:"customer"`
}

type QuoteLineRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// InquiryRequest represents a non-itemized contact flow payload
type InquiryRequest struct {
	Kind     string       `json:"kind" binding:"required"`
	Customer CustomerInfo `json:"customer"`
}
