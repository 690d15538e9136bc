package quote

import "time"

type ItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unit_price" binding:"required,min=0"`
	Quantity    *float64 `json:"quantity" binding:"omitempty,min=0"`
	TaxRate     *float64 `json:"tax_rate" binding:"omitempty,min=0"`
}

type QuoteRequest struct {
	ContactID   *string       `json:"contact_id"`
	CompanyID   *string       `json:"company_id"`
	CompanyName *string       `json:"company_name"`
	Items       []ItemRequest `json:"items" binding:"required,dive"`
	Currency    string        `json:"currency"`
	Status      string        `json:"status" binding:"omitempty,oneof=Draft Sent Accepted Declined"`
}

type ListQuotesQuery struct {
	Status string `form:"status"`
	Q      string `form:"q"`
}

type QuoteResponse struct {
	ID          string     `json:"id"`
	ContactID   *string    `json:"contact_id"`
	CompanyID   *string    `json:"company_id"`
	CompanyName *string    `json:"company_name"`
	Items       []Item     `json:"items"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	Total       float64    `json:"total"`
	PublicToken string     `json:"public_token"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
