package contact

import "time"

type ContactRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	CompanyID   *string `json:"company_id"`
	CompanyName *string `json:"company_name"`
	Status      string  `json:"status" binding:"omitempty,oneof=Prospect Client Negotiation"`
	Notes       *string `json:"notes"`
}

type InteractionRequest struct {
	Type    string     `json:"type" binding:"required,oneof=email call note"`
	Content string     `json:"content" binding:"required"`
	Date    *time.Time `json:"date"`
}

type ListContactsQuery struct {
	Status string `form:"status"`
	Q      string `form:"q"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

type ContactResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        *string       `json:"email"`
	Phone        *string       `json:"phone"`
	CompanyID    *string       `json:"company_id"`
	CompanyName  *string       `json:"company_name"`
	Status       string        `json:"status"`
	Notes        *string       `json:"notes"`
	Interactions []Interaction `json:"interactions,omitempty"`
	CreatedBy    string        `json:"created_by,omitempty"`
	CreatedAt    *time.Time    `json:"created_at,omitempty"`
	UpdatedAt    *time.Time    `json:"updated_at,omitempty"`
}

type ImportResult struct {
	Inserted int `json:"inserted"`
}
