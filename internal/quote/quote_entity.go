package quote

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusDraft    = "Draft"
	StatusSent     = "Sent"
	StatusAccepted = "Accepted"
	StatusDeclined = "Declined"

	DefaultCurrency = "USD"
)

type Item struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	TaxRate     float64 `json:"tax_rate"`
}

type Quote struct {
	ID          uuid.UUID                 `gorm:"column:id;type:uuid;primaryKey"`
	ContactID   *string                   `gorm:"column:contact_id;type:varchar(64)"`
	CompanyID   *string                   `gorm:"column:company_id;type:varchar(64)"`
	CompanyName *string                   `gorm:"column:company_name;type:varchar(255)"`
	Items       datatypes.JSONSlice[Item] `gorm:"column:items;type:jsonb;not null"`
	Currency    string                    `gorm:"column:currency;type:varchar(8);not null"`
	Status      string                    `gorm:"column:status;type:varchar(16);not null;index"`
	Total       float64                   `gorm:"column:total;not null"`
	PublicToken string                    `gorm:"column:public_token;type:varchar(64);not null;uniqueIndex:uq_quotes_public_token"`
	CreatedBy   string                    `gorm:"column:created_by;type:varchar(64);not null;index:idx_quotes_owner_created,priority:1"`
	CreatedAt   time.Time                 `gorm:"column:created_at;index:idx_quotes_owner_created,priority:2"`
}

func (Quote) TableName() string {
	return "quotes"
}
