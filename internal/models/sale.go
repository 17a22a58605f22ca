package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale and SalePayment are owned by billing; the cash ledger only reads them.
type Sale struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	TenantID   uint            `gorm:"not null;index" json:"tenant_id"`
	LocationID uint            `gorm:"not null;index" json:"location_id"`
	DrawerID   *uint           `gorm:"index" json:"drawer_id"`
	Status     string          `gorm:"size:20;not null" json:"status"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`

	Payments []SalePayment `json:"payments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SalePayment struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	SaleID uint            `gorm:"not null;index" json:"sale_id"`
	Method string          `gorm:"size:20;not null" json:"method"`
	Amount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}
