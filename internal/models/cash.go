package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashDrawer is one OPEN/CLOSED session of a physical register.
// At most one OPEN drawer per (tenant, location); see db.Migrate.
type CashDrawer struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TenantID   uint `gorm:"not null;index" json:"tenant_id"`
	LocationID uint `gorm:"not null;index" json:"location_id"`

	InitialAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"initial_amount"`
	Status        string          `gorm:"size:10;not null" json:"status"`

	OpenedByID uint       `gorm:"not null" json:"opened_by_id"`
	ClosedByID *uint      `json:"closed_by_id"`
	OpenedAt   time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt   *time.Time `json:"closed_at"`

	FinalAmount    *decimal.Decimal `gorm:"type:numeric(12,2)" json:"final_amount"`
	ExpectedAmount *decimal.Decimal `gorm:"type:numeric(12,2)" json:"expected_amount"`
	Difference     *decimal.Decimal `gorm:"type:numeric(12,2)" json:"difference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CashShift is one cashier's working period against an open drawer.
// At most one ACTIVE shift per drawer and per cashier; see db.Migrate.
type CashShift struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	TenantID  uint `gorm:"not null;index" json:"tenant_id"`
	DrawerID  uint `gorm:"not null;index" json:"drawer_id"`
	CashierID uint `gorm:"not null;index" json:"cashier_id"`

	StartingBalance decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"starting_balance"`
	Status          string          `gorm:"size:12;not null" json:"status"`

	StartedAt time.Time  `gorm:"not null" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`

	EndingBalance   *decimal.Decimal `gorm:"type:numeric(12,2)" json:"ending_balance"`
	ExpectedBalance *decimal.Decimal `gorm:"type:numeric(12,2)" json:"expected_balance"`
	Difference      *decimal.Decimal `gorm:"type:numeric(12,2)" json:"difference"`
	HandedOffToID   *uint            `json:"handed_off_to_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CashTransaction is append-only. Amount is always a positive magnitude;
// Type decides the sign.
type CashTransaction struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	TenantID uint  `gorm:"not null;index" json:"tenant_id"`
	DrawerID uint  `gorm:"not null;index:idx_cash_transactions_drawer,priority:1" json:"drawer_id"`
	ShiftID  *uint `gorm:"index" json:"shift_id"`

	Type        string          `gorm:"size:20;not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description"`

	CreatedByID *uint     `json:"created_by_id"`
	CreatedAt   time.Time `gorm:"index:idx_cash_transactions_drawer,priority:2" json:"created_at"`
}
