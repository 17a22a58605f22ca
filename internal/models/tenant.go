package models

import "time"

// Tenant is a clinic account. Every other record hangs off a tenant.
type Tenant struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Timezone             string `gorm:"size:64" json:"timezone"`
	PublicBookingEnabled bool   `gorm:"not null" json:"public_booking_enabled"`
	MinAdvanceMinutes    int    `gorm:"not null" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Location struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	TenantID  uint   `gorm:"not null;index" json:"tenant_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Address   string `gorm:"size:255" json:"address"`
	IsPrimary bool   `gorm:"not null" json:"is_primary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Staff struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `gorm:"not null;index" json:"tenant_id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100" json:"email"`
	Role     string `gorm:"size:30;not null" json:"role"`
	Active   bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
