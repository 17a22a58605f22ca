package models

import "time"

// BusinessHours is the weekly rule for one location and day of week (0 = Sunday).
// A closed day keeps every time field NULL.
type BusinessHours struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TenantID   uint `gorm:"not null;uniqueIndex:ux_business_hours_day,priority:1" json:"tenant_id"`
	LocationID uint `gorm:"not null;uniqueIndex:ux_business_hours_day,priority:2" json:"location_id"`
	DayOfWeek  int  `gorm:"not null;uniqueIndex:ux_business_hours_day,priority:3" json:"day_of_week"`

	IsOpen       bool    `gorm:"not null" json:"is_open"`
	OpenTime     *string `gorm:"size:5" json:"open_time"`
	CloseTime    *string `gorm:"size:5" json:"close_time"`
	BreakStart   *string `gorm:"size:5" json:"break_start"`
	BreakEnd     *string `gorm:"size:5" json:"break_end"`
	SlotDuration int     `gorm:"not null;default:30" json:"slot_duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessHoursOverride replaces the weekly rule for one calendar date.
type BusinessHoursOverride struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TenantID   uint   `gorm:"not null;uniqueIndex:ux_business_hours_override_date,priority:1" json:"tenant_id"`
	LocationID uint   `gorm:"not null;uniqueIndex:ux_business_hours_override_date,priority:2" json:"location_id"`
	Date       string `gorm:"size:10;not null;uniqueIndex:ux_business_hours_override_date,priority:3" json:"date"`

	IsOpen       bool    `gorm:"not null" json:"is_open"`
	OpenTime     *string `gorm:"size:5" json:"open_time"`
	CloseTime    *string `gorm:"size:5" json:"close_time"`
	BreakStart   *string `gorm:"size:5" json:"break_start"`
	BreakEnd     *string `gorm:"size:5" json:"break_end"`
	SlotDuration int     `gorm:"not null;default:30" json:"slot_duration"`
	Reason       string  `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
