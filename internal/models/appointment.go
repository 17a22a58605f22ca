package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TenantID   uint  `gorm:"not null;index:idx_appointments_day,priority:1" json:"tenant_id"`
	LocationID uint  `gorm:"not null;index:idx_appointments_day,priority:2" json:"location_id"`
	StaffID    *uint `gorm:"index" json:"staff_id"`
	PetID      uint  `gorm:"not null" json:"pet_id"`

	StartsAt        time.Time `gorm:"not null;index:idx_appointments_day,priority:3" json:"starts_at"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	Status string `gorm:"size:20;not null" json:"status"`
	Reason string `gorm:"size:255" json:"reason"`

	CreatedByStaffID *uint      `json:"created_by_staff_id"`
	CancelledAt      *time.Time `json:"cancelled_at"`
	CompletedAt      *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// AppointmentRequest is an unconfirmed booking from the public channel.
// PreferredDate is "YYYY-MM-DD" and PreferredTime "HH:MM" in tenant-local time.
type AppointmentRequest struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TenantID   uint `gorm:"not null;index:idx_appointment_requests_date,priority:1" json:"tenant_id"`
	LocationID uint `gorm:"not null" json:"location_id"`

	PreferredDate string  `gorm:"size:10;not null;index:idx_appointment_requests_date,priority:2" json:"preferred_date"`
	PreferredTime *string `gorm:"size:5" json:"preferred_time"`

	Status string `gorm:"size:20;not null" json:"status"`

	ContactName  string `gorm:"size:100;not null" json:"contact_name"`
	ContactPhone string `gorm:"size:20;not null" json:"contact_phone"`
	ContactEmail string `gorm:"size:100" json:"contact_email"`
	PetName      string `gorm:"size:100" json:"pet_name"`
	Notes        string `gorm:"size:500" json:"notes"`

	AppointmentID *uint `json:"appointment_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
