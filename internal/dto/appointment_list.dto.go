package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	StaffID         *uint     `json:"staff_id"`
	PetID           uint      `json:"pet_id"`
	Reason          string    `json:"reason"`
}
