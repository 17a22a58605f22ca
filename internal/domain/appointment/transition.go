package appointment

import (
	"time"

	"github.com/Ealanisln/vetify-api/internal/models"
)

// Cancel moves an open appointment to one of the cancelled statuses.
func Cancel(a *models.Appointment, status string, now time.Time) error {
	if !IsCancellation(status) {
		return ErrInvalidStatus
	}
	if !IsOpen(a.Status) {
		return ErrNotOpen
	}
	a.Status = status
	a.CancelledAt = &now
	return nil
}

func Complete(a *models.Appointment, now time.Time) error {
	if !IsOpen(a.Status) {
		return ErrNotOpen
	}
	a.Status = StatusCompleted
	a.CompletedAt = &now
	return nil
}

func MarkNoShow(a *models.Appointment) error {
	if !IsOpen(a.Status) {
		return ErrNotOpen
	}
	a.Status = StatusNoShow
	return nil
}

// ResolveRequest moves a pending request to status.
func ResolveRequest(r *models.AppointmentRequest, status string) error {
	if r.Status != RequestPending {
		return ErrRequestNotPending
	}
	r.Status = status
	return nil
}
