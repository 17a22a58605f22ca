package appointment

import (
	"context"
	"time"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		now:   utcClock(now),
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	tenantID uint,
	staffID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	return applyTransition(ctx, uc.repo, uc.audit, tenantID, appointmentID, staffID, "appointment_completed",
		func(ap *models.Appointment) error {
			return domain.Complete(ap, uc.now())
		})
}

type MarkNoShow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	tenantID uint,
	staffID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	return applyTransition(ctx, uc.repo, uc.audit, tenantID, appointmentID, staffID, "appointment_no_show",
		domain.MarkNoShow)
}
