package appointment

import (
	"context"
	"time"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   utcClock(now),
	}
}

// Execute cancels on behalf of the client or the clinic, as status says.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	tenantID uint,
	staffID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	if !domain.IsCancellation(status) {
		return nil, domain.ErrInvalidStatus
	}

	return applyTransition(ctx, uc.repo, uc.audit, tenantID, appointmentID, staffID, "appointment_cancelled",
		func(ap *models.Appointment) error {
			return domain.Cancel(ap, status, uc.now())
		})
}
