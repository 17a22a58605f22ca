package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/models"
)

// applyTransition loads the appointment, applies change and stores it only
// if nobody changed its status in between.
func applyTransition(
	ctx context.Context,
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	tenantID, appointmentID, by uint,
	action string,
	change func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointment(ctx, tenantID, appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	from := ap.Status
	if err := change(ap); err != nil {
		return nil, err
	}

	if err := repo.UpdateStatus(ctx, ap, from); err != nil {
		return nil, err
	}

	dispatcher.Dispatch(audit.Event{
		TenantID: tenantID,
		StaffID:  &by,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": from, "to": ap.Status},
	})

	return ap, nil
}

func utcClock(now func() time.Time) func() time.Time {
	if now == nil {
		now = time.Now
	}
	return func() time.Time { return now().UTC() }
}
