package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/usecase/availability"
)

type RescheduleInput struct {
	TenantID      uint
	AppointmentID uint

	Date     string
	Time     string
	Duration *int

	By uint
}

type Reschedule struct {
	repo     domain.Repository
	resolver *availability.Resolver
	audit    *audit.Dispatcher
}

func NewReschedule(
	repo domain.Repository,
	resolver *availability.Resolver,
	audit *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.TenantID, in.AppointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	if !domain.IsOpen(ap.Status) {
		return nil, domain.ErrNotOpen
	}

	scope, err := uc.resolver.Resolve(ctx, availability.Target{
		Channel:    availability.ChannelStaff,
		TenantID:   in.TenantID,
		LocationID: ap.LocationID,
	})
	if err != nil {
		return nil, err
	}

	s, err := resolveSlot(ctx, uc.resolver, scope, in.Date, in.Time, in.Duration, ap.DurationMinutes)
	if err != nil {
		return nil, err
	}

	previous := ap.StartsAt
	ap.StartsAt = s.Start.In(time.UTC)
	ap.DurationMinutes = s.Minutes

	if err := uc.repo.RescheduleAppointment(ctx, ap, s.Date, s.Time); err != nil {
		countConflict(err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: ap.TenantID,
		StaffID:  &in.By,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   ap.StartsAt,
		},
	})

	return ap, nil
}
