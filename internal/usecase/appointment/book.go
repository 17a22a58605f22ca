package appointment

import (
	"context"
	"time"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/usecase/availability"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	TenantID   uint
	LocationID uint
	StaffID    *uint
	PetID      uint

	Date     string
	Time     string
	Duration *int
	Reason   string

	CreatedBy uint
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo     domain.Repository
	resolver *availability.Resolver
	audit    *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	resolver *availability.Resolver,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	if in.PetID == 0 {
		return nil, domain.ErrPetRequired
	}

	scope, err := uc.resolver.Resolve(ctx, availability.Target{
		Channel:    availability.ChannelStaff,
		TenantID:   in.TenantID,
		LocationID: in.LocationID,
	})
	if err != nil {
		return nil, err
	}

	s, err := resolveSlot(ctx, uc.resolver, scope, in.Date, in.Time, in.Duration, 0)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		TenantID:         scope.Tenant.ID,
		LocationID:       scope.Location.ID,
		StaffID:          in.StaffID,
		PetID:            in.PetID,
		StartsAt:         s.Start.In(time.UTC),
		DurationMinutes:  s.Minutes,
		Status:           domain.StatusScheduled,
		Reason:           in.Reason,
		CreatedByStaffID: &in.CreatedBy,
	}

	// the slot may have been taken since it was listed; the store re-checks
	if err := uc.repo.CreateAppointment(ctx, ap, s.Date, s.Time); err != nil {
		countConflict(err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: ap.TenantID,
		StaffID:  &in.CreatedBy,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
