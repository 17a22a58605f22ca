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

type ConfirmRequestInput struct {
	TenantID  uint
	RequestID uint

	PetID   uint
	StaffID *uint

	// Time overrides the request's preferred time; required when the
	// request came without one.
	Time     *string
	Duration *int

	By uint
}

type ConfirmRequest struct {
	repo     domain.Repository
	resolver *availability.Resolver
	audit    *audit.Dispatcher
}

func NewConfirmRequest(
	repo domain.Repository,
	resolver *availability.Resolver,
	audit *audit.Dispatcher,
) *ConfirmRequest {
	return &ConfirmRequest{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

// Execute books the request's slot and marks it CONFIRMED atomically.
func (uc *ConfirmRequest) Execute(
	ctx context.Context,
	in ConfirmRequestInput,
) (*models.Appointment, error) {

	req, err := uc.repo.GetRequest(ctx, in.TenantID, in.RequestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestPending {
		return nil, domain.ErrRequestNotPending
	}
	if in.PetID == 0 {
		return nil, domain.ErrPetRequired
	}

	hm := in.Time
	if hm == nil || *hm == "" {
		hm = req.PreferredTime
	}
	if hm == nil || *hm == "" {
		return nil, domain.ErrTimeRequired
	}

	scope, err := uc.resolver.Resolve(ctx, availability.Target{
		Channel:    availability.ChannelStaff,
		TenantID:   in.TenantID,
		LocationID: req.LocationID,
	})
	if err != nil {
		return nil, err
	}

	s, err := resolveSlot(ctx, uc.resolver, scope, req.PreferredDate, *hm, in.Duration, 0)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		TenantID:         req.TenantID,
		LocationID:       req.LocationID,
		StaffID:          in.StaffID,
		PetID:            in.PetID,
		StartsAt:         s.Start.In(time.UTC),
		DurationMinutes:  s.Minutes,
		Status:           domain.StatusConfirmed,
		Reason:           req.Notes,
		CreatedByStaffID: &in.By,
	}

	if err := domain.ResolveRequest(req, domain.RequestConfirmed); err != nil {
		return nil, err
	}
	req.PreferredTime = &s.Time

	if err := uc.repo.ConfirmRequest(ctx, req, ap, s.Date, s.Time); err != nil {
		countConflict(err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: req.TenantID,
		StaffID:  &in.By,
		Action:   "appointment_request_confirmed",
		Entity:   "appointment_request",
		EntityID: &req.ID,
		Metadata: map[string]uint{"appointment_id": ap.ID},
	})

	return ap, nil
}
