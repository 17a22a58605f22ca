package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	availdomain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/timezone"
	"github.com/Ealanisln/vetify-api/internal/usecase/availability"
	"github.com/Ealanisln/vetify-api/internal/validators"
)

type SubmitRequestInput struct {
	Slug       string
	LocationID uint

	Date string
	Time *string

	ContactName  string
	ContactPhone string
	ContactEmail string
	PetName      string
	Notes        string
}

// SubmitRequest takes a booking request from the public channel. It only
// reserves a time once staff confirm it.
type SubmitRequest struct {
	repo     domain.Repository
	resolver *availability.Resolver
	audit    *audit.Dispatcher
}

func NewSubmitRequest(
	repo domain.Repository,
	resolver *availability.Resolver,
	audit *audit.Dispatcher,
) *SubmitRequest {
	return &SubmitRequest{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

func (uc *SubmitRequest) Execute(
	ctx context.Context,
	in SubmitRequestInput,
) (*models.AppointmentRequest, error) {

	scope, err := uc.resolver.Resolve(ctx, availability.Target{
		Channel:    availability.ChannelPublic,
		Slug:       in.Slug,
		LocationID: in.LocationID,
	})
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.ContactName)
	phone := strings.TrimSpace(in.ContactPhone)
	if name == "" || phone == "" {
		return nil, domain.ErrContactRequired
	}
	email := strings.TrimSpace(in.ContactEmail)
	if email != "" && !validators.IsEmail(email) {
		return nil, domain.ErrInvalidEmail
	}

	day, err := timezone.ParseDate(in.Date, scope.TZ)
	if err != nil {
		return nil, availdomain.ErrInvalidDate
	}
	if timezone.BeforeDate(day, scope.Now) {
		return nil, availdomain.ErrPastDateTime
	}

	var preferred *string
	if in.Time != nil && strings.TrimSpace(*in.Time) != "" {
		s, err := resolveSlot(ctx, uc.resolver, scope, in.Date, *in.Time, nil, 0)
		if err != nil {
			return nil, err
		}

		lead := time.Duration(scope.Tenant.MinAdvanceMinutes) * time.Minute
		if s.Start.Before(scope.Now.Add(lead)) {
			return nil, domain.ErrTooSoon
		}

		appts, times, err := uc.resolver.Commitments(ctx, scope, day, nil, nil)
		if err != nil {
			return nil, err
		}
		if ct := availdomain.ConflictFor(s.Start, s.Minutes, appts, times); ct != availdomain.ConflictNone {
			err := availdomain.SlotConflict(ct)
			countConflict(err)
			return nil, err
		}
		preferred = &s.Time
	}

	req := &models.AppointmentRequest{
		TenantID:      scope.Tenant.ID,
		LocationID:    scope.Location.ID,
		PreferredDate: day.Format(timezone.DateLayout),
		PreferredTime: preferred,
		Status:        domain.RequestPending,
		ContactName:   name,
		ContactPhone:  phone,
		ContactEmail:  email,
		PetName:       strings.TrimSpace(in.PetName),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: req.TenantID,
		Action:   "appointment_request_submitted",
		Entity:   "appointment_request",
		EntityID: &req.ID,
	})

	return req, nil
}
