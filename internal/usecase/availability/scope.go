package availability

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

type Channel string

const (
	ChannelStaff  Channel = "staff"
	ChannelPublic Channel = "public"
)

// Target names the tenant and location a request is about. Staff requests
// carry the tenant id from their token; public requests carry a slug.
// LocationID 0 selects the tenant's primary location.
type Target struct {
	Channel    Channel
	TenantID   uint
	Slug       string
	LocationID uint
}

// Scope is a resolved target with the tenant's civil clock.
type Scope struct {
	Tenant   *models.Tenant
	Location *models.Location
	TZ       *time.Location
	Now      time.Time
}

// Resolver loads tenant configuration fresh on every call.
type Resolver struct {
	repo domain.Repository
	now  func() time.Time
}

func NewResolver(repo domain.Repository, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{repo: repo, now: now}
}

func (r *Resolver) Resolve(ctx context.Context, t Target) (*Scope, error) {
	var (
		tenant *models.Tenant
		err    error
	)

	switch t.Channel {
	case ChannelPublic:
		if t.Slug == "" {
			return nil, domain.ErrMissingTenant
		}
		tenant, err = r.repo.GetTenantBySlug(ctx, t.Slug)
	default:
		if t.TenantID == 0 {
			return nil, domain.ErrMissingTenant
		}
		tenant, err = r.repo.GetTenantByID(ctx, t.TenantID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}

	if t.Channel == ChannelPublic && !tenant.PublicBookingEnabled {
		return nil, domain.ErrBookingDisabled
	}

	var location *models.Location
	if t.LocationID == 0 {
		location, err = r.repo.GetPrimaryLocation(ctx, tenant.ID)
	} else {
		location, err = r.repo.GetLocation(ctx, tenant.ID, t.LocationID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}

	tz := timezone.Location(tenant.Timezone)
	return &Scope{
		Tenant:   tenant,
		Location: location,
		TZ:       tz,
		Now:      r.now().In(tz),
	}, nil
}

// Window resolves the operating window of date: the date override first,
// then the weekly rule. nil means a non-working day.
func (r *Resolver) Window(ctx context.Context, s *Scope, date time.Time) (*domain.Window, error) {
	override, err := r.repo.GetBusinessHoursOverride(ctx, s.Tenant.ID, s.Location.ID, date.Format(timezone.DateLayout))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		override = nil
	case err != nil:
		return nil, err
	}

	var weekly *models.BusinessHours
	if override == nil {
		weekly, err = r.repo.GetBusinessHours(ctx, s.Tenant.ID, s.Location.ID, int(date.Weekday()))
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			weekly = nil
		case err != nil:
			return nil, err
		}
	}

	return domain.ResolveWindow(override, weekly)
}

// Commitments loads what can block a slot on date: appointments that may
// overlap the day and the start times of confirmed requests.
func (r *Resolver) Commitments(ctx context.Context, s *Scope, date time.Time, staffID, excludeID *uint) ([]models.Appointment, []string, error) {
	dayStart := timezone.StartOfDay(date)
	appts, err := r.repo.ListBlockingAppointments(ctx, domain.AppointmentQuery{
		TenantID:   s.Tenant.ID,
		LocationID: s.Location.ID,
		StaffID:    staffID,
		From:       dayStart.AddDate(0, 0, -1),
		To:         dayStart.AddDate(0, 0, 1),
		ExcludeID:  excludeID,
	})
	if err != nil {
		return nil, nil, err
	}

	times, err := r.repo.ListConfirmedRequestTimes(ctx, s.Tenant.ID, s.Location.ID, date.Format(timezone.DateLayout))
	if err != nil {
		return nil, nil, err
	}

	return appts, times, nil
}
