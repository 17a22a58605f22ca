package availability

import (
	"context"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

type DayHours struct {
	DayOfWeek int
	domain.Hours
}

type Schedule struct {
	LocationID uint                           `json:"location_id"`
	Week       []models.BusinessHours         `json:"week"`
	Overrides  []models.BusinessHoursOverride `json:"overrides"`
}

type OverrideInput struct {
	Date   string
	Reason string
	domain.Hours
}

// BusinessHours manages the weekly schedule and date overrides of a
// location. Location lookups go through the staff resolver so other
// tenants' locations stay invisible.
type BusinessHours struct {
	repo     domain.HoursRepository
	resolver *Resolver
	audit    *audit.Dispatcher
}

func NewBusinessHours(repo domain.HoursRepository, resolver *Resolver, audit *audit.Dispatcher) *BusinessHours {
	return &BusinessHours{repo: repo, resolver: resolver, audit: audit}
}

func (uc *BusinessHours) scope(ctx context.Context, tenantID, locationID uint) (*Scope, error) {
	return uc.resolver.Resolve(ctx, Target{Channel: ChannelStaff, TenantID: tenantID, LocationID: locationID})
}

// Get returns the weekly rules and the overrides from today on.
func (uc *BusinessHours) Get(ctx context.Context, tenantID, locationID uint) (*Schedule, error) {
	s, err := uc.scope(ctx, tenantID, locationID)
	if err != nil {
		return nil, err
	}

	week, err := uc.repo.ListBusinessHours(ctx, s.Tenant.ID, s.Location.ID)
	if err != nil {
		return nil, err
	}
	overrides, err := uc.repo.ListOverrides(ctx, s.Tenant.ID, s.Location.ID, s.Now.Format(timezone.DateLayout))
	if err != nil {
		return nil, err
	}

	return &Schedule{LocationID: s.Location.ID, Week: week, Overrides: overrides}, nil
}

// ReplaceWeek validates every day before writing any of them.
func (uc *BusinessHours) ReplaceWeek(ctx context.Context, tenantID, locationID, by uint, days []DayHours) ([]models.BusinessHours, error) {
	s, err := uc.scope(ctx, tenantID, locationID)
	if err != nil {
		return nil, err
	}

	seen := map[int]bool{}
	week := make([]models.BusinessHours, 0, len(days))
	for _, d := range days {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return nil, domain.ErrInvalidHours
		}
		if seen[d.DayOfWeek] {
			return nil, domain.ErrDuplicateDay
		}
		seen[d.DayOfWeek] = true

		h, err := d.Hours.Normalize()
		if err != nil {
			return nil, err
		}
		week = append(week, models.BusinessHours{
			TenantID:     s.Tenant.ID,
			LocationID:   s.Location.ID,
			DayOfWeek:    d.DayOfWeek,
			IsOpen:       h.IsOpen,
			OpenTime:     h.OpenTime,
			CloseTime:    h.CloseTime,
			BreakStart:   h.BreakStart,
			BreakEnd:     h.BreakEnd,
			SlotDuration: h.SlotDuration,
		})
	}

	if err := uc.repo.ReplaceBusinessHours(ctx, s.Tenant.ID, s.Location.ID, week); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: s.Tenant.ID,
		StaffID:  &by,
		Action:   "business_hours_updated",
		Entity:   "location",
		EntityID: &s.Location.ID,
		Metadata: map[string]int{"days": len(week)},
	})

	return week, nil
}

func (uc *BusinessHours) SetOverride(ctx context.Context, tenantID, locationID, by uint, in OverrideInput) (*models.BusinessHoursOverride, error) {
	s, err := uc.scope(ctx, tenantID, locationID)
	if err != nil {
		return nil, err
	}

	date, err := timezone.ParseDate(in.Date, s.TZ)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	h, err := in.Hours.Normalize()
	if err != nil {
		return nil, err
	}

	o := &models.BusinessHoursOverride{
		TenantID:     s.Tenant.ID,
		LocationID:   s.Location.ID,
		Date:         date.Format(timezone.DateLayout),
		IsOpen:       h.IsOpen,
		OpenTime:     h.OpenTime,
		CloseTime:    h.CloseTime,
		BreakStart:   h.BreakStart,
		BreakEnd:     h.BreakEnd,
		SlotDuration: h.SlotDuration,
		Reason:       in.Reason,
	}
	if err := uc.repo.UpsertOverride(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: s.Tenant.ID,
		StaffID:  &by,
		Action:   "business_hours_override_set",
		Entity:   "location",
		EntityID: &s.Location.ID,
		Metadata: map[string]any{"date": o.Date, "is_open": o.IsOpen},
	})

	return o, nil
}
