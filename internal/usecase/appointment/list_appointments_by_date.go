package appointment

import (
	"context"

	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	availdomain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/dto"
	"github.com/Ealanisln/vetify-api/internal/timezone"
	"github.com/Ealanisln/vetify-api/internal/usecase/availability"
)

type ListAppointmentsByDate struct {
	repo     domain.Repository
	resolver *availability.Resolver
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	resolver *availability.Resolver,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:     repo,
		resolver: resolver,
	}
}

// Execute lists a location's appointments on one tenant-local calendar date.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	tenantID uint,
	locationID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	scope, err := uc.resolver.Resolve(ctx, availability.Target{
		Channel:    availability.ChannelStaff,
		TenantID:   tenantID,
		LocationID: locationID,
	})
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(date, scope.TZ)
	if err != nil {
		return nil, availdomain.ErrInvalidDate
	}

	start := timezone.StartOfDay(day)
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointments(
		ctx,
		scope.Tenant.ID,
		scope.Location.ID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		local := ap.StartsAt.In(scope.TZ)
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			StartsAt:        local,
			EndsAt:          ap.EndsAt().In(scope.TZ),
			Time:            local.Format(timezone.TimeLayout),
			DurationMinutes: ap.DurationMinutes,
			Status:          ap.Status,
			StaffID:         ap.StaffID,
			PetID:           ap.PetID,
			Reason:          ap.Reason,
		})
	}

	return out, nil
}
