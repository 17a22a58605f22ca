package availability

import (
	"context"

	domain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/metrics"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

type SlotsInput struct {
	Target
	StaffID  *uint
	Date     string
	Duration *int
}

type GetAvailableSlots struct {
	resolver *Resolver
}

func NewGetAvailableSlots(resolver *Resolver) *GetAvailableSlots {
	return &GetAvailableSlots{resolver: resolver}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in SlotsInput,
) (*domain.Result, error) {

	if in.Duration != nil && *in.Duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	scope, err := uc.resolver.Resolve(ctx, in.Target)
	if err != nil {
		return nil, err
	}
	metrics.IncAvailabilityRequest(string(in.Channel))

	date, err := timezone.ParseDate(in.Date, scope.TZ)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	if timezone.BeforeDate(date, scope.Now) {
		res := domain.PastDateResult()
		return &res, nil
	}

	window, err := uc.resolver.Window(ctx, scope, date)
	if err != nil {
		return nil, err
	}
	if window == nil {
		res := domain.NonWorkingDayResult()
		return &res, nil
	}

	duration := window.SlotDuration
	if in.Duration != nil {
		duration = *in.Duration
	}

	appts, requestTimes, err := uc.resolver.Commitments(ctx, scope, date, in.StaffID, nil)
	if err != nil {
		return nil, err
	}

	res := domain.Day(date, scope.Now, *window, duration, appts, requestTimes)
	return &res, nil
}
