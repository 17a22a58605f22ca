package availability

import (
	"context"

	domain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/metrics"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

type CheckInput struct {
	Target
	StaffID              *uint
	Date                 string
	Time                 string
	Duration             *int
	ExcludeAppointmentID *uint
}

type CheckSlotConflict struct {
	resolver *Resolver
}

func NewCheckSlotConflict(resolver *Resolver) *CheckSlotConflict {
	return &CheckSlotConflict{resolver: resolver}
}

func (uc *CheckSlotConflict) Execute(
	ctx context.Context,
	in CheckInput,
) (*domain.Decision, error) {

	if in.Duration != nil && *in.Duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	scope, err := uc.resolver.Resolve(ctx, in.Target)
	if err != nil {
		return nil, err
	}

	date, err := timezone.ParseDate(in.Date, scope.TZ)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	start, err := timezone.OnDate(date, in.Time)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}
	if start.Before(scope.Now) {
		return nil, domain.ErrPastDateTime
	}

	duration := domain.DefaultSlotDuration
	if in.Duration != nil {
		duration = *in.Duration
	} else {
		window, err := uc.resolver.Window(ctx, scope, date)
		if err != nil {
			return nil, err
		}
		if window != nil {
			duration = window.SlotDuration
		}
	}

	appts, requestTimes, err := uc.resolver.Commitments(ctx, scope, date, in.StaffID, in.ExcludeAppointmentID)
	if err != nil {
		return nil, err
	}

	ct := domain.ConflictFor(start, duration, appts, requestTimes)
	if ct != domain.ConflictNone {
		metrics.IncSlotConflict(string(ct))
	}

	decision := domain.DecisionFor(ct)
	return &decision, nil
}
