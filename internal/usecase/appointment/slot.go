package appointment

import (
	"context"
	"time"

	availdomain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/metrics"
	"github.com/Ealanisln/vetify-api/internal/timezone"
	"github.com/Ealanisln/vetify-api/internal/usecase/availability"
)

// slot is a validated booking interval in the tenant's timezone.
type slot struct {
	Start   time.Time
	Minutes int
	Date    string
	Time    string
}

// resolveSlot parses date and hm in the scope's timezone and checks that the
// interval is in the future and inside that day's operating window. A nil
// duration falls back to fallback, then to the window's slot duration.
func resolveSlot(
	ctx context.Context,
	resolver *availability.Resolver,
	scope *availability.Scope,
	date, hm string,
	duration *int,
	fallback int,
) (*slot, error) {

	day, err := timezone.ParseDate(date, scope.TZ)
	if err != nil {
		return nil, availdomain.ErrInvalidDate
	}
	start, err := timezone.OnDate(day, hm)
	if err != nil {
		return nil, availdomain.ErrInvalidTime
	}
	if start.Before(scope.Now) {
		return nil, availdomain.ErrPastDateTime
	}

	window, err := resolver.Window(ctx, scope, day)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, availdomain.ErrNonWorkingDay
	}

	minutes := window.SlotDuration
	switch {
	case duration != nil:
		minutes = *duration
	case fallback > 0:
		minutes = fallback
	}
	if minutes <= 0 {
		return nil, availdomain.ErrInvalidDuration
	}

	if !window.Contains(start.Hour()*60+start.Minute(), minutes) {
		return nil, availdomain.ErrOutsideBusinessHours
	}

	return &slot{
		Start:   start,
		Minutes: minutes,
		Date:    day.Format(timezone.DateLayout),
		Time:    start.Format(timezone.TimeLayout),
	}, nil
}

func countConflict(err error) {
	if be, ok := httperr.AsBusiness(err); ok && be.ConflictType != "" {
		metrics.IncSlotConflict(be.ConflictType)
	}
}
