package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/metrics"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

// ExpireRequests moves PENDING requests whose preferred date has passed,
// tenant by tenant in each tenant's own timezone.
type ExpireRequests struct {
	repo domain.Repository
	now  func() time.Time
}

func NewExpireRequests(repo domain.Repository, now func() time.Time) *ExpireRequests {
	if now == nil {
		now = time.Now
	}
	return &ExpireRequests{repo: repo, now: now}
}

func (uc *ExpireRequests) Execute(ctx context.Context) (int64, error) {
	logger := zerolog.Ctx(ctx)

	tenants, err := uc.repo.ListTenants(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, t := range tenants {
		today := uc.now().In(timezone.Location(t.Timezone)).Format(timezone.DateLayout)

		n, err := uc.repo.ExpireRequests(ctx, t.ID, today)
		if err != nil {
			return total, err
		}
		if n > 0 {
			logger.Info().Uint("tenant_id", t.ID).Int64("expired", n).Msg("appointment requests expired")
		}
		total += n
	}

	metrics.AddRequestsExpired(total)
	return total, nil
}
