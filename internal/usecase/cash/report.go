package cash

import (
	"context"

	domain "github.com/Ealanisln/vetify-api/internal/domain/cash"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

// Reports answers the read-only ledger queries.
type Reports struct {
	repo domain.Repository
}

func NewReports(repo domain.Repository) *Reports {
	return &Reports{repo: repo}
}

func (r *Reports) DrawerBalance(ctx context.Context, tenantID, drawerID uint) (*domain.Balance, error) {
	d, err := getDrawer(ctx, r.repo, tenantID, drawerID)
	if err != nil {
		return nil, err
	}

	txs, err := r.repo.ListDrawerTransactions(ctx, tenantID, d.ID)
	if err != nil {
		return nil, err
	}

	b := domain.NewBalance(d.InitialAmount, txs)
	return &b, nil
}

func (r *Reports) ShiftBalance(ctx context.Context, tenantID, shiftID uint) (*domain.Balance, error) {
	s, err := getShift(ctx, r.repo, tenantID, shiftID)
	if err != nil {
		return nil, err
	}

	txs, err := r.repo.ListShiftTransactions(ctx, s)
	if err != nil {
		return nil, err
	}

	b := domain.NewBalance(s.StartingBalance, txs)
	return &b, nil
}

// Breakdown groups a drawer's transactions by type and by tenant-local hour.
func (r *Reports) Breakdown(ctx context.Context, tenantID, drawerID uint) (*domain.Breakdown, error) {
	d, err := getDrawer(ctx, r.repo, tenantID, drawerID)
	if err != nil {
		return nil, err
	}

	tenant, err := r.repo.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	txs, err := r.repo.ListDrawerTransactions(ctx, tenantID, d.ID)
	if err != nil {
		return nil, err
	}

	b := domain.BreakdownOf(txs, timezone.Location(tenant.Timezone))
	return &b, nil
}

// DiscrepancyStats covers shifts settled between the tenant-local dates
// from and to, both inclusive.
func (r *Reports) DiscrepancyStats(ctx context.Context, tenantID uint, from, to string) (*domain.DiscrepancyStats, error) {
	tenant, err := r.repo.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(tenant.Timezone)

	start, err := timezone.ParseDate(from, loc)
	if err != nil {
		return nil, domain.ErrInvalidRange
	}
	end, err := timezone.ParseDate(to, loc)
	if err != nil || timezone.BeforeDate(end, start) {
		return nil, domain.ErrInvalidRange
	}

	shifts, err := r.repo.ListSettledShifts(ctx, tenantID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	st := domain.Discrepancies(shifts)
	return &st, nil
}
