package cash

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/cash"
	"github.com/Ealanisln/vetify-api/internal/metrics"
	"github.com/Ealanisln/vetify-api/internal/models"
)

// ======================================================
// OPEN
// ======================================================

type OpenDrawerInput struct {
	TenantID      uint
	LocationID    uint
	InitialAmount decimal.Decimal
	By            uint
}

type OpenDrawer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewOpenDrawer(repo domain.Repository, audit *audit.Dispatcher, now func() time.Time) *OpenDrawer {
	return &OpenDrawer{repo: repo, audit: audit, now: utcClock(now)}
}

// Execute relies on the store to refuse a second OPEN drawer for the
// location, so two concurrent opens cannot both succeed.
func (uc *OpenDrawer) Execute(ctx context.Context, in OpenDrawerInput) (*models.CashDrawer, error) {
	d, err := domain.NewDrawer(in.TenantID, in.LocationID, in.By, in.InitialAmount, uc.now())
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetLocation(ctx, in.TenantID, in.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}

	if err := uc.repo.CreateDrawer(ctx, d); err != nil {
		return nil, err
	}
	metrics.IncCashTransition("drawer", "open")

	uc.audit.Dispatch(audit.Event{
		TenantID: d.TenantID,
		StaffID:  &in.By,
		Action:   "cash_drawer_opened",
		Entity:   "cash_drawer",
		EntityID: &d.ID,
		Metadata: map[string]string{"initial_amount": d.InitialAmount.StringFixed(2)},
	})

	return d, nil
}

// ======================================================
// CLOSE
// ======================================================

type CloseDrawerInput struct {
	TenantID    uint
	DrawerID    uint
	FinalAmount decimal.Decimal
	By          uint
}

type CloseDrawer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCloseDrawer(repo domain.Repository, audit *audit.Dispatcher, now func() time.Time) *CloseDrawer {
	return &CloseDrawer{repo: repo, audit: audit, now: utcClock(now)}
}

func (uc *CloseDrawer) Execute(ctx context.Context, in CloseDrawerInput) (*models.CashDrawer, error) {
	if err := domain.ValidateNonNegative(in.FinalAmount); err != nil {
		return nil, err
	}

	d, err := getDrawer(ctx, uc.repo, in.TenantID, in.DrawerID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.DrawerOpen {
		return nil, domain.ErrDrawerNotOpen
	}

	// a shift still counting money against the drawer must end or hand off first
	busy, err := hasActiveShift(uc.repo.GetActiveShiftForDrawer(ctx, in.TenantID, d.ID))
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, domain.ErrDrawerHasActiveShift
	}

	payments, err := uc.repo.CashSalePayments(ctx, d)
	if err != nil {
		return nil, err
	}
	expected := domain.ExpectedDrawerAmount(d.InitialAmount, payments)

	if err := domain.CloseDrawer(d, in.FinalAmount, expected, in.By, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.CloseDrawer(ctx, d); err != nil {
		return nil, err
	}
	metrics.IncCashTransition("drawer", "close")

	uc.audit.Dispatch(audit.Event{
		TenantID: d.TenantID,
		StaffID:  &in.By,
		Action:   "cash_drawer_closed",
		Entity:   "cash_drawer",
		EntityID: &d.ID,
		Metadata: map[string]string{
			"expected":   d.ExpectedAmount.StringFixed(2),
			"final":      d.FinalAmount.StringFixed(2),
			"difference": d.Difference.StringFixed(2),
		},
	})

	return d, nil
}
