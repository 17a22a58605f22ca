package cash

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/cash"
	"github.com/Ealanisln/vetify-api/internal/metrics"
	"github.com/Ealanisln/vetify-api/internal/models"
)

// ======================================================
// START
// ======================================================

type StartShiftInput struct {
	TenantID        uint
	DrawerID        uint
	CashierID       uint
	StartingBalance decimal.Decimal
	By              uint
}

type StartShift struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewStartShift(repo domain.Repository, audit *audit.Dispatcher, now func() time.Time) *StartShift {
	return &StartShift{repo: repo, audit: audit, now: utcClock(now)}
}

func (uc *StartShift) Execute(ctx context.Context, in StartShiftInput) (*models.CashShift, error) {
	s, err := domain.NewShift(in.TenantID, in.DrawerID, in.CashierID, in.StartingBalance, uc.now())
	if err != nil {
		return nil, err
	}

	d, err := getDrawer(ctx, uc.repo, in.TenantID, in.DrawerID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.DrawerOpen {
		return nil, domain.ErrDrawerNotOpen
	}

	if _, err := getCashier(ctx, uc.repo, in.TenantID, in.CashierID); err != nil {
		return nil, err
	}

	busy, err := hasActiveShift(uc.repo.GetActiveShiftForDrawer(ctx, in.TenantID, d.ID))
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, domain.ErrDrawerHasActiveShift
	}

	busy, err = hasActiveShift(uc.repo.GetActiveShiftForCashier(ctx, in.CashierID))
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, domain.ErrCashierHasActiveShift
	}

	// the checks above are advisory; the store's unique indexes decide races
	if err := uc.repo.CreateShift(ctx, s); err != nil {
		return nil, err
	}
	metrics.IncCashTransition("shift", "start")

	uc.audit.Dispatch(audit.Event{
		TenantID: s.TenantID,
		StaffID:  &in.By,
		Action:   "cash_shift_started",
		Entity:   "cash_shift",
		EntityID: &s.ID,
	})

	return s, nil
}

// ======================================================
// END
// ======================================================

type EndShiftInput struct {
	TenantID      uint
	ShiftID       uint
	EndingBalance decimal.Decimal
	By            uint
}

type EndShift struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewEndShift(repo domain.Repository, audit *audit.Dispatcher, now func() time.Time) *EndShift {
	return &EndShift{repo: repo, audit: audit, now: utcClock(now)}
}

func (uc *EndShift) Execute(ctx context.Context, in EndShiftInput) (*models.CashShift, error) {
	if err := domain.ValidateNonNegative(in.EndingBalance); err != nil {
		return nil, err
	}

	s, err := getShift(ctx, uc.repo, in.TenantID, in.ShiftID)
	if err != nil {
		return nil, err
	}
	if s.Status != domain.ShiftActive {
		return nil, domain.ErrShiftNotActive
	}

	txs, err := uc.repo.ListShiftTransactions(ctx, s)
	if err != nil {
		return nil, err
	}
	expected := domain.RunningBalance(s.StartingBalance, txs)

	if err := domain.EndShift(s, in.EndingBalance, expected, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.EndShift(ctx, s); err != nil {
		return nil, err
	}

	outcome := domain.OutcomeOf(*s.Difference)
	metrics.IncCashTransition("shift", "end")
	metrics.IncShiftReconciliation(string(outcome))

	uc.audit.Dispatch(audit.Event{
		TenantID: s.TenantID,
		StaffID:  &in.By,
		Action:   "cash_shift_ended",
		Entity:   "cash_shift",
		EntityID: &s.ID,
		Metadata: map[string]string{
			"expected":   s.ExpectedBalance.StringFixed(2),
			"difference": s.Difference.StringFixed(2),
			"outcome":    string(outcome),
		},
	})

	return s, nil
}

// ======================================================
// HANDOFF
// ======================================================

type HandoffInput struct {
	TenantID       uint
	ShiftID        uint
	ToCashierID    uint
	VerifiedAmount decimal.Decimal
	By             uint
}

type HandoffResult struct {
	Previous *models.CashShift `json:"previous"`
	Next     *models.CashShift `json:"next"`
}

type Handoff struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewHandoff(repo domain.Repository, audit *audit.Dispatcher, now func() time.Time) *Handoff {
	return &Handoff{repo: repo, audit: audit, now: utcClock(now)}
}

// Execute closes the current shift against its expected balance and opens
// the receiving cashier's shift from the verified count.
func (uc *Handoff) Execute(ctx context.Context, in HandoffInput) (*HandoffResult, error) {
	s, err := getShift(ctx, uc.repo, in.TenantID, in.ShiftID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateHandoff(s, in.ToCashierID, in.VerifiedAmount); err != nil {
		return nil, err
	}

	if _, err := getCashier(ctx, uc.repo, in.TenantID, in.ToCashierID); err != nil {
		return nil, err
	}

	busy, err := hasActiveShift(uc.repo.GetActiveShiftForCashier(ctx, in.ToCashierID))
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, domain.ErrCashierHasActiveShift
	}

	txs, err := uc.repo.ListShiftTransactions(ctx, s)
	if err != nil {
		return nil, err
	}
	expected := domain.RunningBalance(s.StartingBalance, txs)

	next, err := domain.HandOff(s, in.ToCashierID, in.VerifiedAmount, expected, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Handoff(ctx, s, next); err != nil {
		return nil, err
	}

	outcome := domain.OutcomeOf(*s.Difference)
	metrics.IncCashTransition("shift", "handoff")
	metrics.IncShiftReconciliation(string(outcome))

	uc.audit.Dispatch(audit.Event{
		TenantID: s.TenantID,
		StaffID:  &in.By,
		Action:   "cash_shift_handed_off",
		Entity:   "cash_shift",
		EntityID: &s.ID,
		Metadata: map[string]any{
			"to_cashier_id": in.ToCashierID,
			"next_shift_id": next.ID,
			"verified":      next.StartingBalance.StringFixed(2),
			"difference":    s.Difference.StringFixed(2),
		},
	})

	return &HandoffResult{Previous: s, Next: next}, nil
}
