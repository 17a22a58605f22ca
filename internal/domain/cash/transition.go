package cash

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/money"
)

func ValidateNonNegative(amount decimal.Decimal) error {
	if money.IsNegative(amount) {
		return ErrNegativeAmount
	}
	if !money.Exact(amount) {
		return ErrAmountPrecision
	}
	return nil
}

// NewDrawer builds an OPEN drawer. Exclusivity is checked by the store.
func NewDrawer(tenantID, locationID, openedBy uint, initial decimal.Decimal, now time.Time) (*models.CashDrawer, error) {
	if err := ValidateNonNegative(initial); err != nil {
		return nil, err
	}
	return &models.CashDrawer{
		TenantID:      tenantID,
		LocationID:    locationID,
		InitialAmount: money.Round(initial),
		Status:        DrawerOpen,
		OpenedByID:    openedBy,
		OpenedAt:      now,
	}, nil
}

// CloseDrawer records the count against the expected amount. The drawer is
// immutable afterwards.
func CloseDrawer(d *models.CashDrawer, final, expected decimal.Decimal, closedBy uint, now time.Time) error {
	if err := ValidateNonNegative(final); err != nil {
		return err
	}
	if d.Status != DrawerOpen {
		return ErrDrawerNotOpen
	}
	d.Status = DrawerClosed
	d.ClosedByID = &closedBy
	d.ClosedAt = &now
	d.FinalAmount = money.Ptr(final)
	d.ExpectedAmount = money.Ptr(expected)
	d.Difference = money.Ptr(Difference(final, expected))
	return nil
}

func NewShift(tenantID, drawerID, cashierID uint, starting decimal.Decimal, now time.Time) (*models.CashShift, error) {
	if err := ValidateNonNegative(starting); err != nil {
		return nil, err
	}
	return &models.CashShift{
		TenantID:        tenantID,
		DrawerID:        drawerID,
		CashierID:       cashierID,
		StartingBalance: money.Round(starting),
		Status:          ShiftActive,
		StartedAt:       now,
	}, nil
}

func settle(s *models.CashShift, counted, expected decimal.Decimal, now time.Time) {
	s.EndedAt = &now
	s.EndingBalance = money.Ptr(counted)
	s.ExpectedBalance = money.Ptr(expected)
	s.Difference = money.Ptr(Difference(counted, expected))
}

func EndShift(s *models.CashShift, ending, expected decimal.Decimal, now time.Time) error {
	if err := ValidateNonNegative(ending); err != nil {
		return err
	}
	if s.Status != ShiftActive {
		return ErrShiftNotActive
	}
	s.Status = ShiftEnded
	settle(s, ending, expected, now)
	return nil
}

// ValidateHandoff runs every check that needs no stored data beyond s.
func ValidateHandoff(s *models.CashShift, toCashier uint, verified decimal.Decimal) error {
	if err := ValidateNonNegative(verified); err != nil {
		return err
	}
	if s.CashierID == toCashier {
		return ErrSelfHandoff
	}
	if s.Status != ShiftActive {
		return ErrShiftNotActive
	}
	return nil
}

// HandOff settles s against expected using the verified count and returns
// the receiving cashier's shift, which starts from the verified count.
func HandOff(s *models.CashShift, toCashier uint, verified, expected decimal.Decimal, now time.Time) (*models.CashShift, error) {
	if err := ValidateHandoff(s, toCashier, verified); err != nil {
		return nil, err
	}
	s.Status = ShiftHandedOff
	s.HandedOffToID = &toCashier
	settle(s, verified, expected, now)

	return &models.CashShift{
		TenantID:        s.TenantID,
		DrawerID:        s.DrawerID,
		CashierID:       toCashier,
		StartingBalance: money.Round(verified),
		Status:          ShiftActive,
		StartedAt:       now,
	}, nil
}

func NewTransaction(d *models.CashDrawer, shiftID *uint, typ TransactionType, amount decimal.Decimal, description string, by uint) (*models.CashTransaction, error) {
	if !typ.Valid() {
		return nil, ErrInvalidTransactionType
	}
	if !money.IsPositive(amount) {
		return nil, ErrNonPositiveAmount
	}
	if !money.Exact(amount) {
		return nil, ErrAmountPrecision
	}
	if d.Status != DrawerOpen {
		return nil, ErrDrawerNotOpen
	}
	return &models.CashTransaction{
		TenantID:    d.TenantID,
		DrawerID:    d.ID,
		ShiftID:     shiftID,
		Type:        string(typ),
		Amount:      money.Round(amount),
		Description: description,
		CreatedByID: &by,
	}, nil
}
