package cash

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/Ealanisln/vetify-api/internal/domain/cash"
	"github.com/Ealanisln/vetify-api/internal/models"
)

func getDrawer(ctx context.Context, repo domain.Repository, tenantID, drawerID uint) (*models.CashDrawer, error) {
	d, err := repo.GetDrawer(ctx, tenantID, drawerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDrawerNotFound
	}
	return d, err
}

func getShift(ctx context.Context, repo domain.Repository, tenantID, shiftID uint) (*models.CashShift, error) {
	s, err := repo.GetShift(ctx, tenantID, shiftID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrShiftNotFound
	}
	return s, err
}

// getCashier only accepts active staff of the tenant.
func getCashier(ctx context.Context, repo domain.Repository, tenantID, staffID uint) (*models.Staff, error) {
	st, err := repo.GetStaff(ctx, tenantID, staffID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !st.Active) {
		return nil, domain.ErrCashierNotFound
	}
	return st, err
}

// hasActiveShift treats "not found" as false.
func hasActiveShift(s *models.CashShift, err error) (bool, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return s != nil, nil
}

func utcClock(now func() time.Time) func() time.Time {
	if now == nil {
		now = time.Now
	}
	return func() time.Time { return now().UTC() }
}
