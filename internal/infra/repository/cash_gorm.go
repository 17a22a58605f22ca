package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Ealanisln/vetify-api/internal/domain/cash"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type CashGormRepository struct {
	db *gorm.DB
}

func NewCashGormRepository(db *gorm.DB) *CashGormRepository {
	return &CashGormRepository{db: db}
}

var (
	activeDrawerRule = uniqueRule{
		err:     domain.ErrDrawerHasActiveShift,
		markers: []string{"ux_cash_shifts_active_drawer", "cash_shifts.drawer_id"},
	}
	activeCashierRule = uniqueRule{
		err:     domain.ErrCashierHasActiveShift,
		markers: []string{"ux_cash_shifts_active_cashier", "cash_shifts.cashier_id"},
	}
)

// --------------------------------------------------
// Tenant / Location / Staff
// --------------------------------------------------

func (r *CashGormRepository) GetTenant(ctx context.Context, tenantID uint) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.WithContext(ctx).First(&t, tenantID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *CashGormRepository) GetLocation(ctx context.Context, tenantID, locationID uint) (*models.Location, error) {
	return findLocation(r.db.WithContext(ctx), tenantID, locationID)
}

func (r *CashGormRepository) GetStaff(ctx context.Context, tenantID, staffID uint) (*models.Staff, error) {
	var st models.Staff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", staffID, tenantID).
		First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// --------------------------------------------------
// Drawer
// --------------------------------------------------

func (r *CashGormRepository) GetDrawer(ctx context.Context, tenantID, drawerID uint) (*models.CashDrawer, error) {
	var d models.CashDrawer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", drawerID, tenantID).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CashGormRepository) CreateDrawer(ctx context.Context, d *models.CashDrawer) error {
	err := r.db.WithContext(ctx).Create(d).Error
	return mapUnique(err, domain.ErrDrawerAlreadyOpen)
}

// CloseDrawer holds the drawer row lock across the active-shift check and
// the status write, so a shift started meanwhile waits and then sees CLOSED.
func (r *CashGormRepository) CloseDrawer(ctx context.Context, d *models.CashDrawer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockDrawer(tx, d.TenantID, d.ID); err != nil {
			return err
		}
		var active int64
		if err := tx.Model(&models.CashShift{}).
			Where("tenant_id = ? AND drawer_id = ? AND status = ?", d.TenantID, d.ID, domain.ShiftActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return domain.ErrDrawerHasActiveShift
		}

		res := tx.
			Model(&models.CashDrawer{}).
			Where("id = ? AND tenant_id = ? AND status = ?", d.ID, d.TenantID, domain.DrawerOpen).
			Updates(map[string]any{
				"status":          d.Status,
				"closed_by_id":    d.ClosedByID,
				"closed_at":       d.ClosedAt,
				"final_amount":    d.FinalAmount,
				"expected_amount": d.ExpectedAmount,
				"difference":      d.Difference,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDrawerNotOpen
		}
		return nil
	})
}

// lockDrawer reads the drawer FOR UPDATE. Every write that depends on the
// drawer being OPEN goes through it.
func lockDrawer(tx *gorm.DB, tenantID, drawerID uint) (*models.CashDrawer, error) {
	var d models.CashDrawer
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND tenant_id = ?", drawerID, tenantID).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func lockOpenDrawer(tx *gorm.DB, tenantID, drawerID uint) error {
	d, err := lockDrawer(tx, tenantID, drawerID)
	if err != nil {
		return err
	}
	if d.Status != domain.DrawerOpen {
		return domain.ErrDrawerNotOpen
	}
	return nil
}

// CashSalePayments counts sales rung up on this drawer and sales with no
// drawer at all, as long as they belong to the drawer's location.
func (r *CashGormRepository) CashSalePayments(ctx context.Context, d *models.CashDrawer) ([]decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.SalePayment{}).
		Joins("JOIN sales ON sales.id = sale_payments.sale_id").
		Where("sales.tenant_id = ? AND sales.location_id = ?", d.TenantID, d.LocationID).
		Where("sales.status = ? AND sale_payments.method = ?", domain.SaleStatusComplete, domain.PaymentMethodCash).
		Where("sales.created_at >= ?", d.OpenedAt.UTC()).
		Where("sales.drawer_id = ? OR sales.drawer_id IS NULL", d.ID).
		Order("sale_payments.id ASC").
		Pluck("sale_payments.amount", &amounts).Error; err != nil {
		return nil, err
	}
	return amounts, nil
}

// --------------------------------------------------
// Shift
// --------------------------------------------------

func (r *CashGormRepository) GetShift(ctx context.Context, tenantID, shiftID uint) (*models.CashShift, error) {
	var s models.CashShift
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", shiftID, tenantID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CashGormRepository) GetActiveShiftForDrawer(ctx context.Context, tenantID, drawerID uint) (*models.CashShift, error) {
	var s models.CashShift
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND drawer_id = ? AND status = ?", tenantID, drawerID, domain.ShiftActive).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CashGormRepository) GetActiveShiftForCashier(ctx context.Context, cashierID uint) (*models.CashShift, error) {
	var s models.CashShift
	if err := r.db.WithContext(ctx).
		Where("cashier_id = ? AND status = ?", cashierID, domain.ShiftActive).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CashGormRepository) CreateShift(ctx context.Context, s *models.CashShift) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOpenDrawer(tx, s.TenantID, s.DrawerID); err != nil {
			return err
		}
		err := tx.Create(s).Error
		return mapUnique(err, nil, activeDrawerRule, activeCashierRule)
	})
}

func (r *CashGormRepository) EndShift(ctx context.Context, s *models.CashShift) error {
	return settleShift(r.db.WithContext(ctx), s)
}

// Handoff settles old and opens next atomically; if next cannot be inserted
// old stays ACTIVE.
func (r *CashGormRepository) Handoff(ctx context.Context, old, next *models.CashShift) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOpenDrawer(tx, old.TenantID, old.DrawerID); err != nil {
			return err
		}
		if err := settleShift(tx, old); err != nil {
			return err
		}
		err := tx.Create(next).Error
		return mapUnique(err, nil, activeDrawerRule, activeCashierRule)
	})
}

func settleShift(db *gorm.DB, s *models.CashShift) error {
	res := db.
		Model(&models.CashShift{}).
		Where("id = ? AND tenant_id = ? AND status = ?", s.ID, s.TenantID, domain.ShiftActive).
		Updates(map[string]any{
			"status":           s.Status,
			"ended_at":         s.EndedAt,
			"ending_balance":   s.EndingBalance,
			"expected_balance": s.ExpectedBalance,
			"difference":       s.Difference,
			"handed_off_to_id": s.HandedOffToID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrShiftNotActive
	}
	return nil
}

// ListSettledShifts returns ENDED and HANDED_OFF shifts whose end falls in
// [from, to).
func (r *CashGormRepository) ListSettledShifts(ctx context.Context, tenantID uint, from, to time.Time) ([]models.CashShift, error) {
	var shifts []models.CashShift
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status IN ?", tenantID, []string{domain.ShiftEnded, domain.ShiftHandedOff}).
		Where("ended_at >= ? AND ended_at < ?", from.UTC(), to.UTC()).
		Order("ended_at ASC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

// CreateTransaction locks the drawer so a concurrent close cannot slip a
// movement into a drawer that is no longer OPEN.
func (r *CashGormRepository) CreateTransaction(ctx context.Context, t *models.CashTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOpenDrawer(tx, t.TenantID, t.DrawerID); err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}

func (r *CashGormRepository) ListDrawerTransactions(ctx context.Context, tenantID, drawerID uint) ([]models.CashTransaction, error) {
	var txs []models.CashTransaction
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND drawer_id = ?", tenantID, drawerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *CashGormRepository) ListShiftTransactions(ctx context.Context, s *models.CashShift) ([]models.CashTransaction, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND drawer_id = ?", s.TenantID, s.DrawerID).
		Where("created_at >= ?", s.StartedAt.UTC()).
		Where("shift_id = ? OR shift_id IS NULL", s.ID)
	if s.EndedAt != nil && s.Status != domain.ShiftActive {
		query = query.Where("created_at <= ?", s.EndedAt.UTC())
	}

	var txs []models.CashTransaction
	if err := query.
		Order("created_at ASC").
		Order("id ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

var _ domain.Repository = (*CashGormRepository)(nil)
