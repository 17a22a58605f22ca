package cash

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ealanisln/vetify-api/internal/models"
)

// Repository persists the cash ledger. Single-record lookups return
// gorm.ErrRecordNotFound when nothing matches the tenant and id. Writes
// guarded by an exclusivity rule return the matching domain error when the
// store rejects them.
type Repository interface {
	GetTenant(ctx context.Context, tenantID uint) (*models.Tenant, error)
	GetLocation(ctx context.Context, tenantID, locationID uint) (*models.Location, error)
	GetStaff(ctx context.Context, tenantID, staffID uint) (*models.Staff, error)

	GetDrawer(ctx context.Context, tenantID, drawerID uint) (*models.CashDrawer, error)
	// CreateDrawer returns ErrDrawerAlreadyOpen when the location already
	// has an OPEN drawer.
	CreateDrawer(ctx context.Context, d *models.CashDrawer) error
	// CloseDrawer applies d only while the stored drawer is OPEN, else
	// ErrDrawerNotOpen. It returns ErrDrawerHasActiveShift if an ACTIVE shift
	// exists at write time.
	CloseDrawer(ctx context.Context, d *models.CashDrawer) error
	// CashSalePayments lists CASH payments of COMPLETED sales taken at the
	// drawer's location since the drawer opened.
	CashSalePayments(ctx context.Context, d *models.CashDrawer) ([]decimal.Decimal, error)

	GetShift(ctx context.Context, tenantID, shiftID uint) (*models.CashShift, error)
	GetActiveShiftForDrawer(ctx context.Context, tenantID, drawerID uint) (*models.CashShift, error)
	// GetActiveShiftForCashier is not tenant scoped: a cashier holds at most
	// one active shift anywhere.
	GetActiveShiftForCashier(ctx context.Context, cashierID uint) (*models.CashShift, error)
	// CreateShift returns ErrDrawerNotOpen if the drawer is no longer OPEN, and
	// ErrDrawerHasActiveShift or ErrCashierHasActiveShift when the store
	// rejects the insert.
	CreateShift(ctx context.Context, s *models.CashShift) error
	// EndShift applies s only while the stored shift is ACTIVE, else
	// ErrShiftNotActive.
	EndShift(ctx context.Context, s *models.CashShift) error
	// Handoff settles old and inserts next in one transaction.
	Handoff(ctx context.Context, old, next *models.CashShift) error
	ListSettledShifts(ctx context.Context, tenantID uint, from, to time.Time) ([]models.CashShift, error)

	CreateTransaction(ctx context.Context, tx *models.CashTransaction) error
	ListDrawerTransactions(ctx context.Context, tenantID, drawerID uint) ([]models.CashTransaction, error)
	// ListShiftTransactions lists the drawer transactions created since the
	// shift started that belong to it or to no shift.
	ListShiftTransactions(ctx context.Context, s *models.CashShift) ([]models.CashTransaction, error)
}
