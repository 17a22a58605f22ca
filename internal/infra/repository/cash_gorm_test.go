package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Ealanisln/vetify-api/internal/domain/cash"
	"github.com/Ealanisln/vetify-api/internal/models"
)

var opened = time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

func (f *fixture) openDrawer(t *testing.T, repo *CashGormRepository, locationID uint) *models.CashDrawer {
	t.Helper()
	d, err := domain.NewDrawer(f.tenant.ID, locationID, f.cashier.ID, dec("1000"), opened)
	require.NoError(t, err)
	require.NoError(t, repo.CreateDrawer(context.Background(), d))
	return d
}

func (f *fixture) startShift(t *testing.T, repo *CashGormRepository, d *models.CashDrawer, cashier uint) *models.CashShift {
	t.Helper()
	s, err := domain.NewShift(f.tenant.ID, d.ID, cashier, dec("1000"), opened.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.CreateShift(context.Background(), s))
	return s
}

func TestCashRepo_OneOpenDrawerPerLocation(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	d := f.openDrawer(t, repo, f.loc.ID)

	dup, err := domain.NewDrawer(f.tenant.ID, f.loc.ID, f.cashier.ID, dec("0"), opened)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.CreateDrawer(ctx, dup), domain.ErrDrawerAlreadyOpen)

	// another location is independent
	f.openDrawer(t, repo, f.branch.ID)

	require.NoError(t, domain.CloseDrawer(d, dec("1000"), dec("1000"), f.cashier.ID, opened.Add(time.Hour)))
	require.NoError(t, repo.CloseDrawer(ctx, d))

	again, err := domain.NewDrawer(f.tenant.ID, f.loc.ID, f.cashier.ID, dec("0"), opened)
	require.NoError(t, err)
	assert.NoError(t, repo.CreateDrawer(ctx, again), "a closed drawer frees the location")
}

func TestCashRepo_CloseDrawerIsCompareAndSwap(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	d := f.openDrawer(t, repo, f.loc.ID)
	stale := *d

	require.NoError(t, domain.CloseDrawer(d, dec("1000.50"), dec("1000"), f.cashier.ID, opened.Add(time.Hour)))
	require.NoError(t, repo.CloseDrawer(ctx, d))

	require.NoError(t, domain.CloseDrawer(&stale, dec("1"), dec("1000"), f.relief.ID, opened.Add(2*time.Hour)))
	assert.ErrorIs(t, repo.CloseDrawer(ctx, &stale), domain.ErrDrawerNotOpen)

	stored, err := repo.GetDrawer(ctx, f.tenant.ID, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DrawerClosed, stored.Status)
	assert.True(t, dec("0.50").Equal(*stored.Difference))
	assert.Equal(t, f.cashier.ID, *stored.ClosedByID)
}

func TestCashRepo_CloseDrawerRechecksActiveShift(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	d := f.openDrawer(t, repo, f.loc.ID)
	// the close was validated before this shift started
	closing := *d
	f.startShift(t, repo, d, f.cashier.ID)

	require.NoError(t, domain.CloseDrawer(&closing, dec("1000"), dec("1000"), f.cashier.ID, opened.Add(time.Hour)))
	assert.ErrorIs(t, repo.CloseDrawer(ctx, &closing), domain.ErrDrawerHasActiveShift)

	stored, err := repo.GetDrawer(ctx, f.tenant.ID, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DrawerOpen, stored.Status)
	assert.Nil(t, stored.ClosedAt)
}

func TestCashRepo_CreateShiftOnClosedDrawer(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	d := f.openDrawer(t, repo, f.loc.ID)
	// the shift was validated while the drawer was still OPEN
	s, err := domain.NewShift(f.tenant.ID, d.ID, f.cashier.ID, dec("1000"), opened.Add(time.Minute))
	require.NoError(t, err)

	require.NoError(t, domain.CloseDrawer(d, dec("1000"), dec("1000"), f.cashier.ID, opened.Add(time.Hour)))
	require.NoError(t, repo.CloseDrawer(ctx, d))

	assert.ErrorIs(t, repo.CreateShift(ctx, s), domain.ErrDrawerNotOpen)

	_, err = repo.GetActiveShiftForDrawer(ctx, f.tenant.ID, d.ID)
	assert.Error(t, err, "no shift is left ACTIVE on a CLOSED drawer")
}

func TestCashRepo_ShiftExclusivity(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	centro := f.openDrawer(t, repo, f.loc.ID)
	sucursal := f.openDrawer(t, repo, f.branch.ID)
	f.startShift(t, repo, centro, f.cashier.ID)

	busyDrawer, err := domain.NewShift(f.tenant.ID, centro.ID, f.relief.ID, dec("0"), opened)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.CreateShift(ctx, busyDrawer), domain.ErrDrawerHasActiveShift)

	busyCashier, err := domain.NewShift(f.tenant.ID, sucursal.ID, f.cashier.ID, dec("0"), opened)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.CreateShift(ctx, busyCashier), domain.ErrCashierHasActiveShift)

	active, err := repo.GetActiveShiftForCashier(ctx, f.cashier.ID)
	require.NoError(t, err)
	assert.Equal(t, centro.ID, active.DrawerID)
}

func TestCashRepo_Handoff(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	d := f.openDrawer(t, repo, f.loc.ID)
	s := f.startShift(t, repo, d, f.cashier.ID)

	next, err := domain.HandOff(s, f.relief.ID, dec("990"), dec("1000"), opened.Add(3*time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Handoff(ctx, s, next))

	old, err := repo.GetShift(ctx, f.tenant.ID, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftHandedOff, old.Status)
	assert.True(t, dec("-10").Equal(*old.Difference))
	assert.Equal(t, f.relief.ID, *old.HandedOffToID)

	active, err := repo.GetActiveShiftForDrawer(ctx, f.tenant.ID, d.ID)
	require.NoError(t, err)
	assert.Equal(t, next.ID, active.ID)
	assert.Equal(t, f.relief.ID, active.CashierID)
	assert.True(t, dec("990").Equal(active.StartingBalance))
}

func TestCashRepo_HandoffRollsBackOnBusyReceiver(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	centro := f.openDrawer(t, repo, f.loc.ID)
	sucursal := f.openDrawer(t, repo, f.branch.ID)
	s := f.startShift(t, repo, centro, f.cashier.ID)
	f.startShift(t, repo, sucursal, f.relief.ID)

	next, err := domain.HandOff(s, f.relief.ID, dec("1000"), dec("1000"), opened.Add(time.Hour))
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Handoff(ctx, s, next), domain.ErrCashierHasActiveShift)

	stored, err := repo.GetShift(ctx, f.tenant.ID, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftActive, stored.Status, "the old shift stays active when the new one is refused")
}

func TestCashRepo_EndShiftIsCompareAndSwap(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	d := f.openDrawer(t, repo, f.loc.ID)
	s := f.startShift(t, repo, d, f.cashier.ID)
	stale := *s

	require.NoError(t, domain.EndShift(s, dec("1000"), dec("1000"), opened.Add(time.Hour)))
	require.NoError(t, repo.EndShift(ctx, s))

	require.NoError(t, domain.EndShift(&stale, dec("5"), dec("1000"), opened.Add(time.Hour)))
	assert.ErrorIs(t, repo.EndShift(ctx, &stale), domain.ErrShiftNotActive)
}

func TestCashRepo_CashSalePayments(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)

	d := f.openDrawer(t, repo, f.loc.ID)
	after := opened.Add(time.Hour)
	before := opened.Add(-time.Hour)

	sales := []struct {
		location uint
		drawer   *uint
		status   string
		at       time.Time
		payments []models.SalePayment
	}{
		{f.loc.ID, &d.ID, "COMPLETED", after, []models.SalePayment{{Method: "CASH", Amount: dec("100.10")}, {Method: "CARD", Amount: dec("50")}}},
		{f.loc.ID, nil, "COMPLETED", after, []models.SalePayment{{Method: "CASH", Amount: dec("20")}}},
		{f.loc.ID, uintp(d.ID + 100), "COMPLETED", after, []models.SalePayment{{Method: "CASH", Amount: dec("7")}}},
		{f.loc.ID, &d.ID, "PENDING", after, []models.SalePayment{{Method: "CASH", Amount: dec("8")}}},
		{f.loc.ID, &d.ID, "COMPLETED", before, []models.SalePayment{{Method: "CASH", Amount: dec("9")}}},
		{f.branch.ID, nil, "COMPLETED", after, []models.SalePayment{{Method: "CASH", Amount: dec("10")}}},
	}
	for _, s := range sales {
		sale := models.Sale{
			TenantID: f.tenant.ID, LocationID: s.location, DrawerID: s.drawer,
			Status: s.status, Total: dec("0"), Payments: s.payments, CreatedAt: s.at,
		}
		require.NoError(t, f.db.Create(&sale).Error)
	}

	amounts, err := repo.CashSalePayments(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, amounts, 2)

	expected := domain.ExpectedDrawerAmount(d.InitialAmount, amounts)
	assert.True(t, dec("1120.10").Equal(expected), "got %s", expected)
}

func TestCashRepo_Transactions(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	d := f.openDrawer(t, repo, f.loc.ID)
	s := f.startShift(t, repo, d, f.cashier.ID)

	record := func(shiftID *uint, typ domain.TransactionType, amount string, at time.Time) {
		tx, err := domain.NewTransaction(d, shiftID, typ, dec(amount), "", f.cashier.ID)
		require.NoError(t, err)
		tx.CreatedAt = at
		require.NoError(t, repo.CreateTransaction(ctx, tx))
	}
	record(nil, domain.TxDeposit, "5", opened)                                // before the shift
	record(&s.ID, domain.TxSaleCash, "300", opened.Add(2*time.Minute))        // shift
	record(nil, domain.TxWithdrawal, "40", opened.Add(3*time.Minute))         // unattributed, counts
	record(uintp(s.ID+50), domain.TxDeposit, "99", opened.Add(4*time.Minute)) // someone else's

	all, err := repo.ListDrawerTransactions(ctx, f.tenant.ID, d.ID)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mine, err := repo.ListShiftTransactions(ctx, s)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, dec("1260").Equal(domain.RunningBalance(s.StartingBalance, mine)))

	require.NoError(t, domain.CloseDrawer(d, dec("0"), dec("0"), f.cashier.ID, opened.Add(time.Hour)))
	require.NoError(t, repo.CloseDrawer(ctx, d))

	late := &models.CashTransaction{TenantID: f.tenant.ID, DrawerID: d.ID, Type: string(domain.TxDeposit), Amount: dec("1")}
	assert.ErrorIs(t, repo.CreateTransaction(ctx, late), domain.ErrDrawerNotOpen)
}

func TestCashRepo_ListSettledShifts(t *testing.T) {
	f := seed(t)
	repo := NewCashGormRepository(f.db)
	ctx := context.Background()

	d := f.openDrawer(t, repo, f.loc.ID)
	s := f.startShift(t, repo, d, f.cashier.ID)
	require.NoError(t, domain.EndShift(s, dec("998"), dec("1000"), opened.Add(time.Hour)))
	require.NoError(t, repo.EndShift(ctx, s))
	f.startShift(t, repo, d, f.relief.ID)

	got, err := repo.ListSettledShifts(ctx, f.tenant.ID, opened, opened.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, s.ID, got[0].ID)

	got, err = repo.ListSettledShifts(ctx, f.tenant.ID, opened.Add(2*time.Hour), opened.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUniqueViolation(t *testing.T) {
	detail, ok := uniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "ux_cash_shifts_active_cashier"})
	assert.True(t, ok)
	assert.Equal(t, "ux_cash_shifts_active_cashier", detail)

	_, ok = uniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	_, ok = uniqueViolation(errors.New("connection reset"))
	assert.False(t, ok)

	err := mapUnique(&pgconn.PgError{Code: "23505", ConstraintName: "ux_cash_shifts_active_drawer"}, nil, activeDrawerRule, activeCashierRule)
	assert.ErrorIs(t, err, domain.ErrDrawerHasActiveShift)

	plain := errors.New("boom")
	assert.Equal(t, plain, mapUnique(plain, domain.ErrDrawerAlreadyOpen))
}
