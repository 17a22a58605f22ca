package cash

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	domain "github.com/Ealanisln/vetify-api/internal/domain/cash"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type mockRepo struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) GetTenant(ctx context.Context, tenantID uint) (*models.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *mockRepo) GetLocation(ctx context.Context, tenantID, locationID uint) (*models.Location, error) {
	args := m.Called(ctx, tenantID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *mockRepo) GetStaff(ctx context.Context, tenantID, staffID uint) (*models.Staff, error) {
	args := m.Called(ctx, tenantID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *mockRepo) GetDrawer(ctx context.Context, tenantID, drawerID uint) (*models.CashDrawer, error) {
	args := m.Called(ctx, tenantID, drawerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CashDrawer), args.Error(1)
}

func (m *mockRepo) CreateDrawer(ctx context.Context, d *models.CashDrawer) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockRepo) CloseDrawer(ctx context.Context, d *models.CashDrawer) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockRepo) CashSalePayments(ctx context.Context, d *models.CashDrawer) ([]decimal.Decimal, error) {
	args := m.Called(ctx, d)
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

func (m *mockRepo) GetShift(ctx context.Context, tenantID, shiftID uint) (*models.CashShift, error) {
	args := m.Called(ctx, tenantID, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CashShift), args.Error(1)
}

func (m *mockRepo) GetActiveShiftForDrawer(ctx context.Context, tenantID, drawerID uint) (*models.CashShift, error) {
	args := m.Called(ctx, tenantID, drawerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CashShift), args.Error(1)
}

func (m *mockRepo) GetActiveShiftForCashier(ctx context.Context, cashierID uint) (*models.CashShift, error) {
	args := m.Called(ctx, cashierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CashShift), args.Error(1)
}

func (m *mockRepo) CreateShift(ctx context.Context, s *models.CashShift) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockRepo) EndShift(ctx context.Context, s *models.CashShift) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockRepo) Handoff(ctx context.Context, old, next *models.CashShift) error {
	return m.Called(ctx, old, next).Error(0)
}

func (m *mockRepo) ListSettledShifts(ctx context.Context, tenantID uint, from, to time.Time) ([]models.CashShift, error) {
	args := m.Called(ctx, tenantID, from, to)
	return args.Get(0).([]models.CashShift), args.Error(1)
}

func (m *mockRepo) CreateTransaction(ctx context.Context, tx *models.CashTransaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *mockRepo) ListDrawerTransactions(ctx context.Context, tenantID, drawerID uint) ([]models.CashTransaction, error) {
	args := m.Called(ctx, tenantID, drawerID)
	return args.Get(0).([]models.CashTransaction), args.Error(1)
}

func (m *mockRepo) ListShiftTransactions(ctx context.Context, s *models.CashShift) ([]models.CashTransaction, error) {
	args := m.Called(ctx, s)
	return args.Get(0).([]models.CashTransaction), args.Error(1)
}
