package availability

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type mockRepo struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) GetTenantByID(ctx context.Context, id uint) (*models.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *mockRepo) GetTenantBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	args := m.Called(ctx, slug)
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

func (m *mockRepo) GetPrimaryLocation(ctx context.Context, tenantID uint) (*models.Location, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *mockRepo) GetBusinessHours(ctx context.Context, tenantID, locationID uint, dayOfWeek int) (*models.BusinessHours, error) {
	args := m.Called(ctx, tenantID, locationID, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessHours), args.Error(1)
}

func (m *mockRepo) GetBusinessHoursOverride(ctx context.Context, tenantID, locationID uint, date string) (*models.BusinessHoursOverride, error) {
	args := m.Called(ctx, tenantID, locationID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessHoursOverride), args.Error(1)
}

func (m *mockRepo) ListBlockingAppointments(ctx context.Context, q domain.AppointmentQuery) ([]models.Appointment, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) ListConfirmedRequestTimes(ctx context.Context, tenantID, locationID uint, date string) ([]string, error) {
	args := m.Called(ctx, tenantID, locationID, date)
	return args.Get(0).([]string), args.Error(1)
}

var _ domain.HoursRepository = (*mockRepo)(nil)

func (m *mockRepo) ListBusinessHours(ctx context.Context, tenantID, locationID uint) ([]models.BusinessHours, error) {
	args := m.Called(ctx, tenantID, locationID)
	return args.Get(0).([]models.BusinessHours), args.Error(1)
}

func (m *mockRepo) ReplaceBusinessHours(ctx context.Context, tenantID, locationID uint, week []models.BusinessHours) error {
	return m.Called(ctx, tenantID, locationID, week).Error(0)
}

func (m *mockRepo) ListOverrides(ctx context.Context, tenantID, locationID uint, fromDate string) ([]models.BusinessHoursOverride, error) {
	args := m.Called(ctx, tenantID, locationID, fromDate)
	return args.Get(0).([]models.BusinessHoursOverride), args.Error(1)
}

func (m *mockRepo) UpsertOverride(ctx context.Context, o *models.BusinessHoursOverride) error {
	return m.Called(ctx, o).Error(0)
}
