package appointment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	availdomain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/timezone"
	"github.com/Ealanisln/vetify-api/internal/usecase/availability"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

var (
	mx       = timezone.Location("America/Mexico_City")
	clockNow = time.Date(2025, 3, 11, 12, 0, 0, 0, mx)
)

// calendar is an in-memory availability.Repository for one tenant with one
// location open 09:00-18:00 with a 13:00-14:00 break on weekdays.
type calendar struct {
	tenant       models.Tenant
	location     models.Location
	appointments []models.Appointment
	requestTimes []string
}

var _ availdomain.Repository = (*calendar)(nil)

func newCalendar() *calendar {
	return &calendar{
		tenant:   models.Tenant{ID: 1, Slug: "happy-paws", Timezone: "America/Mexico_City", PublicBookingEnabled: true},
		location: models.Location{ID: 2, TenantID: 1, IsPrimary: true},
	}
}

func (c *calendar) GetTenantByID(_ context.Context, id uint) (*models.Tenant, error) {
	if id != c.tenant.ID {
		return nil, gorm.ErrRecordNotFound
	}
	t := c.tenant
	return &t, nil
}

func (c *calendar) GetTenantBySlug(_ context.Context, slug string) (*models.Tenant, error) {
	if slug != c.tenant.Slug {
		return nil, gorm.ErrRecordNotFound
	}
	t := c.tenant
	return &t, nil
}

func (c *calendar) GetLocation(_ context.Context, tenantID, locationID uint) (*models.Location, error) {
	if tenantID != c.tenant.ID || locationID != c.location.ID {
		return nil, gorm.ErrRecordNotFound
	}
	l := c.location
	return &l, nil
}

func (c *calendar) GetPrimaryLocation(ctx context.Context, tenantID uint) (*models.Location, error) {
	return c.GetLocation(ctx, tenantID, c.location.ID)
}

func (c *calendar) GetBusinessHours(_ context.Context, _, _ uint, dayOfWeek int) (*models.BusinessHours, error) {
	if dayOfWeek == 0 || dayOfWeek == 6 {
		return &models.BusinessHours{DayOfWeek: dayOfWeek, IsOpen: false}, nil
	}
	return &models.BusinessHours{
		DayOfWeek: dayOfWeek, IsOpen: true,
		OpenTime: strp("09:00"), CloseTime: strp("18:00"),
		BreakStart: strp("13:00"), BreakEnd: strp("14:00"),
		SlotDuration: 30,
	}, nil
}

func (c *calendar) GetBusinessHoursOverride(context.Context, uint, uint, string) (*models.BusinessHoursOverride, error) {
	return nil, gorm.ErrRecordNotFound
}

func (c *calendar) ListBlockingAppointments(context.Context, availdomain.AppointmentQuery) ([]models.Appointment, error) {
	return c.appointments, nil
}

func (c *calendar) ListConfirmedRequestTimes(context.Context, uint, uint, string) ([]string, error) {
	return c.requestTimes, nil
}

func newResolver(c *calendar) *availability.Resolver {
	return availability.NewResolver(c, func() time.Time { return clockNow })
}

type mockRepo struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) GetAppointment(ctx context.Context, tenantID, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) ListAppointments(ctx context.Context, tenantID, locationID uint, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, tenantID, locationID, from, to)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) CreateAppointment(ctx context.Context, a *models.Appointment, localDate, localTime string) error {
	return m.Called(ctx, a, localDate, localTime).Error(0)
}

func (m *mockRepo) RescheduleAppointment(ctx context.Context, a *models.Appointment, localDate, localTime string) error {
	return m.Called(ctx, a, localDate, localTime).Error(0)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, a *models.Appointment, fromStatus string) error {
	return m.Called(ctx, a, fromStatus).Error(0)
}

func (m *mockRepo) GetRequest(ctx context.Context, tenantID, id uint) (*models.AppointmentRequest, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentRequest), args.Error(1)
}

func (m *mockRepo) CreateRequest(ctx context.Context, r *models.AppointmentRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRepo) ListRequests(ctx context.Context, f domain.RequestFilter) ([]models.AppointmentRequest, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.AppointmentRequest), args.Error(1)
}

func (m *mockRepo) ConfirmRequest(ctx context.Context, r *models.AppointmentRequest, a *models.Appointment, localDate, localTime string) error {
	return m.Called(ctx, r, a, localDate, localTime).Error(0)
}

func (m *mockRepo) UpdateRequestStatus(ctx context.Context, r *models.AppointmentRequest, fromStatus string) error {
	return m.Called(ctx, r, fromStatus).Error(0)
}

func (m *mockRepo) ExpireRequests(ctx context.Context, tenantID uint, beforeDate string) (int64, error) {
	args := m.Called(ctx, tenantID, beforeDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Tenant), args.Error(1)
}
