package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }
func uintp(u uint) *uint    { return &u }

var (
	mx       = timezone.Location("America/Mexico_City")
	clockNow = time.Date(2025, 3, 11, 12, 0, 0, 0, mx)
	tenant   = &models.Tenant{ID: 1, Slug: "happy-paws", Timezone: "America/Mexico_City", PublicBookingEnabled: true}
	location = &models.Location{ID: 2, TenantID: 1, IsPrimary: true}
	weekday  = &models.BusinessHours{
		TenantID: 1, LocationID: 2, DayOfWeek: 3, IsOpen: true,
		OpenTime: strp("09:00"), CloseTime: strp("18:00"),
		BreakStart: strp("13:00"), BreakEnd: strp("14:00"),
		SlotDuration: 30,
	}
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func staffTarget() Target {
	return Target{Channel: ChannelStaff, TenantID: 1, LocationID: 2}
}

// onWednesday wires tenant, location and the weekly rule for 2025-03-12.
func onWednesday(repo *mockRepo) {
	repo.On("GetTenantByID", mock.Anything, uint(1)).Return(tenant, nil)
	repo.On("GetLocation", mock.Anything, uint(1), uint(2)).Return(location, nil)
	repo.On("GetBusinessHoursOverride", mock.Anything, uint(1), uint(2), "2025-03-12").Return(nil, gorm.ErrRecordNotFound)
	repo.On("GetBusinessHours", mock.Anything, uint(1), uint(2), 3).Return(weekday, nil)
}

func appointmentAt(hm string, minutes int) models.Appointment {
	day, _ := timezone.ParseDate("2025-03-12", mx)
	start, _ := timezone.OnDate(day, hm)
	return models.Appointment{ID: 50, StartsAt: start.UTC(), DurationMinutes: minutes, Status: "SCHEDULED"}
}

func TestGetAvailableSlots_StandardDay(t *testing.T) {
	repo := new(mockRepo)
	onWednesday(repo)
	repo.On("ListBlockingAppointments", mock.Anything, mock.MatchedBy(func(q domain.AppointmentQuery) bool {
		return q.TenantID == 1 && q.LocationID == 2 && q.StaffID == nil && q.ExcludeID == nil &&
			q.From.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, mx)) &&
			q.To.Equal(time.Date(2025, 3, 13, 0, 0, 0, 0, mx))
	})).Return([]models.Appointment{appointmentAt("10:00", 90)}, nil)
	repo.On("ListConfirmedRequestTimes", mock.Anything, uint(1), uint(2), "2025-03-12").Return([]string{}, nil)

	uc := NewGetAvailableSlots(NewResolver(repo, fixedClock(clockNow)))
	res, err := uc.Execute(context.Background(), SlotsInput{Target: staffTarget(), Date: "2025-03-12"})

	require.NoError(t, err)
	assert.True(t, res.WorkingDay)
	assert.Equal(t, 16, res.TotalSlots)
	assert.Equal(t, 13, res.AvailableCount)
	assert.Equal(t, "09:00", res.BusinessHours.Open)
	repo.AssertExpectations(t)
}

func TestGetAvailableSlots_AcceptsISODateTime(t *testing.T) {
	repo := new(mockRepo)
	onWednesday(repo)
	repo.On("ListBlockingAppointments", mock.Anything, mock.Anything).Return([]models.Appointment{}, nil)
	repo.On("ListConfirmedRequestTimes", mock.Anything, uint(1), uint(2), "2025-03-12").Return([]string{"09:00"}, nil)

	uc := NewGetAvailableSlots(NewResolver(repo, fixedClock(clockNow)))
	res, err := uc.Execute(context.Background(), SlotsInput{
		Target:   staffTarget(),
		Date:     "2025-03-12T23:30:00.000Z",
		Duration: intp(60),
	})

	require.NoError(t, err)
	assert.Equal(t, 14, res.TotalSlots)
	assert.Equal(t, 13, res.AvailableCount)
	assert.Equal(t, "09:30", res.AvailableSlots[0].Time)
}

func TestGetAvailableSlots_PastDate(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTenantByID", mock.Anything, uint(1)).Return(tenant, nil)
	repo.On("GetLocation", mock.Anything, uint(1), uint(2)).Return(location, nil)

	uc := NewGetAvailableSlots(NewResolver(repo, fixedClock(clockNow)))
	res, err := uc.Execute(context.Background(), SlotsInput{Target: staffTarget(), Date: "2025-03-10"})

	require.NoError(t, err)
	assert.False(t, res.WorkingDay)
	assert.Equal(t, domain.MessagePastDate, res.Message)
	assert.Empty(t, res.AvailableSlots)
	repo.AssertNotCalled(t, "GetBusinessHours", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAvailableSlots_ClosedOverride(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTenantByID", mock.Anything, uint(1)).Return(tenant, nil)
	repo.On("GetLocation", mock.Anything, uint(1), uint(2)).Return(location, nil)
	repo.On("GetBusinessHoursOverride", mock.Anything, uint(1), uint(2), "2025-03-12").
		Return(&models.BusinessHoursOverride{IsOpen: false, Reason: "Holiday"}, nil)

	uc := NewGetAvailableSlots(NewResolver(repo, fixedClock(clockNow)))
	res, err := uc.Execute(context.Background(), SlotsInput{Target: staffTarget(), Date: "2025-03-12"})

	require.NoError(t, err)
	assert.False(t, res.WorkingDay)
	assert.Equal(t, domain.MessageNonWorkingDay, res.Message)
	assert.Zero(t, res.TotalSlots)
	repo.AssertNotCalled(t, "GetBusinessHours", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAvailableSlots_NoRule(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTenantByID", mock.Anything, uint(1)).Return(tenant, nil)
	repo.On("GetLocation", mock.Anything, uint(1), uint(2)).Return(location, nil)
	repo.On("GetBusinessHoursOverride", mock.Anything, uint(1), uint(2), "2025-03-16").Return(nil, gorm.ErrRecordNotFound)
	repo.On("GetBusinessHours", mock.Anything, uint(1), uint(2), 0).Return(nil, gorm.ErrRecordNotFound)

	uc := NewGetAvailableSlots(NewResolver(repo, fixedClock(clockNow)))
	res, err := uc.Execute(context.Background(), SlotsInput{Target: staffTarget(), Date: "2025-03-16"})

	require.NoError(t, err)
	assert.False(t, res.WorkingDay)
}

func TestGetAvailableSlots_Validation(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTenantByID", mock.Anything, uint(1)).Return(tenant, nil)
	repo.On("GetLocation", mock.Anything, uint(1), uint(2)).Return(location, nil)
	uc := NewGetAvailableSlots(NewResolver(repo, fixedClock(clockNow)))

	_, err := uc.Execute(context.Background(), SlotsInput{Target: staffTarget(), Date: "12/03/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = uc.Execute(context.Background(), SlotsInput{Target: staffTarget(), Date: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = uc.Execute(context.Background(), SlotsInput{Target: staffTarget(), Date: "2025-03-12", Duration: intp(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = uc.Execute(context.Background(), SlotsInput{Target: Target{Channel: ChannelStaff}, Date: "2025-03-12"})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
}

func TestResolve_PublicChannel(t *testing.T) {
	disabled := &models.Tenant{ID: 9, Slug: "closed-clinic"}

	repo := new(mockRepo)
	repo.On("GetTenantBySlug", mock.Anything, "closed-clinic").Return(disabled, nil)
	repo.On("GetTenantBySlug", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
	repo.On("GetTenantBySlug", mock.Anything, "happy-paws").Return(tenant, nil)
	repo.On("GetPrimaryLocation", mock.Anything, uint(1)).Return(location, nil)
	repo.On("GetLocation", mock.Anything, uint(1), uint(77)).Return(nil, gorm.ErrRecordNotFound)

	r := NewResolver(repo, fixedClock(clockNow))
	ctx := context.Background()

	_, err := r.Resolve(ctx, Target{Channel: ChannelPublic, Slug: "closed-clinic"})
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindForbidden, be.Kind)

	_, err = r.Resolve(ctx, Target{Channel: ChannelPublic, Slug: "nobody"})
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)

	_, err = r.Resolve(ctx, Target{Channel: ChannelPublic, Slug: "happy-paws", LocationID: 77})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)

	scope, err := r.Resolve(ctx, Target{Channel: ChannelPublic, Slug: "happy-paws"})
	require.NoError(t, err)
	assert.Equal(t, uint(2), scope.Location.ID)
	assert.Equal(t, mx.String(), scope.Now.Location().String())
}

func TestCheckSlotConflict(t *testing.T) {
	newUC := func(appts []models.Appointment, times []string) (*CheckSlotConflict, *mockRepo) {
		repo := new(mockRepo)
		onWednesday(repo)
		repo.On("ListBlockingAppointments", mock.Anything, mock.Anything).Return(appts, nil)
		repo.On("ListConfirmedRequestTimes", mock.Anything, uint(1), uint(2), "2025-03-12").Return(times, nil)
		return NewCheckSlotConflict(NewResolver(repo, fixedClock(clockNow))), repo
	}
	ctx := context.Background()

	t.Run("overlapping appointment", func(t *testing.T) {
		uc, _ := newUC([]models.Appointment{appointmentAt("10:00", 90)}, []string{})
		d, err := uc.Execute(ctx, CheckInput{Target: staffTarget(), Date: "2025-03-12", Time: "11:00", Duration: intp(30)})
		require.NoError(t, err)
		assert.False(t, d.Available)
		assert.Equal(t, domain.ConflictAppointment, d.ConflictType)
	})

	t.Run("back to back is free", func(t *testing.T) {
		uc, _ := newUC([]models.Appointment{appointmentAt("10:00", 90)}, []string{})
		d, err := uc.Execute(ctx, CheckInput{Target: staffTarget(), Date: "2025-03-12", Time: "11:30", Duration: intp(30)})
		require.NoError(t, err)
		assert.True(t, d.Available)
	})

	t.Run("confirmed request", func(t *testing.T) {
		uc, _ := newUC([]models.Appointment{}, []string{"16:00"})
		d, err := uc.Execute(ctx, CheckInput{Target: staffTarget(), Date: "2025-03-12", Time: "16:00"})
		require.NoError(t, err)
		assert.Equal(t, domain.ConflictRequest, d.ConflictType)
		assert.NotEmpty(t, d.Reason)
	})

	t.Run("appointment wins over request", func(t *testing.T) {
		uc, _ := newUC([]models.Appointment{appointmentAt("16:00", 30)}, []string{"16:00"})
		d, err := uc.Execute(ctx, CheckInput{Target: staffTarget(), Date: "2025-03-12", Time: "16:00", Duration: intp(30)})
		require.NoError(t, err)
		assert.Equal(t, domain.ConflictAppointment, d.ConflictType)
	})

	t.Run("excluded appointment id is passed through", func(t *testing.T) {
		uc, repo := newUC([]models.Appointment{}, []string{})
		_, err := uc.Execute(ctx, CheckInput{
			Target: staffTarget(), Date: "2025-03-12", Time: "10:00", Duration: intp(30),
			StaffID: uintp(4), ExcludeAppointmentID: uintp(50),
		})
		require.NoError(t, err)
		repo.AssertCalled(t, "ListBlockingAppointments", mock.Anything, mock.MatchedBy(func(q domain.AppointmentQuery) bool {
			return q.ExcludeID != nil && *q.ExcludeID == 50 && q.StaffID != nil && *q.StaffID == 4
		}))
	})
}

func TestCheckSlotConflict_Validation(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTenantByID", mock.Anything, uint(1)).Return(tenant, nil)
	repo.On("GetLocation", mock.Anything, uint(1), uint(2)).Return(location, nil)
	uc := NewCheckSlotConflict(NewResolver(repo, fixedClock(clockNow)))
	ctx := context.Background()

	_, err := uc.Execute(ctx, CheckInput{Target: staffTarget(), Date: "2025-03-12", Time: "25:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidTime)

	_, err = uc.Execute(ctx, CheckInput{Target: staffTarget(), Date: "nope", Time: "10:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = uc.Execute(ctx, CheckInput{Target: staffTarget(), Date: "2025-03-11", Time: "11:30"})
	assert.ErrorIs(t, err, domain.ErrPastDateTime)
}
