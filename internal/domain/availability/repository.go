package availability

import (
	"context"
	"time"

	"github.com/Ealanisln/vetify-api/internal/models"
)

// AppointmentQuery selects blocking appointments starting in [From, To).
type AppointmentQuery struct {
	TenantID   uint
	LocationID uint
	StaffID    *uint
	From       time.Time
	To         time.Time
	ExcludeID  *uint
}

// Repository reads the facts availability is computed from. Lookups of a
// single record return gorm.ErrRecordNotFound when nothing matches.
type Repository interface {
	GetTenantByID(ctx context.Context, id uint) (*models.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	GetLocation(ctx context.Context, tenantID, locationID uint) (*models.Location, error)
	GetPrimaryLocation(ctx context.Context, tenantID uint) (*models.Location, error)

	GetBusinessHours(ctx context.Context, tenantID, locationID uint, dayOfWeek int) (*models.BusinessHours, error)
	GetBusinessHoursOverride(ctx context.Context, tenantID, locationID uint, date string) (*models.BusinessHoursOverride, error)

	ListBlockingAppointments(ctx context.Context, q AppointmentQuery) ([]models.Appointment, error)
	// ListConfirmedRequestTimes returns the "HH:MM" preferred times of the
	// CONFIRMED requests on date.
	ListConfirmedRequestTimes(ctx context.Context, tenantID, locationID uint, date string) ([]string, error)
}
