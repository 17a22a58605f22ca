package appointment

import (
	"context"
	"time"

	"github.com/Ealanisln/vetify-api/internal/models"
)

type RequestFilter struct {
	TenantID uint
	Status   string
	From     string
	To       string
}

// Repository persists appointments and public requests. Writes that claim a
// time interval re-run the conflict check inside the same transaction.
type Repository interface {
	GetAppointment(ctx context.Context, tenantID, id uint) (*models.Appointment, error)
	// ListAppointments returns every appointment of the location starting
	// in [from, to), ordered by start.
	ListAppointments(ctx context.Context, tenantID, locationID uint, from, to time.Time) ([]models.Appointment, error)
	// CreateAppointment inserts a when no blocking appointment overlaps it
	// and no confirmed request holds its start time; otherwise it returns
	// ErrSlotConflict and writes nothing.
	CreateAppointment(ctx context.Context, a *models.Appointment, localDate, localTime string) error
	// RescheduleAppointment moves a to its new StartsAt/DurationMinutes under
	// the same check, ignoring a itself.
	RescheduleAppointment(ctx context.Context, a *models.Appointment, localDate, localTime string) error
	// UpdateStatus is a compare-and-swap: it only applies while the stored
	// status is still fromStatus.
	UpdateStatus(ctx context.Context, a *models.Appointment, fromStatus string) error

	GetRequest(ctx context.Context, tenantID, id uint) (*models.AppointmentRequest, error)
	CreateRequest(ctx context.Context, r *models.AppointmentRequest) error
	ListRequests(ctx context.Context, f RequestFilter) ([]models.AppointmentRequest, error)
	// ConfirmRequest creates a and flips r to CONFIRMED in one transaction.
	ConfirmRequest(ctx context.Context, r *models.AppointmentRequest, a *models.Appointment, localDate, localTime string) error
	UpdateRequestStatus(ctx context.Context, r *models.AppointmentRequest, fromStatus string) error
	// ExpireRequests marks PENDING requests of tenantID dated before
	// beforeDate as EXPIRED and returns how many changed.
	ExpireRequests(ctx context.Context, tenantID uint, beforeDate string) (int64, error)
	ListTenants(ctx context.Context) ([]models.Tenant, error)
}
