package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	tenantID uint,
	locationID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"tenant_id = ? AND location_id = ? AND starts_at >= ? AND starts_at < ?",
			tenantID, locationID, from.UTC(), to.UTC(),
		).
		Order("starts_at ASC").
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	localDate string,
	localTime string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimSlot(tx, ap, localDate, localTime); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
	localDate string,
	localTime string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimSlot(tx, ap, localDate, localTime); err != nil {
			return err
		}

		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND tenant_id = ? AND status IN ?",
				ap.ID, ap.TenantID, []string{domain.StatusScheduled, domain.StatusConfirmed}).
			Updates(map[string]any{
				"starts_at":        ap.StartsAt.UTC(),
				"duration_minutes": ap.DurationMinutes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotOpen
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment (Cancel / Complete / No-show)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ap *models.Appointment,
	fromStatus string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND tenant_id = ? AND status = ?", ap.ID, ap.TenantID, fromStatus).
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotOpen
	}
	return nil
}

// --------------------------------------------------
// Requests
// --------------------------------------------------

func (r *AppointmentGormRepository) GetRequest(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.AppointmentRequest, error) {

	var req models.AppointmentRequest
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *AppointmentGormRepository) CreateRequest(
	ctx context.Context,
	req *models.AppointmentRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *AppointmentGormRepository) ListRequests(
	ctx context.Context,
	f domain.RequestFilter,
) ([]models.AppointmentRequest, error) {

	query := r.db.WithContext(ctx).Where("tenant_id = ?", f.TenantID)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.From != "" {
		query = query.Where("preferred_date >= ?", f.From)
	}
	if f.To != "" {
		query = query.Where("preferred_date <= ?", f.To)
	}

	var out []models.AppointmentRequest
	if err := query.
		Order("preferred_date ASC").
		Order("preferred_time ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmRequest rolls the appointment back when the request stopped being
// PENDING in the meantime.
func (r *AppointmentGormRepository) ConfirmRequest(
	ctx context.Context,
	req *models.AppointmentRequest,
	ap *models.Appointment,
	localDate string,
	localTime string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimSlot(tx, ap, localDate, localTime); err != nil {
			return err
		}
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		req.AppointmentID = &ap.ID
		res := tx.Model(&models.AppointmentRequest{}).
			Where("id = ? AND tenant_id = ? AND status = ?", req.ID, req.TenantID, domain.RequestPending).
			Updates(map[string]any{
				"status":         req.Status,
				"preferred_time": req.PreferredTime,
				"appointment_id": ap.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRequestNotPending
		}
		return nil
	})
}

func (r *AppointmentGormRepository) UpdateRequestStatus(
	ctx context.Context,
	req *models.AppointmentRequest,
	fromStatus string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AppointmentRequest{}).
		Where("id = ? AND tenant_id = ? AND status = ?", req.ID, req.TenantID, fromStatus).
		Update("status", req.Status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRequestNotPending
	}
	return nil
}

func (r *AppointmentGormRepository) ExpireRequests(
	ctx context.Context,
	tenantID uint,
	beforeDate string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.AppointmentRequest{}).
		Where("tenant_id = ? AND status = ? AND preferred_date < ?", tenantID, domain.RequestPending, beforeDate).
		Update("status", domain.RequestExpired)
	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
