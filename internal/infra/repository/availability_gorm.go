package repository

import (
	"context"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apptdomain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	domain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Tenant / Location
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetTenantByID(ctx context.Context, id uint) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *AvailabilityGormRepository) GetTenantBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *AvailabilityGormRepository) GetLocation(ctx context.Context, tenantID, locationID uint) (*models.Location, error) {
	return findLocation(r.db.WithContext(ctx), tenantID, locationID)
}

// GetPrimaryLocation falls back to the oldest location when none is flagged.
func (r *AvailabilityGormRepository) GetPrimaryLocation(ctx context.Context, tenantID uint) (*models.Location, error) {
	var loc models.Location
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("is_primary DESC").
		Order("id ASC").
		First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// --------------------------------------------------
// Business hours
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetBusinessHours(ctx context.Context, tenantID, locationID uint, dayOfWeek int) (*models.BusinessHours, error) {
	var bh models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND location_id = ? AND day_of_week = ?", tenantID, locationID, dayOfWeek).
		First(&bh).Error; err != nil {
		return nil, err
	}
	return &bh, nil
}

func (r *AvailabilityGormRepository) GetBusinessHoursOverride(ctx context.Context, tenantID, locationID uint, date string) (*models.BusinessHoursOverride, error) {
	var o models.BusinessHoursOverride
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND location_id = ? AND date = ?", tenantID, locationID, date).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *AvailabilityGormRepository) ListBusinessHours(ctx context.Context, tenantID, locationID uint) ([]models.BusinessHours, error) {
	var hours []models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND location_id = ?", tenantID, locationID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// ReplaceBusinessHours swaps the whole weekly schedule of a location.
func (r *AvailabilityGormRepository) ReplaceBusinessHours(ctx context.Context, tenantID, locationID uint, week []models.BusinessHours) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tenant_id = ? AND location_id = ?", tenantID, locationID).
			Delete(&models.BusinessHours{}).Error; err != nil {
			return err
		}
		if len(week) == 0 {
			return nil
		}
		return tx.Create(&week).Error
	})
}

func (r *AvailabilityGormRepository) ListOverrides(ctx context.Context, tenantID, locationID uint, fromDate string) ([]models.BusinessHoursOverride, error) {
	var out []models.BusinessHoursOverride
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND location_id = ? AND date >= ?", tenantID, locationID, fromDate).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertOverride keeps one override per location and date.
func (r *AvailabilityGormRepository) UpsertOverride(ctx context.Context, o *models.BusinessHoursOverride) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "location_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_open", "open_time", "close_time", "break_start", "break_end",
				"slot_duration", "reason", "updated_at",
			}),
		}).
		Create(o).Error
}

// --------------------------------------------------
// Commitments
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListBlockingAppointments(ctx context.Context, q domain.AppointmentQuery) ([]models.Appointment, error) {
	return blockingAppointments(r.db.WithContext(ctx), q)
}

func (r *AvailabilityGormRepository) ListConfirmedRequestTimes(ctx context.Context, tenantID, locationID uint, date string) ([]string, error) {
	return confirmedRequestTimes(r.db.WithContext(ctx), tenantID, locationID, date)
}

// --------------------------------------------------
// Shared queries (also run inside write transactions)
// --------------------------------------------------

func findLocation(db *gorm.DB, tenantID, locationID uint) (*models.Location, error) {
	var loc models.Location
	if err := db.
		Where("id = ? AND tenant_id = ?", locationID, tenantID).
		First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func blockingAppointments(db *gorm.DB, q domain.AppointmentQuery) ([]models.Appointment, error) {
	query := db.
		Where("tenant_id = ? AND location_id = ?", q.TenantID, q.LocationID).
		Where("status NOT IN ?", apptdomain.NonBlockingStatuses).
		Where("starts_at >= ? AND starts_at < ?", q.From.UTC(), q.To.UTC())

	if q.StaffID != nil {
		query = query.Where("staff_id = ?", *q.StaffID)
	}
	if q.ExcludeID != nil {
		query = query.Where("id <> ?", *q.ExcludeID)
	}

	var apps []models.Appointment
	if err := query.Order("starts_at ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func confirmedRequestTimes(db *gorm.DB, tenantID, locationID uint, date string) ([]string, error) {
	var times []string
	if err := db.
		Model(&models.AppointmentRequest{}).
		Where("tenant_id = ? AND location_id = ? AND preferred_date = ? AND status = ?",
			tenantID, locationID, date, apptdomain.RequestConfirmed).
		Where("preferred_time IS NOT NULL").
		Order("preferred_time ASC").
		Pluck("preferred_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// claimSlot runs the conflict check for a inside tx. Commits for the same
// location are serialised by locking its row first. localDate and localTime
// are a's start in tenant-local civil form.
func claimSlot(tx *gorm.DB, a *models.Appointment, localDate, localTime string) error {
	var loc models.Location
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND tenant_id = ?", a.LocationID, a.TenantID).
		First(&loc).Error; err != nil {
		return err
	}

	q := domain.AppointmentQuery{
		TenantID:   a.TenantID,
		LocationID: a.LocationID,
		StaffID:    a.StaffID,
		From:       a.StartsAt.Add(-24 * time.Hour),
		To:         a.EndsAt(),
	}
	if a.ID != 0 {
		q.ExcludeID = &a.ID
	}

	appts, err := blockingAppointments(tx, q)
	if err != nil {
		return err
	}
	times, err := confirmedRequestTimes(tx, a.TenantID, a.LocationID, localDate)
	if err != nil {
		return err
	}

	if ct := domain.ConflictFor(a.StartsAt, a.DurationMinutes, appts, nil); ct != domain.ConflictNone {
		return domain.SlotConflict(ct)
	}
	if slices.Contains(times, localTime) {
		return domain.SlotConflict(domain.ConflictRequest)
	}
	return nil
}

var (
	_ domain.Repository      = (*AvailabilityGormRepository)(nil)
	_ domain.HoursRepository = (*AvailabilityGormRepository)(nil)
)
