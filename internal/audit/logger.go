package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/Ealanisln/vetify-api/internal/models"
)

// Logger is the gorm Sink writing to audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		TenantID: ev.TenantID,
		StaffID:  ev.StaffID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

// Query filters a tenant's audit trail. From and To bound created_at as
// [From, To) when set.
type Query struct {
	TenantID uint
	Action   string
	Entity   string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// List returns one page of entries, newest first, with the unpaged total.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	tx := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("tenant_id = ?", q.TenantID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", q.From.UTC())
	}
	if q.To != nil {
		tx = tx.Where("created_at < ?", q.To.UTC())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&logs).Error
	return logs, total, err
}
