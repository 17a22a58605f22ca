package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Ealanisln/vetify-api/internal/config"
	"github.com/Ealanisln/vetify-api/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// exclusivityIndexes back the "at most one" invariants of the cash ledger.
// Concurrent writers that slip past the application check hit these.
var exclusivityIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_cash_drawers_open_location
		ON cash_drawers (tenant_id, location_id) WHERE status = 'OPEN'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_cash_shifts_active_drawer
		ON cash_shifts (drawer_id) WHERE status = 'ACTIVE'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_cash_shifts_active_cashier
		ON cash_shifts (cashier_id) WHERE status = 'ACTIVE'`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.Location{},
		&models.Staff{},
		&models.BusinessHours{},
		&models.BusinessHoursOverride{},
		&models.Appointment{},
		&models.AppointmentRequest{},
		&models.CashDrawer{},
		&models.CashShift{},
		&models.CashTransaction{},
		&models.Sale{},
		&models.SalePayment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range exclusivityIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
