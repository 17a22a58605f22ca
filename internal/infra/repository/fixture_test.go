package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ealanisln/vetify-api/internal/db/dbtest"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type fixture struct {
	db      *gorm.DB
	tenant  models.Tenant
	other   models.Tenant
	loc     models.Location
	branch  models.Location
	cashier models.Staff
	relief  models.Staff
}

func seed(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{db: dbtest.New(t)}

	f.tenant = models.Tenant{Name: "Patitas", Slug: "patitas", Timezone: "America/Mexico_City", PublicBookingEnabled: true}
	f.other = models.Tenant{Name: "Otro", Slug: "otro", Timezone: "America/Mexico_City"}
	require.NoError(t, f.db.Create(&f.tenant).Error)
	require.NoError(t, f.db.Create(&f.other).Error)

	f.branch = models.Location{TenantID: f.tenant.ID, Name: "Sucursal"}
	f.loc = models.Location{TenantID: f.tenant.ID, Name: "Centro", IsPrimary: true}
	require.NoError(t, f.db.Create(&f.branch).Error)
	require.NoError(t, f.db.Create(&f.loc).Error)

	f.cashier = models.Staff{TenantID: f.tenant.ID, Name: "Ana", Role: "RECEPTIONIST", Active: true}
	f.relief = models.Staff{TenantID: f.tenant.ID, Name: "Luis", Role: "RECEPTIONIST", Active: true}
	require.NoError(t, f.db.Create(&f.cashier).Error)
	require.NoError(t, f.db.Create(&f.relief).Error)

	return f
}

// local builds a 2025-03-12 wall-clock time in Mexico City (UTC-6) as UTC.
func local(hour, minute int) time.Time {
	return time.Date(2025, 3, 12, hour+6, minute, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strp(s string) *string { return &s }

func uintp(v uint) *uint { return &v }
