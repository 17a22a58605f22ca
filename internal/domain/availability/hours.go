package availability

import (
	"context"

	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/models"
)

var (
	ErrInvalidHours = httperr.ErrValidation("invalid_business_hours", "Business hours are invalid.")
	ErrDuplicateDay = httperr.ErrValidation("duplicate_day", "Each day of the week can only be listed once.")
)

// HoursRepository stores the schedule configuration of a location.
type HoursRepository interface {
	ListBusinessHours(ctx context.Context, tenantID, locationID uint) ([]models.BusinessHours, error)
	ReplaceBusinessHours(ctx context.Context, tenantID, locationID uint, week []models.BusinessHours) error
	ListOverrides(ctx context.Context, tenantID, locationID uint, fromDate string) ([]models.BusinessHoursOverride, error)
	UpsertOverride(ctx context.Context, o *models.BusinessHoursOverride) error
}

// Hours is the writable part shared by weekly rules and date overrides.
type Hours struct {
	IsOpen       bool
	OpenTime     *string
	CloseTime    *string
	BreakStart   *string
	BreakEnd     *string
	SlotDuration int
}

// Normalize validates h and clears every time field of a closed day.
func (h Hours) Normalize() (Hours, error) {
	if !h.IsOpen {
		slot := h.SlotDuration
		if slot <= 0 {
			slot = DefaultSlotDuration
		}
		return Hours{SlotDuration: slot}, nil
	}

	if h.OpenTime == nil || h.CloseTime == nil {
		return Hours{}, ErrInvalidHours
	}
	if h.SlotDuration < 0 {
		return Hours{}, ErrInvalidDuration
	}
	w, err := NewWindow(*h.OpenTime, *h.CloseTime, h.BreakStart, h.BreakEnd, h.SlotDuration)
	if err != nil {
		return Hours{}, httperr.ErrValidation("invalid_business_hours", err.Error())
	}

	v := w.View()
	return Hours{
		IsOpen:       true,
		OpenTime:     &v.Open,
		CloseTime:    &v.Close,
		BreakStart:   v.BreakStart,
		BreakEnd:     v.BreakEnd,
		SlotDuration: w.SlotDuration,
	}, nil
}
