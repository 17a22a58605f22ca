package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Ealanisln/vetify-api/internal/domain/availability"
	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/httpresp"
	ucAvailability "github.com/Ealanisln/vetify-api/internal/usecase/availability"
)

type BusinessHoursHandler struct {
	hours *ucAvailability.BusinessHours
}

func NewBusinessHoursHandler(hours *ucAvailability.BusinessHours) *BusinessHoursHandler {
	return &BusinessHoursHandler{hours: hours}
}

// HoursConfig is one day's rule as sent by the settings screen. Closed days
// may omit every time.
type HoursConfig struct {
	IsOpen       bool    `json:"is_open"`
	OpenTime     *string `json:"open_time"`
	CloseTime    *string `json:"close_time"`
	BreakStart   *string `json:"break_start"`
	BreakEnd     *string `json:"break_end"`
	SlotDuration int     `json:"slot_duration"`
}

func (h HoursConfig) toDomain() domain.Hours {
	return domain.Hours{
		IsOpen:       h.IsOpen,
		OpenTime:     h.OpenTime,
		CloseTime:    h.CloseTime,
		BreakStart:   h.BreakStart,
		BreakEnd:     h.BreakEnd,
		SlotDuration: h.SlotDuration,
	}
}

type DayConfig struct {
	DayOfWeek int `json:"day_of_week" binding:"min=0,max=6"`
	HoursConfig
}

type BusinessHoursUpdateRequest struct {
	LocationID uint        `json:"location_id"`
	Days       []DayConfig `json:"days" binding:"required,dive"`
}

type OverrideRequest struct {
	LocationID uint   `json:"location_id"`
	Date       string `json:"date" binding:"required"`
	Reason     string `json:"reason"`
	HoursConfig
}

type BusinessHoursQuery struct {
	LocationID uint `form:"location_id"`
}

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	tenantID, _ := staffScope(c)

	var q BusinessHoursQuery
	if !bindQuery(c, &q) {
		return
	}

	schedule, err := h.hours.Get(c.Request.Context(), tenantID, q.LocationID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, schedule)
}

// Update replaces the whole week; days left out become closed.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	var req BusinessHoursUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	days := make([]ucAvailability.DayHours, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, ucAvailability.DayHours{
			DayOfWeek: d.DayOfWeek,
			Hours:     d.toDomain(),
		})
	}

	week, err := h.hours.ReplaceWeek(c.Request.Context(), tenantID, req.LocationID, staffID, days)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, week)
}

func (h *BusinessHoursHandler) SetOverride(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	var req OverrideRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.hours.SetOverride(c.Request.Context(), tenantID, req.LocationID, staffID, ucAvailability.OverrideInput{
		Date:   req.Date,
		Reason: req.Reason,
		Hours:  req.toDomain(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, o)
}
