package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/httpresp"
	ucAvailability "github.com/Ealanisln/vetify-api/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

// AvailabilityHandler serves the same engine to staff, scoped by token, and
// to the public booking page, scoped by clinic slug.
type AvailabilityHandler struct {
	slots *ucAvailability.GetAvailableSlots
	check *ucAvailability.CheckSlotConflict
}

func NewAvailabilityHandler(
	slots *ucAvailability.GetAvailableSlots,
	check *ucAvailability.CheckSlotConflict,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		slots: slots,
		check: check,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SlotsQuery struct {
	Date       string `form:"date" binding:"required"`
	LocationID uint   `form:"location_id"`
	StaffID    *uint  `form:"staff_id"`
	Duration   *int   `form:"duration"`
}

type CheckSlotRequest struct {
	LocationID uint   `json:"location_id"`
	StaffID    *uint  `json:"staff_id"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Duration   *int   `json:"duration"`

	// ExcludeAppointmentID lets a reschedule ignore its own appointment.
	// The public channel never honours it.
	ExcludeAppointmentID *uint `json:"exclude_appointment_id"`
}

// ======================================================
// STAFF
// ======================================================

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	tenantID, _ := staffScope(c)
	h.slotsFor(c, ucAvailability.Target{
		Channel:  ucAvailability.ChannelStaff,
		TenantID: tenantID,
	})
}

func (h *AvailabilityHandler) Check(c *gin.Context) {
	tenantID, _ := staffScope(c)

	var req CheckSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	h.checkFor(c, ucAvailability.Target{
		Channel:    ucAvailability.ChannelStaff,
		TenantID:   tenantID,
		LocationID: req.LocationID,
	}, req, req.ExcludeAppointmentID)
}

// ======================================================
// PUBLIC
// ======================================================

func (h *AvailabilityHandler) PublicSlots(c *gin.Context) {
	h.slotsFor(c, ucAvailability.Target{
		Channel: ucAvailability.ChannelPublic,
		Slug:    c.Param("slug"),
	})
}

func (h *AvailabilityHandler) PublicCheck(c *gin.Context) {
	var req CheckSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	h.checkFor(c, ucAvailability.Target{
		Channel:    ucAvailability.ChannelPublic,
		Slug:       c.Param("slug"),
		LocationID: req.LocationID,
	}, req, nil)
}

// ======================================================
// SHARED
// ======================================================

func (h *AvailabilityHandler) slotsFor(c *gin.Context, target ucAvailability.Target) {
	var q SlotsQuery
	if !bindQuery(c, &q) {
		return
	}
	target.LocationID = q.LocationID

	res, err := h.slots.Execute(c.Request.Context(), ucAvailability.SlotsInput{
		Target:   target,
		StaffID:  q.StaffID,
		Date:     q.Date,
		Duration: q.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AvailabilityHandler) checkFor(
	c *gin.Context,
	target ucAvailability.Target,
	req CheckSlotRequest,
	exclude *uint,
) {
	decision, err := h.check.Execute(c.Request.Context(), ucAvailability.CheckInput{
		Target:               target,
		StaffID:              req.StaffID,
		Date:                 req.Date,
		Time:                 req.Time,
		Duration:             req.Duration,
		ExcludeAppointmentID: exclude,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, decision)
}
