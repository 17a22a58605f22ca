package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/httpresp"
	ucAppointment "github.com/Ealanisln/vetify-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucAppointment.Book
	reschedule *ucAppointment.Reschedule
	cancel     *ucAppointment.CancelAppointment
	complete   *ucAppointment.CompleteAppointment
	noShow     *ucAppointment.MarkNoShow
	listByDate *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	book *ucAppointment.Book,
	reschedule *ucAppointment.Reschedule,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	noShow *ucAppointment.MarkNoShow,
	listByDate *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		reschedule: reschedule,
		cancel:     cancel,
		complete:   complete,
		noShow:     noShow,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	LocationID uint   `json:"location_id"`
	StaffID    *uint  `json:"staff_id"`
	PetID      uint   `json:"pet_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Duration   *int   `json:"duration"`
	Reason     string `json:"reason"`
}

type RescheduleAppointmentRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Duration *int   `json:"duration"`
}

// CancelAppointmentRequest defaults to a clinic-side cancellation.
type CancelAppointmentRequest struct {
	Status string `json:"status"`
}

type ListAppointmentsQuery struct {
	Date       string `form:"date" binding:"required"`
	LocationID uint   `form:"location_id"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		TenantID:   tenantID,
		LocationID: req.LocationID,
		StaffID:    req.StaffID,
		PetID:      req.PetID,
		Date:       req.Date,
		Time:       req.Time,
		Duration:   req.Duration,
		Reason:     req.Reason,
		CreatedBy:  staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		TenantID:      tenantID,
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      req.Duration,
		By:            staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	// an empty body is a clinic cancellation
	var req CancelAppointmentRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	if req.Status == "" {
		req.Status = domain.StatusCancelledClinic
	}

	ap, err := h.cancel.Execute(c.Request.Context(), tenantID, staffID, id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), tenantID, staffID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), tenantID, staffID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	tenantID, _ := staffScope(c)

	var q ListAppointmentsQuery
	if !bindQuery(c, &q) {
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), tenantID, q.LocationID, q.Date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}
