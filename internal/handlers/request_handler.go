package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/httpresp"
	ucAppointment "github.com/Ealanisln/vetify-api/internal/usecase/appointment"
)

// RequestHandler serves booking requests: submitted on the public page,
// then confirmed or rejected by staff.
type RequestHandler struct {
	submit  *ucAppointment.SubmitRequest
	list    *ucAppointment.ListRequests
	confirm *ucAppointment.ConfirmRequest
	reject  *ucAppointment.RejectRequest
}

func NewRequestHandler(
	submit *ucAppointment.SubmitRequest,
	list *ucAppointment.ListRequests,
	confirm *ucAppointment.ConfirmRequest,
	reject *ucAppointment.RejectRequest,
) *RequestHandler {
	return &RequestHandler{
		submit:  submit,
		list:    list,
		confirm: confirm,
		reject:  reject,
	}
}

type SubmitRequestBody struct {
	LocationID   uint    `json:"location_id"`
	Date         string  `json:"date" binding:"required"`
	Time         *string `json:"time"`
	ContactName  string  `json:"contact_name"`
	ContactPhone string  `json:"contact_phone"`
	ContactEmail string  `json:"contact_email"`
	PetName      string  `json:"pet_name"`
	Notes        string  `json:"notes"`
}

type ConfirmRequestBody struct {
	PetID    uint    `json:"pet_id" binding:"required"`
	StaffID  *uint   `json:"staff_id"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration"`
}

type ListRequestsQuery struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
}

func (h *RequestHandler) Submit(c *gin.Context) {
	var req SubmitRequestBody
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.submit.Execute(c.Request.Context(), ucAppointment.SubmitRequestInput{
		Slug:         c.Param("slug"),
		LocationID:   req.LocationID,
		Date:         req.Date,
		Time:         req.Time,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		PetName:      req.PetName,
		Notes:        req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *RequestHandler) List(c *gin.Context) {
	tenantID, _ := staffScope(c)

	var q ListRequestsQuery
	if !bindQuery(c, &q) {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), domain.RequestFilter{
		TenantID: tenantID,
		Status:   q.Status,
		From:     q.From,
		To:       q.To,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *RequestHandler) Confirm(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ConfirmRequestBody
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), ucAppointment.ConfirmRequestInput{
		TenantID:  tenantID,
		RequestID: id,
		PetID:     req.PetID,
		StaffID:   req.StaffID,
		Time:      req.Time,
		Duration:  req.Duration,
		By:        staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *RequestHandler) Reject(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	req, err := h.reject.Execute(c.Request.Context(), tenantID, staffID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, req)
}
