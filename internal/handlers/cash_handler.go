package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/httpresp"
	ucCash "github.com/Ealanisln/vetify-api/internal/usecase/cash"
)

// ======================================================
// HANDLER
// ======================================================

type CashHandler struct {
	openDrawer  *ucCash.OpenDrawer
	closeDrawer *ucCash.CloseDrawer
	startShift  *ucCash.StartShift
	endShift    *ucCash.EndShift
	handoff     *ucCash.Handoff
	record      *ucCash.RecordTransaction
	reports     *ucCash.Reports
}

// CashUseCases groups the ledger operations the handler exposes.
type CashUseCases struct {
	OpenDrawer  *ucCash.OpenDrawer
	CloseDrawer *ucCash.CloseDrawer
	StartShift  *ucCash.StartShift
	EndShift    *ucCash.EndShift
	Handoff     *ucCash.Handoff
	Record      *ucCash.RecordTransaction
	Reports     *ucCash.Reports
}

func NewCashHandler(uc CashUseCases) *CashHandler {
	return &CashHandler{
		openDrawer:  uc.OpenDrawer,
		closeDrawer: uc.CloseDrawer,
		startShift:  uc.StartShift,
		endShift:    uc.EndShift,
		handoff:     uc.Handoff,
		record:      uc.Record,
		reports:     uc.Reports,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Amounts are decimal strings or JSON numbers; pointers tell a missing
// amount apart from zero.

type OpenDrawerRequest struct {
	LocationID    uint             `json:"location_id" binding:"required"`
	InitialAmount *decimal.Decimal `json:"initial_amount" binding:"required"`
}

type CloseDrawerRequest struct {
	FinalAmount *decimal.Decimal `json:"final_amount" binding:"required"`
}

type RecordTransactionRequest struct {
	Type        string           `json:"type" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description"`
}

// StartShiftRequest opens a shift for CashierID, or for the caller when
// it is omitted.
type StartShiftRequest struct {
	DrawerID        uint             `json:"drawer_id" binding:"required"`
	CashierID       uint             `json:"cashier_id"`
	StartingBalance *decimal.Decimal `json:"starting_balance" binding:"required"`
}

type EndShiftRequest struct {
	EndingBalance *decimal.Decimal `json:"ending_balance" binding:"required"`
}

type HandoffRequest struct {
	ToCashierID    uint             `json:"to_cashier_id" binding:"required"`
	VerifiedAmount *decimal.Decimal `json:"verified_amount" binding:"required"`
}

type StatsQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// ======================================================
// DRAWERS
// ======================================================

func (h *CashHandler) OpenDrawer(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	var req OpenDrawerRequest
	if !bindJSON(c, &req) {
		return
	}

	drawer, err := h.openDrawer.Execute(c.Request.Context(), ucCash.OpenDrawerInput{
		TenantID:      tenantID,
		LocationID:    req.LocationID,
		InitialAmount: *req.InitialAmount,
		By:            staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, drawer)
}

func (h *CashHandler) CloseDrawer(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CloseDrawerRequest
	if !bindJSON(c, &req) {
		return
	}

	drawer, err := h.closeDrawer.Execute(c.Request.Context(), ucCash.CloseDrawerInput{
		TenantID:    tenantID,
		DrawerID:    id,
		FinalAmount: *req.FinalAmount,
		By:          staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, drawer)
}

func (h *CashHandler) RecordTransaction(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RecordTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.record.Execute(c.Request.Context(), ucCash.RecordTransactionInput{
		TenantID:    tenantID,
		DrawerID:    id,
		Type:        req.Type,
		Amount:      *req.Amount,
		Description: req.Description,
		By:          staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, tx)
}

func (h *CashHandler) DrawerBalance(c *gin.Context) {
	tenantID, _ := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	balance, err := h.reports.DrawerBalance(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, balance)
}

func (h *CashHandler) Breakdown(c *gin.Context) {
	tenantID, _ := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	breakdown, err := h.reports.Breakdown(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, breakdown)
}

// ======================================================
// SHIFTS
// ======================================================

func (h *CashHandler) StartShift(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	var req StartShiftRequest
	if !bindJSON(c, &req) {
		return
	}

	cashierID := req.CashierID
	if cashierID == 0 {
		cashierID = staffID
	}

	shift, err := h.startShift.Execute(c.Request.Context(), ucCash.StartShiftInput{
		TenantID:        tenantID,
		DrawerID:        req.DrawerID,
		CashierID:       cashierID,
		StartingBalance: *req.StartingBalance,
		By:              staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, shift)
}

func (h *CashHandler) EndShift(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req EndShiftRequest
	if !bindJSON(c, &req) {
		return
	}

	shift, err := h.endShift.Execute(c.Request.Context(), ucCash.EndShiftInput{
		TenantID:      tenantID,
		ShiftID:       id,
		EndingBalance: *req.EndingBalance,
		By:            staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, shift)
}

func (h *CashHandler) Handoff(c *gin.Context) {
	tenantID, staffID := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req HandoffRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.handoff.Execute(c.Request.Context(), ucCash.HandoffInput{
		TenantID:       tenantID,
		ShiftID:        id,
		ToCashierID:    req.ToCashierID,
		VerifiedAmount: *req.VerifiedAmount,
		By:             staffID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *CashHandler) ShiftBalance(c *gin.Context) {
	tenantID, _ := staffScope(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	balance, err := h.reports.ShiftBalance(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, balance)
}

func (h *CashHandler) Stats(c *gin.Context) {
	tenantID, _ := staffScope(c)

	var q StatsQuery
	if !bindQuery(c, &q) {
		return
	}

	stats, err := h.reports.DiscrepancyStats(c.Request.Context(), tenantID, q.From, q.To)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, stats)
}
