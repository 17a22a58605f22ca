package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ealanisln/vetify-api/internal/audit"
	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

type AuditLogsQuery struct {
	Action string `form:"action"`
	Entity string `form:"entity"`
	From   string `form:"from"`
	To     string `form:"to"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// List pages through the tenant's audit trail. from and to are UTC dates,
// both inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	tenantID, _ := staffScope(c)

	var q AuditLogsQuery
	if !bindQuery(c, &q) {
		return
	}

	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}

	query := audit.Query{
		TenantID: tenantID,
		Action:   q.Action,
		Entity:   q.Entity,
		Limit:    q.Limit,
		Offset:   (q.Page - 1) * q.Limit,
	}

	if q.From != "" {
		from, err := time.Parse(time.DateOnly, q.From)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
			return
		}
		query.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(time.DateOnly, q.To)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
			return
		}
		to = to.AddDate(0, 0, 1)
		query.To = &to
	}

	logs, total, err := h.logs.List(c.Request.Context(), query)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, total, q.Page, q.Limit)
}
