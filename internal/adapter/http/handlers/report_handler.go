package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestorpro/internal/usecase"
	"gestorpro/pkg"
)

// ReportHandler serves the dashboard, the financial report and the activity log.
type ReportHandler struct {
	dashboard usecase.IDashboard
	reports   usecase.IFinancialReports
	activity  usecase.IActivityLog
}

func NewReportHandler(dashboard usecase.IDashboard, reports usecase.IFinancialReports, activity usecase.IActivityLog) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, reports: reports, activity: activity}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.dashboard.Overview(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// Financial godoc
// @Summary   Income and expenses for a date range
// @Tags      reports
// @Security  Bearer
// @Produce   json
// @Param     start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param     end    query     string  true  "End date (YYYY-MM-DD)"
// @Success   200    {object}  usecase.FinancialReport
// @Failure   400    {object}  pkg.HTTPError
// @Router    /reports/financial [get]
func (h *ReportHandler) Financial(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	report, err := h.reports.Generate(c.Request.Context(), actor, c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) ActivityLog(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	entries, err := h.activity.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, entries)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportRange):
		return pkg.NewDomainErrorSimple("INVALID_RANGE", "Report needs a valid start and end date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportsForbidden), errors.Is(err, usecase.ErrActivityLogForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role is not allowed to perform this action", http.StatusForbidden)
	default:
		return internalError(err)
	}
}
