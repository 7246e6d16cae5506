package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

const exportFilename = "relatorio_agendamentos.csv"

// ReportHandler serves the dashboard and the report page.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type monthCountResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type dashboardResponse struct {
	Total     int                  `json:"total"`
	Scheduled int                  `json:"scheduled"`
	Completed int                  `json:"completed"`
	Canceled  int                  `json:"canceled"`
	ByMonth   []monthCountResponse `json:"byMonth"`
}

// Dashboard handles GET /v1/dashboard.
//
// @Summary      Dashboard summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	sum, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	resp := dashboardResponse{
		Total:     sum.Total,
		Scheduled: sum.Scheduled,
		Completed: sum.Completed,
		Canceled:  sum.Canceled,
		ByMonth:   make([]monthCountResponse, len(sum.ByMonth)),
	}
	for i, m := range sum.ByMonth {
		resp.ByMonth[i] = monthCountResponse{Month: m.Month, Count: m.Count}
	}
	return c.JSON(http.StatusOK, resp)
}

// Filter handles GET /v1/reports.
//
// @Summary      Filter appointments for a report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query     string  false  "First day (YYYY-MM-DD)"
// @Param        endDate    query     string  false  "Last day, inclusive (YYYY-MM-DD)"
// @Param        reason     query     string  false  "Exact reason"
// @Param        scheduler  query     string  false  "Scheduler name contains"
// @Success      200        {array}   domain.Appointment
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Router       /v1/reports [get]
func (h *ReportHandler) Filter(c echo.Context) error {
	f, err := reportFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	appointments, err := h.service.Filter(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Export handles GET /v1/reports/export with the same filters as Filter.
//
// @Summary      Export a report as CSV
// @Tags         reports
// @Produce      text/csv
// @Security     BearerAuth
// @Param        startDate  query     string  false  "First day (YYYY-MM-DD)"
// @Param        endDate    query     string  false  "Last day, inclusive (YYYY-MM-DD)"
// @Param        reason     query     string  false  "Exact reason"
// @Param        scheduler  query     string  false  "Scheduler name contains"
// @Success      200        {file}    file
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Router       /v1/reports/export [get]
func (h *ReportHandler) Export(c echo.Context) error {
	f, err := reportFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	csv, err := h.service.ExportCSV(c.Request().Context(), f)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportFilename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", csv)
}

func reportFilter(c echo.Context) (ports.ReportFilter, error) {
	var f ports.ReportFilter

	if v := c.QueryParam("startDate"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return f, fmt.Errorf("startDate must be YYYY-MM-DD")
		}
		f.StartDate = d
	}
	if v := c.QueryParam("endDate"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return f, fmt.Errorf("endDate must be YYYY-MM-DD")
		}
		f.EndDate = d
	}
	if v := c.QueryParam("reason"); v != "" {
		if !domain.Reason(v).Valid() {
			return f, fmt.Errorf("reason is not a known reason")
		}
		f.Reason = domain.Reason(v)
	}
	f.Scheduler = c.QueryParam("scheduler")
	return f, nil
}
