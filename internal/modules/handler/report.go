package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/modules/service"
	"github.com/tpdc055/connectpng/internal/pkg/export"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) filters(c *gin.Context) (service.ReportFilters, error) {
	var f service.ReportFilters

	var err error
	if f.ProjectID, err = optUUID(c, "projectId"); err != nil {
		return f, fmt.Errorf("invalid projectId: %w", err)
	}
	if f.ProvinceID, err = optUUID(c, "provinceId"); err != nil {
		return f, fmt.Errorf("invalid provinceId: %w", err)
	}
	if f.ContractorID, err = optUUID(c, "contractorId"); err != nil {
		return f, fmt.Errorf("invalid contractorId: %w", err)
	}
	if f.StartDate, err = optTime(c, "startDate"); err != nil {
		return f, fmt.Errorf("invalid startDate: %w", err)
	}
	if f.EndDate, err = optEndTime(c, "endDate"); err != nil {
		return f, fmt.Errorf("invalid endDate: %w", err)
	}
	return f, nil
}

// Generate godoc
//
//	@Summary	Assemble an aggregated report
//	@Tags		reports
//	@Produce	json
//	@Security	BearerAuth
//	@Param		type	query		string	true	"overview|progress|contractor|province|gps|financial"
//	@Success	200		{object}	service.Report
//	@Router		/api/v1/reports [get]
func (h *ReportHandler) Generate(c *gin.Context) {
	f, err := h.filters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
		return
	}

	report, err := h.svc.Generate(c.Request.Context(), c.Query("type"), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Export serializes an assembled report as a JSON or CSV download.
func (h *ReportHandler) Export(c *gin.Context) {
	f, err := h.filters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
		return
	}

	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		respondErr(c, service.ErrUnknownFormat)
		return
	}

	report, err := h.svc.Generate(c.Request.Context(), c.Query("type"), f)
	if err != nil {
		respondErr(c, err)
		return
	}

	filename := fmt.Sprintf("%s-report-%s.%s", report.ReportType, time.Now().UTC().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "csv":
		tabular, ok := report.Data.(export.Tabular)
		if !ok {
			respondErr(c, service.ErrUnknownFormat)
			return
		}
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := export.WriteCSV(c.Writer, tabular.Sections()); err != nil {
			_ = c.Error(err)
		}
	default:
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.Status(http.StatusOK)
		if err := export.WriteJSON(c.Writer, report); err != nil {
			_ = c.Error(err)
		}
	}
}
