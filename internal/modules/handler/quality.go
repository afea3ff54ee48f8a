package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tpdc055/connectpng/internal/middleware"
	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

type QualityHandler struct {
	svc service.QualityService
}

func NewQualityHandler(svc service.QualityService) *QualityHandler {
	return &QualityHandler{svc: svc}
}

func (h *QualityHandler) CreateReport(c *gin.Context) {
	var req service.CreateQualityReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user := middleware.CurrentUser(c)
	req.InspectorID = &user.ID

	report, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *QualityHandler) GetReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	report, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *QualityHandler) UpdateReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateQualityReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	report, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *QualityHandler) DeleteReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QualityHandler) ListReports(c *gin.Context) {
	f := repo.QualityReportFilter{}

	var err error
	if f.ProjectID, err = optUUID(c, "projectId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}
	if f.SectionID, err = optUUID(c, "sectionId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid sectionId", err))
		return
	}
	if raw := c.Query("reportType"); raw != "" {
		f.ReportType = &raw
	}
	if raw := c.Query("qaQcStatus"); raw != "" {
		status := model.QaQcStatus(raw)
		f.QaQcStatus = &status
	}
	if f.Range, err = dateRange(c); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid date filter", err))
		return
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))

	reports, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
