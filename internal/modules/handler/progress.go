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

type ProgressHandler struct {
	svc service.ProgressService
}

func NewProgressHandler(svc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

func (h *ProgressHandler) CreateReport(c *gin.Context) {
	var req service.CreateProgressReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user := middleware.CurrentUser(c)
	req.ReporterID = &user.ID

	report, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *ProgressHandler) GetReport(c *gin.Context) {
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

func (h *ProgressHandler) UpdateReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateProgressReportInput
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

func (h *ProgressHandler) DeleteReport(c *gin.Context) {
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

func (h *ProgressHandler) ListReports(c *gin.Context) {
	f := repo.ProgressReportFilter{}

	var err error
	if f.ProjectID, err = optUUID(c, "projectId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}
	if f.SectionID, err = optUUID(c, "sectionId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid sectionId", err))
		return
	}
	if raw := c.Query("scheduleStatus"); raw != "" {
		status := model.ScheduleStatus(raw)
		f.ScheduleStatus = &status
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
