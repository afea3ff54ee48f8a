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

type MilestoneHandler struct {
	svc service.MilestoneService
}

func NewMilestoneHandler(svc service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{svc: svc}
}

func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	var req service.CreateMilestoneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	milestone, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, milestone)
}

func (h *MilestoneHandler) GetMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	milestone, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateMilestoneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user := middleware.CurrentUser(c)
	req.UserID = &user.ID

	milestone, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

type milestoneStatusUpdateReq struct {
	Status  model.MilestoneStatus `json:"status" binding:"required"`
	Comment string                `json:"comment"`
}

// AddStatusUpdate records a status transition with an audit comment.
func (h *MilestoneHandler) AddStatusUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req milestoneStatusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user := middleware.CurrentUser(c)
	milestone, err := h.svc.Update(c.Request.Context(), id, service.UpdateMilestoneInput{
		Status:  &req.Status,
		Comment: req.Comment,
		UserID:  &user.ID,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
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

func (h *MilestoneHandler) ListMilestones(c *gin.Context) {
	f := repo.MilestoneFilter{}

	var err error
	if f.ProjectID, err = optUUID(c, "projectId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}
	if raw := c.Query("status"); raw != "" {
		status := model.MilestoneStatus(raw)
		f.Status = &status
	}
	if raw := c.Query("category"); raw != "" {
		f.Category = &raw
	}
	if f.Range, err = dateRange(c); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid date filter", err))
		return
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))

	milestones, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}
