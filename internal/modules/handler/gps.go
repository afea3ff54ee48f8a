package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tpdc055/connectpng/internal/middleware"
	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

type GpsHandler struct {
	svc service.GpsService
}

func NewGpsHandler(svc service.GpsService) *GpsHandler {
	return &GpsHandler{svc: svc}
}

// RecordPoint godoc
//
//	@Summary	Log a field GPS observation
//	@Tags		gps
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Success	201	{object}	model.GpsPoint
//	@Router		/api/v1/gps [post]
func (h *GpsHandler) RecordPoint(c *gin.Context) {
	var req service.RecordGpsPointInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user := middleware.CurrentUser(c)
	req.UserID = &user.ID

	point, err := h.svc.Record(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, point)
}

func (h *GpsHandler) ListPoints(c *gin.Context) {
	in := service.ListGpsPointsInput{}

	var err error
	if in.ProjectID, err = optUUID(c, "projectId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}
	if in.SectionID, err = optUUID(c, "sectionId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid sectionId", err))
		return
	}
	if in.ContractorID, err = optUUID(c, "contractorId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid contractorId", err))
		return
	}
	if raw := c.Query("phase"); raw != "" {
		phase := model.WorkPhase(raw)
		in.Phase = &phase
	}
	if raw := c.Query("status"); raw != "" {
		in.Status = &raw
	}
	if in.Range, err = dateRange(c); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid date filter", err))
		return
	}
	in.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	in.Desc = c.DefaultQuery("order", "desc") == "desc"

	points, err := h.svc.List(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}
