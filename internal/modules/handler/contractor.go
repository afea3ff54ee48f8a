package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

type ContractorHandler struct {
	svc service.ContractorService
}

func NewContractorHandler(svc service.ContractorService) *ContractorHandler {
	return &ContractorHandler{svc: svc}
}

func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var req service.CreateContractorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	contractor, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, contractor)
}

func (h *ContractorHandler) GetContractor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	contractor, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, contractor)
}

func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateContractorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	contractor, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, contractor)
}

func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
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

func (h *ContractorHandler) ListContractors(c *gin.Context) {
	f := repo.ContractorFilter{}

	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid active", err))
			return
		}
		f.Active = &active
	}
	if raw := c.Query("specialization"); raw != "" {
		f.Specialization = &raw
	}
	if raw := c.Query("certification"); raw != "" {
		level := model.CertificationLevel(raw)
		f.Certification = &level
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))

	contractors, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, contractors)
}

func (h *ContractorHandler) AssignContractor(c *gin.Context) {
	contractorID, ok := pathID(c)
	if !ok {
		return
	}

	var req service.AssignContractorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req.ContractorID = contractorID

	assignment, err := h.svc.Assign(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *ContractorHandler) UpdateAssignment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateAssignmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	assignment, err := h.svc.UpdateAssignment(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *ContractorHandler) ListAssignments(c *gin.Context) {
	contractorID, err := optUUID(c, "contractorId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid contractorId", err))
		return
	}
	projectID, err := optUUID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	assignments, err := h.svc.ListAssignments(c.Request.Context(), contractorID, projectID, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}
