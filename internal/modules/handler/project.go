package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProject godoc
//
//	@Summary	Register a road project
//	@Tags		projects
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Success	201	{object}	model.Project
//	@Router		/api/v1/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
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

// ListProjects godoc
//
//	@Summary	List projects with cursor pagination
//	@Tags		projects
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	service.ListProjectsOutput
//	@Router		/api/v1/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	provinceID, err := optUUID(c, "provinceId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid provinceId", err))
		return
	}
	contractorID, err := optUUID(c, "contractorId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid contractorId", err))
		return
	}

	var status *model.ProjectStatus
	if raw := c.Query("status"); raw != "" {
		s := model.ProjectStatus(raw)
		status = &s
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	out, err := h.svc.List(c.Request.Context(), service.ListProjectsInput{
		ProvinceID:   provinceID,
		ContractorID: contractorID,
		Status:       status,
		Limit:        limit,
		Cursor:       c.Query("cursor"),
		TimeDesc:     c.DefaultQuery("order", "desc") == "desc",
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) CreateSection(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	var req service.CreateSectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req.ProjectID = projectID

	section, err := h.svc.CreateSection(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (h *ProjectHandler) ListSections(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	sections, err := h.svc.ListSections(c.Request.Context(), projectID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

type SectionHandler struct {
	svc service.ProjectService
}

func NewSectionHandler(svc service.ProjectService) *SectionHandler {
	return &SectionHandler{svc: svc}
}

func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateSectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	section, err := h.svc.UpdateSection(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteSection(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
