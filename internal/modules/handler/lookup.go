package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpdc055/connectpng/internal/modules/service"
)

type LookupHandler struct {
	svc service.LookupService
}

func NewLookupHandler(svc service.LookupService) *LookupHandler {
	return &LookupHandler{svc: svc}
}

// Provinces serves the cached province reference list.
func (h *LookupHandler) Provinces(c *gin.Context) {
	provinces, err := h.svc.Provinces(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, provinces)
}

// Enums serves one of the static value lists by name.
func (h *LookupHandler) Enums(c *gin.Context) {
	values, err := h.svc.Enums(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// Refresh drops the cached lookup lists.
func (h *LookupHandler) Refresh(c *gin.Context) {
	if err := h.svc.Invalidate(c.Request.Context()); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
