package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
//
//	@Summary	Authenticate and obtain a bearer token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	service.LoginOutput
//	@Router		/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// SetupStatus reports whether the first admin still needs to be created.
func (h *AuthHandler) SetupStatus(c *gin.Context) {
	out, err := h.svc.SetupStatus(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreateAdmin bootstraps the first admin account.
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req service.CreateAdminInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, err := h.svc.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}
