package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/pkg/rbac"
)

// RequirePermission rejects the request with 403 unless the authenticated
// user's role grants the permission. Must run after Auth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !rbac.HasPermission(user.Role, permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("Forbidden"))
			return
		}
		c.Next()
	}
}

// RequireProjectAccess gates project-scoped routes on a per-project grant at
// the given level or higher. The project id is read from the :id path
// parameter. Admins bypass the check.
func RequireProjectAccess(users repo.UserRepo, level model.AccessLevel) gin.HandlerFunc {
	rank := map[model.AccessLevel]int{
		model.AccessView:   0,
		model.AccessEdit:   1,
		model.AccessManage: 2,
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user.Role == model.RoleAdmin || user.Role == model.RoleProgramManager {
			c.Next()
			return
		}

		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, serializer.ParamErr("invalid project id", err))
			return
		}

		grant, err := users.GetAccess(c.Request.Context(), user.ID, projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("Forbidden"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}
		if rank[grant.Level] < rank[level] {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("Forbidden"))
			return
		}
		c.Next()
	}
}
