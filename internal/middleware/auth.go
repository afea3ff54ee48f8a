package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tpdc055/connectpng/internal/config"
	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/pkg/utils/tokens"
)

// UserKey is the gin context key the authenticated user is stored under.
const UserKey = "user"

// Auth authenticates requests with a JWT bearer token, loads the user, and
// stores it in the context. It also sets the user_id attribute on the
// current span for telemetry filtering.
func Auth(cfg *config.Config, users repo.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		_, authSpan := otel.Tracer("middleware").Start(ctx, "auth",
			trace.WithAttributes(attribute.String("middleware", "auth")))

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		claims, err := tokens.Parse(raw, cfg.Auth.JWTSecret)
		if err != nil {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		user, err := users.GetByID(ctx, claims.UserID)
		if err != nil || !user.IsActive {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		// Set user_id attribute on the current span for telemetry filtering
		rootSpan := trace.SpanFromContext(c.Request.Context())
		if rootSpan.SpanContext().IsValid() {
			rootSpan.SetAttributes(attribute.String("user_id", user.ID.String()))
		}

		authSpan.SetAttributes(
			attribute.String("user_id", user.ID.String()),
			attribute.Bool("authenticated", true),
		)
		authSpan.End()

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser pulls the authenticated user set by Auth out of the context.
func CurrentUser(c *gin.Context) *model.User {
	return c.MustGet(UserKey).(*model.User)
}
