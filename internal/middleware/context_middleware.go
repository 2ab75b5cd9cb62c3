package middleware

import (
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger puts a logger tagged with the request id and user id into the request
// context. It runs after RequestID and AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		fields := []zap.Field{zap.String("request_id", contextutil.GetRequestID(ctx))}
		if p, ok := contextutil.GetPrincipal(ctx); ok {
			fields = append(fields, zap.Int64("user_id", p.UserID))
		}

		ctx = contextutil.WithLogger(ctx, logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
