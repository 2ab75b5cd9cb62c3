package leavecomment

import (
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const idempotencyTTL = 24 * time.Hour

type RouteConfig struct {
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
	Redis          *redis.Client
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	cfg RouteConfig,
	logger *zap.Logger,
) {
	comments := r.Group("/leave/requests/:leaveRequestId/leave-comments")
	comments.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	comments.Use(middleware.ContextLogger(logger))
	comments.Use(middleware.RateLimitByUser(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	{
		comments.GET("", handler.List)

		comments.POST("",
			middleware.Idempotency(cfg.Redis, idempotencyTTL, logger),
			handler.Create,
		)

		comments.DELETE("", handler.Delete)
	}
}
