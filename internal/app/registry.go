package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/employee"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leavecomment"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/messaging/kafka"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/rbac"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveCommentRepo := leavecomment.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return fmt.Errorf("build enforcer: %w", err)
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return fmt.Errorf("load rbac policy: %w", err)
	}
	accessChecker := rbac.NewAccessChecker(rbacService, employeeRepo, logger)

	// --- Services ---
	leaveCommentService := leavecomment.NewServiceWithOutbox(
		gormDB,
		leaveCommentRepo,
		accessChecker,
		outboxRepo,
		time.Now,
		logger,
	)

	// --- Handlers ---
	leaveCommentHandler := leavecomment.NewHandler(leaveCommentService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leavecomment.RegisterRoutes(api, leaveCommentHandler, leavecomment.RouteConfig{
			JWTSecret:      cfg.JWTSecret,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
			Redis:          rdb,
		}, logger)
	}

	return nil
}
