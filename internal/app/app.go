package app

import (
	"context"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/middleware"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/migrations"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// BuildApp connects the stores, installs the global middleware and registers
// every module on router. The returned cleanup closes the connections.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, gormDB, cfg.Database.Driver); err != nil {
			closeDB(gormDB)
			return nil, err
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.Database.MaxRetries)
		if err != nil {
			closeDB(gormDB)
			return nil, err
		}
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		closeDB(gormDB)
	}

	installMiddleware(router, cfg)

	// 2. Register Modules & Routes
	if err := registerModules(ctx, router, gormDB, rdb, cfg, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

func installMiddleware(router *gin.Engine, cfg config.Config) {
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID, middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{middleware.HeaderRequestID, middleware.HeaderReplayed},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(middleware.RequestID())
	// the per-user limiter on each module is tighter; this one guards unauthenticated traffic
	router.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS*2), cfg.RateLimitBurst*2))
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
