package app

import (
	"context"
	"fmt"

	"go-smbops/internal/company"
	"go-smbops/internal/config"
	"go-smbops/internal/contact"
	"go-smbops/internal/middleware"
	"go-smbops/internal/obs"
	"go-smbops/internal/project"
	"go-smbops/internal/quote"
	"go-smbops/internal/settings"
	"go-smbops/internal/shared/connection"
	"go-smbops/internal/shared/counter"
	"go-smbops/internal/task"
	"go-smbops/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the long-lived resources of the API process.
type App struct {
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	Metrics *obs.Metrics
}

// Models lists every table the API owns, in migration order.
func Models() []any {
	return []any{
		&user.User{},
		&company.Company{},
		&contact.Contact{},
		&quote.Quote{},
		&counter.Counter{},
		&project.Project{},
		&task.Task{},
		&settings.Settings{},
	}
}

func BuildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("database schema migrated")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := obs.NewMetrics()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		metrics.Instrument(),
	)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if err := registerModules(router, cfg, db, rdb, metrics, logger); err != nil {
		return nil, err
	}

	return &App{Router: router, DB: db, Redis: rdb, Metrics: metrics}, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
