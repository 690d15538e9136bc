package app

import (
	"go-smbops/internal/auth"
	"go-smbops/internal/company"
	"go-smbops/internal/config"
	"go-smbops/internal/contact"
	"go-smbops/internal/dashboard"
	"go-smbops/internal/health"
	"go-smbops/internal/middleware"
	"go-smbops/internal/obs"
	"go-smbops/internal/project"
	"go-smbops/internal/quote"
	"go-smbops/internal/rbac"
	"go-smbops/internal/settings"
	"go-smbops/internal/shared/counter"
	"go-smbops/internal/task"
	"go-smbops/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	metrics *obs.Metrics,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(db)
	sessionRepo := auth.NewRepository(rdb)
	companyRepo := company.NewRepository(db)
	contactRepo := contact.NewRepository(db)
	quoteRepo := quote.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	projectRepo := project.NewRepository(db)
	taskRepo := task.NewRepository(db)
	settingsRepo := settings.NewRepository(db)
	healthRepo := health.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(rbac.DefaultPolicies())
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	userService := user.NewService(userRepo, logger)
	authService := auth.NewService(sessionRepo, userRepo, userService, logger)
	companyService := company.NewService(companyRepo, logger)
	contactService := contact.NewService(contactRepo, logger)
	quoteService := quote.NewService(db, quoteRepo, counterRepo, quote.Config{
		FreeQuotesPerMonth: cfg.Quote.FreeQuotesPerMonth,
	}, metrics, logger)
	projectService := project.NewService(projectRepo, logger)
	taskService := task.NewService(taskRepo, logger)
	settingsService := settings.NewService(settingsRepo, logger)
	dashboardService := dashboard.NewService(contactRepo, quoteRepo, taskRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	userHandler := user.NewHandler(userService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	contactHandler := contact.NewHandler(contactService, logger)
	quoteHandler := quote.NewHandler(quoteService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	taskHandler := task.NewHandler(taskService, logger)
	settingsHandler := settings.NewHandler(settingsService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	healthHandler := health.NewHandler(healthRepo, rdb, logger)

	authMW := middleware.AuthMiddleware(authService)

	// --- Routes Registration ---
	health.RegisterRoutes(router, healthHandler)

	api := router.Group("")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		user.RegisterRoutes(api, userHandler, authMW, rbacService, logger)
		company.RegisterRoutes(api, companyHandler, authMW, logger)
		contact.RegisterRoutes(api, contactHandler, authMW, logger)
		quote.RegisterRoutes(api, quoteHandler, authMW, rdb, logger)
		project.RegisterRoutes(api, projectHandler, authMW, logger)
		task.RegisterRoutes(api, taskHandler, authMW, logger)
		settings.RegisterRoutes(api, settingsHandler, authMW, rbacService, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, authMW, logger)
	}

	return nil
}
