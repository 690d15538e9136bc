package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	rootMessage    = "SMB Operations API running"
	maxTablesShown = 10
	checkTimeout   = 3 * time.Second
)

type Report struct {
	Backend  string   `json:"backend"`
	Database string   `json:"database"`
	Redis    string   `json:"redis"`
	Tables   []string `json:"tables"`
}

type Handler struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHandler(repo Repository, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{repo: repo, rdb: rdb, logger: l}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// Diagnostics always answers 200; failures are reported in the body.
func (h *Handler) Diagnostics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	report := Report{
		Backend:  "running",
		Database: "not connected",
		Redis:    "not connected",
		Tables:   []string{},
	}

	if err := h.repo.Ping(ctx); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		report.Database = "error: " + truncate(err.Error(), 50)
	} else {
		report.Database = "connected"
		tables, err := h.repo.ListTables(ctx, maxTablesShown)
		if err != nil {
			report.Database = "connected but error: " + truncate(err.Error(), 50)
		} else if tables != nil {
			report.Tables = tables
		}
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.logger.Warn("redis ping failed", zap.Error(err))
			report.Redis = "error: " + truncate(err.Error(), 50)
		} else {
			report.Redis = "connected"
		}
	}

	c.JSON(http.StatusOK, report)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
