package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	pgdb "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
	"go.uber.org/zap"
)

// HealthHandler はデータベース疎通を含む死活監視を提供します。
type HealthHandler struct {
	db  pgdb.Pinger
	log *zap.Logger
}

// NewHealthHandler は HealthHandler を生成します。db が nil の場合は常に ok を返します。
func NewHealthHandler(db pgdb.Pinger, log *zap.Logger) *HealthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HealthHandler{db: db, log: log}
}

// HealthCheck は GET /healthz を処理します。
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			h.log.Warn("health check: database ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db_unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
