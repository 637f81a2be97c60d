package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-employee-records/internal/adapters/http/handler"
	"github.com/ogurasousui/codex-employee-records/internal/adapters/http/middleware"
	"go.uber.org/zap"
)

// Config はルーター構築に必要な依存をまとめます。
type Config struct {
	EmployeeHandler    *handler.EmployeeHandler
	HealthHandler      *handler.HealthHandler
	CORSAllowedOrigins []string
	Logger             *zap.Logger
}

// New は社員 API のルーティングを設定した gin.Engine を返します。
func New(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.HealthCheck)
	}

	if h := cfg.EmployeeHandler; h != nil {
		employees := r.Group("/employees")
		for _, root := range []string{"", "/"} {
			employees.POST(root, h.CreateEmployee)
			employees.GET(root, h.ListEmployees)
		}
		employees.GET("/avg-salary", h.AverageSalaryByDepartment)
		employees.GET("/search", h.SearchBySkill)
		employees.GET("/:employee_id", h.GetEmployee)
		employees.PUT("/:employee_id", h.UpdateEmployee)
		employees.DELETE("/:employee_id", h.DeleteEmployee)
	}

	return r
}
