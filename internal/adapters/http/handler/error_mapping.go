package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-employee-records/internal/adapters/http/middleware"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	"go.uber.org/zap"
)

const (
	msgEmployeeNotFound    = "Employee not found"
	msgEmployeeIDExists    = "Employee ID already exists"
	msgNoFieldsToUpdate    = "No fields to update"
	msgInternalServerError = "Internal server error"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// toHTTPError はドメインエラーを HTTP ステータスと利用者向けメッセージに変換します。
// 想定外のエラーは内容を隠して 500 にします。
func toHTTPError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, ""
	case employee.IsValidationError(err):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, employee.ErrNoFieldsToUpdate):
		return http.StatusBadRequest, msgNoFieldsToUpdate
	case errors.Is(err, employee.ErrEmployeeIDAlreadyExists):
		return http.StatusBadRequest, msgEmployeeIDExists
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return http.StatusNotFound, msgEmployeeNotFound
	default:
		return http.StatusInternalServerError, msgInternalServerError
	}
}

func (h *EmployeeHandler) respondError(c *gin.Context, err error) {
	status, detail := toHTTPError(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("employee request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	respondDetail(c, status, detail)
}

func (h *EmployeeHandler) respondInvalidInput(c *gin.Context, err error) {
	respondDetail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
}

func respondDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, errorResponse{Detail: detail})
}
