package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	"go.uber.org/zap"
)

const deletedMessage = "Employee deleted successfully"

// EmployeeHandler は社員 API の HTTP 実装です。
type EmployeeHandler struct {
	svc employee.UseCase
	log *zap.Logger
}

// NewEmployeeHandler は EmployeeHandler を生成します。
func NewEmployeeHandler(svc employee.UseCase, log *zap.Logger) *EmployeeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmployeeHandler{svc: svc, log: log}
}

type employeeRequest struct {
	EmployeeID  string   `json:"employee_id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	JoiningDate string   `json:"joining_date"`
	Skills      []string `json:"skills"`
}

// null と未指定はどちらも nil になり、更新対象外として扱われます。
type employeeUpdateRequest struct {
	Name        *string   `json:"name"`
	Department  *string   `json:"department"`
	Salary      *float64  `json:"salary"`
	JoiningDate *string   `json:"joining_date"`
	Skills      *[]string `json:"skills"`
}

type employeeResponse struct {
	EmployeeID  string   `json:"employee_id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	JoiningDate string   `json:"joining_date"`
	Skills      []string `json:"skills"`
}

type averageSalaryResponse struct {
	Department string  `json:"department"`
	AvgSalary  float64 `json:"avg_salary"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// CreateEmployee は POST /employees/ を処理します。
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalidInput(c, err)
		return
	}

	created, err := h.svc.CreateEmployee(c.Request.Context(), employee.CreateEmployeeInput{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Department:  req.Department,
		Salary:      req.Salary,
		JoiningDate: req.JoiningDate,
		Skills:      req.Skills,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(created))
}

// GetEmployee は GET /employees/:employee_id を処理します。
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	found, err := h.svc.GetEmployee(c.Request.Context(), employee.GetEmployeeInput{EmployeeID: c.Param("employee_id")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(found))
}

// ListEmployees は GET /employees/ を処理します。
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	skip, limit, ok := h.pagination(c)
	if !ok {
		return
	}

	var department *string
	if value, present := c.GetQuery("department"); present {
		department = &value
	}

	employees, err := h.svc.ListEmployees(c.Request.Context(), employee.ListEmployeesInput{
		Department: department,
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponses(employees))
}

// SearchBySkill は GET /employees/search を処理します。
func (h *EmployeeHandler) SearchBySkill(c *gin.Context) {
	skill, present := c.GetQuery("skill")
	if !present {
		respondDetail(c, http.StatusUnprocessableEntity, "skill: query parameter is required")
		return
	}

	skip, limit, ok := h.pagination(c)
	if !ok {
		return
	}

	employees, err := h.svc.SearchBySkill(c.Request.Context(), employee.SearchBySkillInput{
		Skill: skill,
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponses(employees))
}

// AverageSalaryByDepartment は GET /employees/avg-salary を処理します。
func (h *EmployeeHandler) AverageSalaryByDepartment(c *gin.Context) {
	result, err := h.svc.AverageSalaryByDepartment(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]averageSalaryResponse, 0, len(result))
	for _, item := range result {
		resp = append(resp, averageSalaryResponse{Department: item.Department, AvgSalary: item.AvgSalary})
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateEmployee は PUT /employees/:employee_id を処理します。空のボディは更新項目なしとして扱います。
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req employeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.respondInvalidInput(c, err)
		return
	}

	updated, err := h.svc.UpdateEmployee(c.Request.Context(), employee.UpdateEmployeeInput{
		EmployeeID: c.Param("employee_id"),
		Fields: employee.UpdateFields{
			Name:        req.Name,
			Department:  req.Department,
			Salary:      req.Salary,
			JoiningDate: req.JoiningDate,
			Skills:      req.Skills,
		},
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(updated))
}

// DeleteEmployee は DELETE /employees/:employee_id を処理します。
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.svc.DeleteEmployee(c.Request.Context(), employee.DeleteEmployeeInput{EmployeeID: c.Param("employee_id")}); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: deletedMessage})
}

// pagination は skip と limit を読み取ります。範囲の検証はサービス層で行います。
func (h *EmployeeHandler) pagination(c *gin.Context) (int, int, bool) {
	skip, err := intQuery(c, "skip", employee.DefaultSkip)
	if err != nil {
		respondDetail(c, http.StatusUnprocessableEntity, "skip: must be an integer")
		return 0, 0, false
	}

	limit, err := intQuery(c, "limit", employee.DefaultLimit)
	if err != nil {
		respondDetail(c, http.StatusUnprocessableEntity, "limit: must be an integer")
		return 0, 0, false
	}

	return skip, limit, true
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw, present := c.GetQuery(key)
	if !present {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func toEmployeeResponse(emp *employee.Employee) employeeResponse {
	skills := emp.Skills
	if skills == nil {
		skills = []string{}
	}
	return employeeResponse{
		EmployeeID:  emp.EmployeeID,
		Name:        emp.Name,
		Department:  emp.Department,
		Salary:      emp.Salary,
		JoiningDate: emp.JoiningDate,
		Skills:      skills,
	}
}

func toEmployeeResponses(employees []*employee.Employee) []employeeResponse {
	resp := make([]employeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, toEmployeeResponse(emp))
	}
	return resp
}
