package employee

import (
	"context"
	"fmt"
	"strings"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Service は社員レコードに関するユースケースをまとめます。
// 状態を持たないため、複数のリクエストから同時に呼び出せます。
type Service struct {
	repo Repository
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) ([]*Employee, error)
	SearchBySkill(ctx context.Context, in SearchBySkillInput) ([]*Employee, error)
	AverageSalaryByDepartment(ctx context.Context) ([]DepartmentSalary, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	EmployeeID  string
	Name        string
	Department  string
	Salary      float64
	JoiningDate string
	Skills      []string
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	EmployeeID string
}

// ListEmployeesInput は一覧取得時の入力です。Department が nil または空文字なら絞り込みません。
type ListEmployeesInput struct {
	Department *string
	Skip       int
	Limit      int
}

// SearchBySkillInput はスキル検索時の入力です。
type SearchBySkillInput struct {
	Skill string
	Skip  int
	Limit int
}

// UpdateEmployeeInput は社員更新時の入力です。
type UpdateEmployeeInput struct {
	EmployeeID string
	Fields     UpdateFields
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	EmployeeID string
}

// CreateEmployee は新しい社員を作成します。employee_id が重複する場合は ErrEmployeeIDAlreadyExists を返します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	if err := validateEmployeeID(in.EmployeeID); err != nil {
		return nil, err
	}
	if err := validateRequired(in.Name, ErrInvalidName); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if err := validateRequired(in.Department, ErrInvalidDepartment); err != nil {
		return nil, fmt.Errorf("department: %w", err)
	}
	if err := validateSalary(in.Salary); err != nil {
		return nil, err
	}
	if err := validateRequired(in.JoiningDate, ErrInvalidJoiningDate); err != nil {
		return nil, fmt.Errorf("joining_date: %w", err)
	}
	if in.Skills == nil {
		return nil, ErrInvalidSkills
	}

	emp := &Employee{
		EmployeeID:  in.EmployeeID,
		Name:        in.Name,
		Department:  in.Department,
		Salary:      in.Salary,
		JoiningDate: in.JoiningDate,
		Skills:      cloneSkills(in.Skills),
	}

	return s.repo.Create(ctx, emp)
}

// GetEmployee は employee_id で社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if err := validateEmployeeID(in.EmployeeID); err != nil {
		return nil, err
	}
	return s.repo.FindByEmployeeID(ctx, in.EmployeeID)
}

// ListEmployees は社員の一覧を joining_date の降順で取得します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) ([]*Employee, error) {
	if err := validatePagination(in.Skip, in.Limit); err != nil {
		return nil, err
	}

	var department *string
	if in.Department != nil && *in.Department != "" {
		value := *in.Department
		department = &value
	}

	employees, err := s.repo.List(ctx, ListEmployeesFilter{
		Department: department,
		Skip:       in.Skip,
		Limit:      in.Limit,
	})
	if err != nil {
		return nil, err
	}
	return nonNil(employees), nil
}

// SearchBySkill は skills に指定のスキルを含む社員を取得します。比較は大文字小文字を区別した完全一致です。
func (s *Service) SearchBySkill(ctx context.Context, in SearchBySkillInput) ([]*Employee, error) {
	if err := validatePagination(in.Skip, in.Limit); err != nil {
		return nil, err
	}

	employees, err := s.repo.SearchBySkill(ctx, SearchBySkillFilter{
		Skill: in.Skill,
		Skip:  in.Skip,
		Limit: in.Limit,
	})
	if err != nil {
		return nil, err
	}
	return nonNil(employees), nil
}

// AverageSalaryByDepartment は部署ごとの平均給与を部署名の昇順で返します。
func (s *Service) AverageSalaryByDepartment(ctx context.Context) ([]DepartmentSalary, error) {
	result, err := s.repo.AverageSalaryByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return []DepartmentSalary{}, nil
	}
	return result, nil
}

// UpdateEmployee は指定されたフィールドのみを更新し、更新後の社員を返します。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	fields := in.Fields
	if fields.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}
	if err := validateEmployeeID(in.EmployeeID); err != nil {
		return nil, err
	}

	if fields.Name != nil {
		if err := validateRequired(*fields.Name, ErrInvalidName); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	if fields.Department != nil {
		if err := validateRequired(*fields.Department, ErrInvalidDepartment); err != nil {
			return nil, fmt.Errorf("department: %w", err)
		}
	}
	if fields.Salary != nil {
		if err := validateSalary(*fields.Salary); err != nil {
			return nil, err
		}
	}
	if fields.JoiningDate != nil {
		if err := validateRequired(*fields.JoiningDate, ErrInvalidJoiningDate); err != nil {
			return nil, fmt.Errorf("joining_date: %w", err)
		}
	}
	if fields.Skills != nil {
		skills := cloneSkills(*fields.Skills)
		fields.Skills = &skills
	}

	return s.repo.Update(ctx, in.EmployeeID, fields)
}

// DeleteEmployee は社員を削除します。存在しない場合は ErrEmployeeNotFound を返します。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error {
	if err := validateEmployeeID(in.EmployeeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, in.EmployeeID)
}

func validateEmployeeID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("employee_id: %w", ErrInvalidEmployeeID)
	}
	return nil
}

func validateRequired(raw string, sentinel error) error {
	if strings.TrimSpace(raw) == "" {
		return sentinel
	}
	return nil
}

// NaN は比較が常に false になるため、明示的に弾きます。
func validateSalary(salary float64) error {
	if !(salary > 0) {
		return ErrInvalidSalary
	}
	return nil
}

func validatePagination(skip, limit int) error {
	if skip < 0 {
		return ErrInvalidSkip
	}
	if limit < 1 || limit > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

// 空のスキル一覧は nil ではなく空スライスとして保持します。
func cloneSkills(skills []string) []string {
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

func nonNil(employees []*Employee) []*Employee {
	if employees == nil {
		return []*Employee{}
	}
	return employees
}
