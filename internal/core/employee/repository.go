package employee

import "context"

// Repository は社員永続化の抽象です。各メソッドは単一の文で完結し、原子的に実行されます。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*Employee, error)
	SearchBySkill(ctx context.Context, filter SearchBySkillFilter) ([]*Employee, error)
	Update(ctx context.Context, employeeID string, fields UpdateFields) (*Employee, error)
	Delete(ctx context.Context, employeeID string) error
	AverageSalaryByDepartment(ctx context.Context) ([]DepartmentSalary, error)
}

// ListEmployeesFilter は一覧取得用フィルタです。結果は joining_date の降順です。
type ListEmployeesFilter struct {
	Department *string
	Skip       int
	Limit      int
}

// SearchBySkillFilter はスキル検索用フィルタです。
type SearchBySkillFilter struct {
	Skill string
	Skip  int
	Limit int
}
