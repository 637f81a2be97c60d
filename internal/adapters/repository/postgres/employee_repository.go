package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
)

const (
	employeeUniqueViolationCode = "23505"
	employeeCheckViolationCode  = "23514"
)

const employeeColumns = `employee_id, name, department, salary, joining_date, skills`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成します。employee_id の一意制約違反は ErrEmployeeIDAlreadyExists になります。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO employees (`+employeeColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+employeeColumns,
		e.EmployeeID,
		e.Name,
		e.Department,
		e.Salary,
		e.JoiningDate,
		skillsOrEmpty(e.Skills),
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// FindByEmployeeID は employee_id で社員を取得します。
func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE employee_id = $1
         LIMIT 1
    `, employeeID)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// List は社員の一覧を joining_date の降順で取得します。同日の並びは保証しません。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, error) {
	if filter.Limit <= 0 {
		return nil, employee.ErrInvalidLimit
	}
	if filter.Skip < 0 {
		return nil, employee.ErrInvalidSkip
	}

	args := make([]any, 0, 3)
	conditions := make([]string, 0, 1)

	if filter.Department != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "department = "+placeholder)
		args = append(args, *filter.Department)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Limit)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Skip)

	query := `
        SELECT ` + employeeColumns + `
          FROM employees` + whereClause + `
         ORDER BY joining_date DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder

	return r.queryEmployees(ctx, query, filter.Limit, args...)
}

// SearchBySkill は skills に指定のスキルを含む社員を取得します。並び順は保証しません。
func (r *EmployeeRepository) SearchBySkill(ctx context.Context, filter employee.SearchBySkillFilter) ([]*employee.Employee, error) {
	if filter.Limit <= 0 {
		return nil, employee.ErrInvalidLimit
	}
	if filter.Skip < 0 {
		return nil, employee.ErrInvalidSkip
	}

	query := `
        SELECT ` + employeeColumns + `
          FROM employees
         WHERE skills @> ARRAY[$1::text]
         LIMIT $2
        OFFSET $3`

	return r.queryEmployees(ctx, query, filter.Limit, filter.Skill, filter.Limit, filter.Skip)
}

// Update は指定されたフィールドだけを単一の UPDATE 文で更新し、更新後の社員を返します。
func (r *EmployeeRepository) Update(ctx context.Context, employeeID string, fields employee.UpdateFields) (*employee.Employee, error) {
	if fields.IsEmpty() {
		return nil, employee.ErrNoFieldsToUpdate
	}

	args := make([]any, 0, 6)
	sets := make([]string, 0, 5)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if fields.Name != nil {
		set("name", *fields.Name)
	}
	if fields.Department != nil {
		set("department", *fields.Department)
	}
	if fields.Salary != nil {
		set("salary", *fields.Salary)
	}
	if fields.JoiningDate != nil {
		set("joining_date", *fields.JoiningDate)
	}
	if fields.Skills != nil {
		set("skills", skillsOrEmpty(*fields.Skills))
	}

	args = append(args, employeeID)
	query := `
        UPDATE employees
           SET ` + strings.Join(sets, ", ") + `
         WHERE employee_id = $` + strconv.Itoa(len(args)) + `
        RETURNING ` + employeeColumns

	updated, err := scanEmployee(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return updated, nil
}

// Delete は社員を削除します。
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// AverageSalaryByDepartment は部署ごとの平均給与を小数第 2 位に丸めて返します。
// 丸めは numeric の ROUND に任せます。
func (r *EmployeeRepository) AverageSalaryByDepartment(ctx context.Context) ([]employee.DepartmentSalary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT department,
               ROUND(AVG(salary)::numeric, 2)::double precision AS avg_salary
          FROM employees
         GROUP BY department
         ORDER BY department COLLATE "C" ASC
    `)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	result := make([]employee.DepartmentSalary, 0)
	for rows.Next() {
		var item employee.DepartmentSalary
		if err := rows.Scan(&item.Department, &item.AvgSalary); err != nil {
			return nil, translateEmployeePgError(err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return result, nil
}

func (r *EmployeeRepository) queryEmployees(ctx context.Context, query string, capacity int, args ...any) ([]*employee.Employee, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0, min(capacity, 64))
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		employeeID  string
		name        string
		department  string
		salary      float64
		joiningDate string
		skills      []string
	)

	if err := row.Scan(
		&employeeID,
		&name,
		&department,
		&salary,
		&joiningDate,
		&skills,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &employee.Employee{
		EmployeeID:  employeeID,
		Name:        name,
		Department:  department,
		Salary:      salary,
		JoiningDate: joiningDate,
		Skills:      skillsOrEmpty(skills),
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case employeeUniqueViolationCode:
			return employee.ErrEmployeeIDAlreadyExists
		case employeeCheckViolationCode:
			return employee.ErrInvalidSalary
		}
	}

	return err
}

// text[] の NULL を避けるため、nil は空配列として扱います。
func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
