package employee

// Employee は社員レコードです。employee_id が業務キーとなります。
type Employee struct {
	EmployeeID  string
	Name        string
	Department  string
	Salary      float64
	JoiningDate string
	Skills      []string
}

// UpdateFields は部分更新の対象フィールドです。
// nil のフィールドは未指定として扱い、値が空でも非 nil なら更新対象になります。
type UpdateFields struct {
	Name        *string
	Department  *string
	Salary      *float64
	JoiningDate *string
	Skills      *[]string
}

// IsEmpty は更新対象のフィールドが一つもない場合に true を返します。
func (f UpdateFields) IsEmpty() bool {
	return f.Name == nil &&
		f.Department == nil &&
		f.Salary == nil &&
		f.JoiningDate == nil &&
		f.Skills == nil
}

// DepartmentSalary は部署ごとの平均給与です。
type DepartmentSalary struct {
	Department string
	AvgSalary  float64
}
