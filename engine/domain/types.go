// Package domain defines the employee record model, the seed dataset, and
// validation for records loaded from external dataset files.
package domain

// Employee is one row of the grid dataset. Records are immutable for the
// lifetime of the process.
type Employee struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Title      string `json:"title"`
	Salary     int    `json:"salary"`
	Age        int    `json:"age"`
	HiredAt    string `json:"hiredAt"` // YYYY-MM-DD
}

// Department names used by the seed dataset and the departments endpoint.
const (
	DeptEngineering = "Engineering"
	DeptSales       = "Sales"
	DeptMarketing   = "Marketing"
	DeptFinance     = "Finance"
	DeptHR          = "Human Resources"
	DeptSupport     = "Support"
)

// ValidDepartments is the set of recognised departments.
var ValidDepartments = map[string]bool{
	DeptEngineering: true, DeptSales: true, DeptMarketing: true,
	DeptFinance: true, DeptHR: true, DeptSupport: true,
}

// DepartmentCount pairs a department with its headcount, for the grid's
// filter dropdown.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}
