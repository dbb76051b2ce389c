package models

// Departments assigned during directory enrichment.
const (
	DepartmentHR          = "HR"
	DepartmentEngineering = "Engineering"
	DepartmentSales       = "Sales"
	DepartmentSupport     = "Support"
	DepartmentMarketing   = "Marketing"
	DepartmentFinance     = "Finance"
)

// EnrichmentDepartments is the set a fetched employee can be placed into.
var EnrichmentDepartments = []string{
	DepartmentHR,
	DepartmentEngineering,
	DepartmentSales,
	DepartmentSupport,
}

// CreationDepartments is the wider set accepted on the creation form.
var CreationDepartments = []string{
	DepartmentHR,
	DepartmentEngineering,
	DepartmentSales,
	DepartmentSupport,
	DepartmentMarketing,
	DepartmentFinance,
}

// Employee is a directory member. Rating is a float because feedback
// aggregation produces one-decimal means; freshly enriched employees carry a
// whole-number rating between 1 and 5.
type Employee struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Age        int     `json:"age"`
	Department string  `json:"department"`
	Rating     float64 `json:"rating"`
	Phone      string  `json:"phone"`
	Image      string  `json:"image"`
}

// FullName returns the display name for the employee.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsValidCreationDepartment reports whether d is accepted by the creation form.
func IsValidCreationDepartment(d string) bool {
	for _, dept := range CreationDepartments {
		if dept == d {
			return true
		}
	}
	return false
}

// CreateEmployeeRequest is the employee-creation payload. Validation is
// field-by-field so the client can render per-field errors.
type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Image      string `json:"image"`
}
