package staff

// Record is one staff entry. ID and DateAdded are assigned at creation and
// never change afterwards; Faculty and Department only carry values for
// academic roles. Type holds the employment type.
type Record struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Faculty    string `json:"faculty"`
	Department string `json:"department"`
	Type       string `json:"type"`
	DateAdded  string `json:"dateAdded"`
}

// Draft carries the caller-supplied fields for a create or update. It has no
// ID or DateAdded on purpose: the repository assigns both and ignores whatever
// the caller thinks they should be.
type Draft struct {
	FirstName  string
	LastName   string
	Role       string
	Phone      string
	Email      string
	Faculty    string
	Department string
	Type       string
}

// RoleCount, TypeCount, DepartmentCount and FacultyCount are one grouped
// dashboard counter each, in first-seen collection order.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type FacultyCount struct {
	Faculty string `json:"faculty"`
	Count   int    `json:"count"`
}
