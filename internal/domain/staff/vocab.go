package staff

// Static vocabularies consumed by form validation and the options endpoint.

var Roles = []string{
	"Lecturer",
	"Dean",
	"Head of Department",
	"Director of Studies",
	"Professor",
	"Registrar",
	"Deputy Vice Chancellor",
	"President",
	"Bursar",
	"Health Center Staff",
	"Security",
	"Janitor",
}

var Faculties = []string{
	"Arts/Humanities",
	"Science",
	"Management Sciences/Business Administration",
	"Law",
	"Engineering/Technology",
	"Health Sciences",
}

// AcademicRoles are the roles that require a faculty and department.
var AcademicRoles = []string{
	"Lecturer",
	"Dean",
	"Head of Department",
	"Professor",
}

var EmploymentTypes = []string{
	"Full time",
	"Part time",
	"Contract",
}

var DepartmentsByFaculty = map[string][]string{
	"Arts/Humanities": {
		"English Language",
		"History",
		"Philosophy",
		"Religious Studies",
		"Theatre Arts",
		"Music",
		"Foreign Languages",
	},
	"Science": {
		"Mathematics",
		"Physics",
		"Chemistry",
		"Biology",
		"Computer Science",
		"Statistics",
		"Geology",
	},
	"Management Sciences/Business Administration": {
		"Accounting",
		"Business Administration",
		"Economics",
		"Banking and Finance",
		"Marketing",
		"Human Resource Management",
		"Public Administration",
	},
	"Law": {
		"Civil Law",
		"Criminal Law",
		"International Law",
		"Commercial Law",
		"Constitutional Law",
	},
	"Engineering/Technology": {
		"Mechanical Engineering",
		"Electrical Engineering",
		"Civil Engineering",
		"Chemical Engineering",
		"Computer Engineering",
		"Petroleum Engineering",
		"Telecommunications",
	},
	"Health Sciences": {
		"Medicine",
		"Nursing",
		"Pharmacy",
		"Medical Laboratory Science",
		"Physiotherapy",
		"Public Health",
		"Dentistry",
	},
}

// IsAcademicRole reports whether role requires faculty and department.
func IsAcademicRole(role string) bool {
	return contains(AcademicRoles, role)
}

func ValidRole(role string) bool {
	return contains(Roles, role)
}

func ValidFaculty(faculty string) bool {
	return contains(Faculties, faculty)
}

func ValidEmploymentType(employmentType string) bool {
	return contains(EmploymentTypes, employmentType)
}

// ValidDepartment reports whether department belongs to faculty.
func ValidDepartment(faculty, department string) bool {
	return contains(DepartmentsByFaculty[faculty], department)
}

func contains(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
