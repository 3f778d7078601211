package staff

import "testing"

func TestAcademicRolesAreRoles(t *testing.T) {
	for _, role := range AcademicRoles {
		if !ValidRole(role) {
			t.Fatalf("academic role %q missing from role set", role)
		}
	}
	if IsAcademicRole("Registrar") {
		t.Fatal("Registrar must not require faculty")
	}
}

func TestDepartmentsCoverEveryFaculty(t *testing.T) {
	for _, faculty := range Faculties {
		departments := DepartmentsByFaculty[faculty]
		if len(departments) < 5 || len(departments) > 7 {
			t.Fatalf("faculty %q has %d departments", faculty, len(departments))
		}
	}
	if ValidDepartment("Science", "Civil Law") {
		t.Fatal("department must belong to its faculty")
	}
	if !ValidDepartment("Law", "Civil Law") {
		t.Fatal("expected Civil Law under Law")
	}
}
