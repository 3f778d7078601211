package staff

// Dashboard aggregations. All pure functions of the snapshot they are given;
// grouping order is first appearance in the collection.

func CountTotal(records []Record) int {
	return len(records)
}

func CountByRole(records []Record) []RoleCount {
	counts := make([]RoleCount, 0)
	index := make(map[string]int)
	for _, record := range records {
		if i, seen := index[record.Role]; seen {
			counts[i].Count++
			continue
		}
		index[record.Role] = len(counts)
		counts = append(counts, RoleCount{Role: record.Role, Count: 1})
	}
	return counts
}

func CountByType(records []Record) []TypeCount {
	counts := make([]TypeCount, 0)
	index := make(map[string]int)
	for _, record := range records {
		if i, seen := index[record.Type]; seen {
			counts[i].Count++
			continue
		}
		index[record.Type] = len(counts)
		counts = append(counts, TypeCount{Type: record.Type, Count: 1})
	}
	return counts
}

// CountByDepartment skips records without a department.
func CountByDepartment(records []Record) []DepartmentCount {
	counts := make([]DepartmentCount, 0)
	index := make(map[string]int)
	for _, record := range records {
		if record.Department == "" {
			continue
		}
		if i, seen := index[record.Department]; seen {
			counts[i].Count++
			continue
		}
		index[record.Department] = len(counts)
		counts = append(counts, DepartmentCount{Department: record.Department, Count: 1})
	}
	return counts
}

// CountByFaculty skips records without a faculty.
func CountByFaculty(records []Record) []FacultyCount {
	counts := make([]FacultyCount, 0)
	index := make(map[string]int)
	for _, record := range records {
		if record.Faculty == "" {
			continue
		}
		if i, seen := index[record.Faculty]; seen {
			counts[i].Count++
			continue
		}
		index[record.Faculty] = len(counts)
		counts = append(counts, FacultyCount{Faculty: record.Faculty, Count: 1})
	}
	return counts
}
