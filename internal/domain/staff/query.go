package staff

import "strings"

// List-view helpers, pure functions of the snapshot they receive. The list
// endpoint composes them as filters first, then search, then pagination, which
// keeps dashboard drill-down links and free-text search consistent.

// Filter is a conjunctive exact-match constraint set; an empty value is a
// no-op for that attribute.
type Filter struct {
	Role       string
	Type       string
	Faculty    string
	Department string
}

// Page is one pagination window. FirstIndex/LastIndex are zero-based slice
// bounds into the filtered sequence; Items is empty when the page number runs
// past the end.
type Page struct {
	Items      []Record
	TotalPages int
	FirstIndex int
	LastIndex  int
}

// Search keeps records whose full name, role, email, department or faculty
// contains term, case-insensitively. A blank term keeps everything.
func Search(records []Record, term string) []Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}
	matched := make([]Record, 0, len(records))
	for _, record := range records {
		fullName := strings.ToLower(record.FirstName + " " + record.LastName)
		if strings.Contains(fullName, term) ||
			strings.Contains(strings.ToLower(record.Role), term) ||
			strings.Contains(strings.ToLower(record.Email), term) ||
			(record.Department != "" && strings.Contains(strings.ToLower(record.Department), term)) ||
			(record.Faculty != "" && strings.Contains(strings.ToLower(record.Faculty), term)) {
			matched = append(matched, record)
		}
	}
	return matched
}

// FilterByAttributes keeps records matching every set filter value exactly,
// preserving relative order.
func FilterByAttributes(records []Record, filter Filter) []Record {
	if filter == (Filter{}) {
		return records
	}
	matched := make([]Record, 0, len(records))
	for _, record := range records {
		if filter.Role != "" && record.Role != filter.Role {
			continue
		}
		if filter.Type != "" && record.Type != filter.Type {
			continue
		}
		if filter.Faculty != "" && record.Faculty != filter.Faculty {
			continue
		}
		if filter.Department != "" && record.Department != filter.Department {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}

// Paginate slices out the 1-based pageNumber window of pageSize records. A
// page number past the last page yields an empty Items slice; resetting the
// page on filter changes is the caller's job.
func Paginate(records []Record, pageNumber, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(records) + pageSize - 1) / pageSize

	firstIndex := (pageNumber - 1) * pageSize
	lastIndex := firstIndex + pageSize
	if lastIndex > len(records) {
		lastIndex = len(records)
	}
	if firstIndex < 0 || firstIndex >= len(records) {
		return Page{Items: []Record{}, TotalPages: totalPages, FirstIndex: firstIndex, LastIndex: firstIndex}
	}

	items := make([]Record, lastIndex-firstIndex)
	copy(items, records[firstIndex:lastIndex])
	return Page{Items: items, TotalPages: totalPages, FirstIndex: firstIndex, LastIndex: lastIndex}
}
