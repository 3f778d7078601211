package staff

import "testing"

func queryFixture() []Record {
	return []Record{
		{ID: 1, FirstName: "Bradley", LastName: "Lawler", Role: "Professor", Email: "bradleyl@outlook.com", Faculty: "Science", Department: "Physics", Type: "Full time"},
		{ID: 2, FirstName: "Alex", LastName: "Ducksworth", Role: "Lecturer", Email: "alexd123@gmail.com", Faculty: "Engineering/Technology", Department: "Computer Engineering", Type: "Full time"},
		{ID: 3, FirstName: "Stephanie", LastName: "Nicol", Role: "Deputy Vice Chancellor", Email: "k_patricia@gmail.com", Type: "Part time"},
		{ID: 4, FirstName: "Daniel", LastName: "Hamilton", Role: "Head of Department", Email: "eddie.jake@gmail.com", Faculty: "Science", Department: "Computer Science", Type: "Part time"},
		{ID: 5, FirstName: "Michael", LastName: "Johnson", Role: "Professor", Email: "mjohnson@university.edu", Faculty: "Science", Department: "Chemistry", Type: "Full time"},
	}
}

func ids(records []Record) []int {
	out := make([]int, len(records))
	for i, record := range records {
		out[i] = record.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int
	}{
		{name: "blank term is identity", term: "", want: []int{1, 2, 3, 4, 5}},
		{name: "whitespace term is identity", term: "   ", want: []int{1, 2, 3, 4, 5}},
		{name: "full name across first and last", term: "bradley law", want: []int{1}},
		{name: "case insensitive name", term: "DUCKSWORTH", want: []int{2}},
		{name: "role substring", term: "professor", want: []int{1, 5}},
		{name: "email", term: "gmail", want: []int{2, 3, 4}},
		{name: "department", term: "computer", want: []int{2, 4}},
		{name: "faculty", term: "engineering/t", want: []int{2}},
		{name: "no match", term: "zzz", want: []int{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Search(queryFixture(), tc.term))
			if !equalInts(got, tc.want) {
				t.Fatalf("search(%q) = %v, want %v", tc.term, got, tc.want)
			}
		})
	}
}

func TestFilterByAttributes(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{name: "all empty is identity", filter: Filter{}, want: []int{1, 2, 3, 4, 5}},
		{name: "role", filter: Filter{Role: "Professor"}, want: []int{1, 5}},
		{name: "type", filter: Filter{Type: "Part time"}, want: []int{3, 4}},
		{name: "faculty", filter: Filter{Faculty: "Science"}, want: []int{1, 4, 5}},
		{name: "department", filter: Filter{Department: "Chemistry"}, want: []int{5}},
		{name: "conjunction", filter: Filter{Role: "Professor", Type: "Full time", Faculty: "Science"}, want: []int{1, 5}},
		{name: "conflicting constraints", filter: Filter{Role: "Professor", Department: "Computer Science"}, want: []int{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterByAttributes(queryFixture(), tc.filter))
			if !equalInts(got, tc.want) {
				t.Fatalf("filter %+v = %v, want %v", tc.filter, got, tc.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	records := queryFixture()

	first := Paginate(records, 1, 2)
	if !equalInts(ids(first.Items), []int{1, 2}) {
		t.Fatalf("page 1 items = %v", ids(first.Items))
	}
	if first.TotalPages != 3 || first.FirstIndex != 0 || first.LastIndex != 2 {
		t.Fatalf("page 1 bounds: %+v", first)
	}

	last := Paginate(records, 3, 2)
	if !equalInts(ids(last.Items), []int{5}) {
		t.Fatalf("last page items = %v", ids(last.Items))
	}
	if last.LastIndex != 5 {
		t.Fatalf("last page bounds: %+v", last)
	}

	past := Paginate(records, 4, 2)
	if len(past.Items) != 0 {
		t.Fatalf("expected empty items past the end, got %v", ids(past.Items))
	}
	if past.TotalPages != 3 {
		t.Fatalf("total pages must not change past the end: %+v", past)
	}

	empty := Paginate(nil, 1, 2)
	if len(empty.Items) != 0 || empty.TotalPages != 0 {
		t.Fatalf("empty snapshot: %+v", empty)
	}
}

func TestComposedDrillDown(t *testing.T) {
	// Dashboard drill-down: attribute filter, then search, then paginate.
	records := queryFixture()

	filtered := FilterByAttributes(records, Filter{Faculty: "Science"})
	searched := Search(filtered, "computer")
	page := Paginate(searched, 1, 8)

	if !equalInts(ids(page.Items), []int{4}) {
		t.Fatalf("composed result = %v", ids(page.Items))
	}
}
