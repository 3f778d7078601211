package staffhandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"srms/internal/domain/staff"
	"srms/internal/platform/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) (*staff.Repository, *chi.Mux) {
	t.Helper()
	repo := staff.NewRepository(store.NewMemoryStore())
	router := chi.NewRouter()
	NewHandler(repo, 8).RegisterRoutes(router)
	return repo, router
}

func doJSON(t *testing.T, router http.Handler, method, target string, payload any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal error: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return rec, env
}

func validDraft() map[string]string {
	return map[string]string{
		"firstName":  "Ann",
		"lastName":   "Lee",
		"role":       "Lecturer",
		"phone":      "555-0100",
		"email":      "a@x.com",
		"faculty":    "Science",
		"department": "Physics",
		"type":       "Full time",
	}
}

func TestCreateStaff(t *testing.T) {
	_, router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/staff", validDraft())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var record staff.Record
	if err := json.Unmarshal(env.Data, &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.ID != 1 {
		t.Fatalf("expected id 1, got %d", record.ID)
	}
	if record.DateAdded == "" {
		t.Fatal("expected assigned dateAdded")
	}
}

func TestCreateStaffValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{name: "missing first name", mutate: func(d map[string]string) { d["firstName"] = "" }},
		{name: "missing last name", mutate: func(d map[string]string) { d["lastName"] = " " }},
		{name: "missing phone", mutate: func(d map[string]string) { d["phone"] = "" }},
		{name: "bad email", mutate: func(d map[string]string) { d["email"] = "not-an-email" }},
		{name: "unknown role", mutate: func(d map[string]string) { d["role"] = "Wizard" }},
		{name: "unknown type", mutate: func(d map[string]string) { d["type"] = "Casual" }},
		{name: "academic role without faculty", mutate: func(d map[string]string) { d["faculty"] = ""; d["department"] = "" }},
		{name: "department from another faculty", mutate: func(d map[string]string) { d["department"] = "Civil Law" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, router := newTestRouter(t)
			draft := validDraft()
			tc.mutate(draft)

			rec, env := doJSON(t, router, http.MethodPost, "/staff", draft)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if env.Error == nil || env.Error.Code != "validation_error" {
				t.Fatalf("expected validation_error, got %+v", env.Error)
			}
		})
	}
}

func TestCreateClearsFacultyForNonAcademicRole(t *testing.T) {
	_, router := newTestRouter(t)

	draft := validDraft()
	draft["role"] = "Registrar"
	// Faculty/department supplied but the role does not take them.
	rec, env := doJSON(t, router, http.MethodPost, "/staff", draft)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var record staff.Record
	if err := json.Unmarshal(env.Data, &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.Faculty != "" || record.Department != "" {
		t.Fatalf("expected cleared faculty/department, got %q/%q", record.Faculty, record.Department)
	}
}

func TestGetStaffNotFound(t *testing.T) {
	_, router := newTestRouter(t)

	for _, id := range []string{"99", "abc", "-1"} {
		rec, env := doJSON(t, router, http.MethodGet, "/staff/"+id, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("id %q: expected 404, got %d", id, rec.Code)
		}
		if env.Error == nil || env.Error.Code != "not_found" {
			t.Fatalf("id %q: expected not_found, got %+v", id, env.Error)
		}
	}
}

func TestUpdateStaffPreservesDateAdded(t *testing.T) {
	_, router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/staff", validDraft())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", rec.Code)
	}
	var created staff.Record
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode record: %v", err)
	}

	update := validDraft()
	update["firstName"] = "Anna"
	rec, env = doJSON(t, router, http.MethodPut, "/staff/1", update)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated staff.Record
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if updated.ID != created.ID || updated.DateAdded != created.DateAdded {
		t.Fatalf("immutable fields changed: %+v vs %+v", updated, created)
	}
	if updated.FirstName != "Anna" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestDeleteStaff(t *testing.T) {
	_, router := newTestRouter(t)
	if rec, _ := doJSON(t, router, http.MethodPost, "/staff", validDraft()); rec.Code != http.StatusCreated {
		t.Fatal("create failed")
	}

	rec, _ := doJSON(t, router, http.MethodDelete, "/staff/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodDelete, "/staff/1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for second delete, got %d", rec.Code)
	}
}

func TestListComposesFiltersSearchAndPagination(t *testing.T) {
	repo, router := newTestRouter(t)
	if err := repo.Initialize(); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	rec, env := doJSON(t, router, http.MethodGet, "/staff?faculty=Science&search=computer&page=1&pageSize=8", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Items      []staff.Record `json:"items"`
		Pagination struct {
			TotalPages   int `json:"totalPages"`
			TotalRecords int `json:"totalRecords"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode list: %v", err)
	}

	// Seed fixture: Science faculty records matching "computer" is exactly
	// Daniel Hamilton (Computer Science).
	if len(payload.Items) != 1 || payload.Items[0].ID != 8 {
		t.Fatalf("unexpected drill-down result: %+v", payload.Items)
	}
	if payload.Pagination.TotalRecords != 1 || payload.Pagination.TotalPages != 1 {
		t.Fatalf("unexpected pagination meta: %+v", payload.Pagination)
	}
}

func TestListPageBeyondEnd(t *testing.T) {
	repo, router := newTestRouter(t)
	if err := repo.Initialize(); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	rec, env := doJSON(t, router, http.MethodGet, "/staff?page=99&pageSize=8", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Items      []staff.Record `json:"items"`
		Pagination struct {
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(payload.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(payload.Items))
	}
	if payload.Pagination.TotalPages != 4 {
		t.Fatalf("expected 4 total pages for 25 records of 8, got %d", payload.Pagination.TotalPages)
	}
}

func TestOptions(t *testing.T) {
	_, router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/options", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Roles                []string            `json:"roles"`
		Faculties            []string            `json:"faculties"`
		AcademicRoles        []string            `json:"academicRoles"`
		EmploymentTypes      []string            `json:"employmentTypes"`
		DepartmentsByFaculty map[string][]string `json:"departmentsByFaculty"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(payload.Roles) != 12 || len(payload.Faculties) != 6 || len(payload.AcademicRoles) != 4 || len(payload.EmploymentTypes) != 3 {
		t.Fatalf("unexpected vocabulary sizes: %+v", payload)
	}
	if len(payload.DepartmentsByFaculty) != 6 {
		t.Fatalf("expected 6 faculties in department map, got %d", len(payload.DepartmentsByFaculty))
	}
}
