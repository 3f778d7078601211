package staffhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"srms/internal/domain/staff"
	"srms/internal/platform/requestctx"
	"srms/internal/transport/http/api"
	"srms/internal/transport/http/shared"
)

const maxPageSize = 100

type Handler struct {
	Repo            *staff.Repository
	DefaultPageSize int
}

func NewHandler(repo *staff.Repository, defaultPageSize int) *Handler {
	return &Handler{Repo: repo, DefaultPageSize: defaultPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/staff", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{staffID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
	r.Get("/options", h.handleOptions)
}

type draftRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Faculty    string `json:"faculty"`
	Department string `json:"department"`
	Type       string `json:"type"`
}

func (payload draftRequest) validate() *shared.Validator {
	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.Required("phone", payload.Phone, "phone number is required")
	v.Required("role", payload.Role, "role is required")
	v.Enum("role", payload.Role, staff.Roles, "unknown role")
	v.Required("type", payload.Type, "employment type is required")
	v.Enum("type", payload.Type, staff.EmploymentTypes, "unknown employment type")
	v.Required("email", payload.Email, "email is required")
	v.Email("email", payload.Email)

	if staff.IsAcademicRole(payload.Role) {
		v.Required("faculty", payload.Faculty, "faculty is required for this role")
		v.Enum("faculty", payload.Faculty, staff.Faculties, "unknown faculty")
		v.Required("department", payload.Department, "department is required for this role")
		if payload.Faculty != "" && payload.Department != "" && !staff.ValidDepartment(payload.Faculty, payload.Department) {
			v.Add("department", "department does not belong to the selected faculty")
		}
	}
	return v
}

// draft builds the repository draft, clearing faculty and department for
// non-academic roles regardless of what the form sent.
func (payload draftRequest) draft() staff.Draft {
	faculty, department := payload.Faculty, payload.Department
	if !staff.IsAcademicRole(payload.Role) {
		faculty, department = "", ""
	}
	return staff.Draft{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Role:       payload.Role,
		Phone:      payload.Phone,
		Email:      payload.Email,
		Faculty:    faculty,
		Department: department,
		Type:       payload.Type,
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.GetAll()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_list_failed", "failed to load staff records", requestctx.GetRequestID(r.Context()))
		return
	}

	query := r.URL.Query()
	filter := staff.Filter{
		Role:       query.Get("role"),
		Type:       query.Get("type"),
		Faculty:    query.Get("faculty"),
		Department: query.Get("department"),
	}
	params := shared.ParsePageParams(r, h.DefaultPageSize, maxPageSize)

	// Filters first, then search, then pagination. Dashboard drill-down links
	// rely on this order matching the list page.
	filtered := staff.FilterByAttributes(records, filter)
	filtered = staff.Search(filtered, query.Get("search"))
	page := staff.Paginate(filtered, params.Page, params.PageSize)

	api.Success(w, map[string]any{
		"items": page.Items,
		"pagination": map[string]int{
			"page":         params.Page,
			"pageSize":     params.PageSize,
			"totalPages":   page.TotalPages,
			"totalRecords": len(filtered),
			"firstIndex":   page.FirstIndex,
			"lastIndex":    page.LastIndex,
		},
	}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.Repo.GetByID(chi.URLParam(r, "staffID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_read_failed", "failed to load staff record", requestctx.GetRequestID(r.Context()))
		return
	}
	if record == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "staff record not found", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload draftRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if payload.validate().Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	record, err := h.Repo.Add(payload.draft())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_create_failed", "failed to save staff record", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, record, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload draftRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if payload.validate().Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	record, err := h.Repo.Update(chi.URLParam(r, "staffID"), payload.draft())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_update_failed", "failed to save staff record", requestctx.GetRequestID(r.Context()))
		return
	}
	if record == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "staff record not found", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Repo.Delete(chi.URLParam(r, "staffID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_delete_failed", "failed to delete staff record", requestctx.GetRequestID(r.Context()))
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "staff record not found", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"roles":                staff.Roles,
		"faculties":            staff.Faculties,
		"academicRoles":        staff.AcademicRoles,
		"employmentTypes":      staff.EmploymentTypes,
		"departmentsByFaculty": staff.DepartmentsByFaculty,
	}, requestctx.GetRequestID(r.Context()))
}
