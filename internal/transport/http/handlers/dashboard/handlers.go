package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"srms/internal/domain/staff"
	"srms/internal/platform/requestctx"
	"srms/internal/transport/http/api"
)

type Handler struct {
	Repo *staff.Repository
}

func NewHandler(repo *staff.Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.handleDashboard)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.GetAll()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to load staff records", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"total":        staff.CountTotal(records),
		"byRole":       staff.CountByRole(records),
		"byType":       staff.CountByType(records),
		"byDepartment": staff.CountByDepartment(records),
		"byFaculty":    staff.CountByFaculty(records),
	}, requestctx.GetRequestID(r.Context()))
}
