package reportshandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

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
	r.Get("/reports/roster.pdf", h.handleRosterPDF)
}

// handleRosterPDF renders the staff roster as a PDF, honoring the same filter
// and search parameters as the list endpoint.
func (h *Handler) handleRosterPDF(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.GetAll()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load staff records", requestctx.GetRequestID(r.Context()))
		return
	}

	query := r.URL.Query()
	filtered := staff.FilterByAttributes(records, staff.Filter{
		Role:       query.Get("role"),
		Type:       query.Get("type"),
		Faculty:    query.Get("faculty"),
		Department: query.Get("department"),
	})
	filtered = staff.Search(filtered, query.Get("search"))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Staff Roster")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s - %d records", time.Now().Format("2006-01-02"), len(filtered)))
	pdf.Ln(10)

	widths := []float64{12, 50, 42, 34, 48, 48, 26, 24}
	headers := []string{"ID", "Name", "Role", "Phone", "Email", "Faculty / Department", "Type", "Added"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, record := range filtered {
		unit := record.Faculty
		if record.Department != "" {
			unit = record.Faculty + " / " + record.Department
		}
		cells := []string{
			fmt.Sprintf("%d", record.ID),
			record.FirstName + " " + record.LastName,
			record.Role,
			record.Phone,
			record.Email,
			unit,
			record.Type,
			record.DateAdded,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="staff-roster.pdf"`)
	if err := pdf.Output(w); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render roster pdf", requestctx.GetRequestID(r.Context()))
	}
}
