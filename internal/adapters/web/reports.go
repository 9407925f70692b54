package web

import (
	"net/http"

	"retail-manager/internal/core"
)

// generateReport handles GET /reports/generate?period=&startDate=&endDate=.
func (h *Handler) generateReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := h.svc.GenerateReport(r.Context(),
		core.ReportPeriod(q.Get("period")), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, report)
}

// dashboardSummary handles GET /dashboard/summary.
func (h *Handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.DashboardSummary(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, summary)
}

// askAssistant handles POST /assistant. Returns 501 when no API key is
// configured.
func (h *Handler) askAssistant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.AskAssistant(r.Context(), req.Question)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
