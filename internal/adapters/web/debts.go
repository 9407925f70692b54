package web

import (
	"net/http"

	"retail-manager/internal/core"
)

// listDebts handles GET /debts?search=&status=&sort=. Listing is also the
// reclassification point: the response's reclassified count tells the client
// how many debts just became overdue.
func (h *Handler) listDebts(w http.ResponseWriter, r *http.Request) {
	filter := core.DebtFilter{
		Search:  r.URL.Query().Get("search"),
		Status:  r.URL.Query().Get("status"),
		SortKey: core.DebtSortKey(r.URL.Query().Get("sort")),
	}
	result, err := h.svc.ListDebts(r.Context(), filter)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// getDebt handles GET /debts/{id}.
func (h *Handler) getDebt(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	debt, err := h.svc.GetDebt(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, debt)
}

// addDebt handles POST /debts/add.
func (h *Handler) addDebt(w http.ResponseWriter, r *http.Request) {
	var d core.Debt
	if !decodeJSON(w, r, &d) {
		return
	}
	added, err := h.svc.AddDebt(r.Context(), d)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, added)
}

// updateDebt handles PUT /debts/{id}.
func (h *Handler) updateDebt(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	var d core.Debt
	if !decodeJSON(w, r, &d) {
		return
	}
	updated, err := h.svc.UpdateDebt(r.Context(), id, d)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, updated)
}

// payDebt handles POST /debts/{id}/pay.
func (h *Handler) payDebt(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	paid, err := h.svc.PayDebt(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, paid)
}

// remindDebt handles POST /debts/{id}/remind.
func (h *Handler) remindDebt(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	notified, err := h.svc.RemindDebt(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, notified)
}
