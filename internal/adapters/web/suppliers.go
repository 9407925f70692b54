package web

import (
	"net/http"

	"retail-manager/internal/core"
)

// listSuppliers handles GET /suppliers/all.
func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// getSupplier handles GET /suppliers/{id}.
func (h *Handler) getSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	sup, err := h.svc.GetSupplier(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, sup)
}

// addSupplier handles POST /suppliers/add.
func (h *Handler) addSupplier(w http.ResponseWriter, r *http.Request) {
	var sup core.Supplier
	if !decodeJSON(w, r, &sup) {
		return
	}
	added, err := h.svc.AddSupplier(r.Context(), sup)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, added)
}

// updateSupplier handles PUT /suppliers/{id}.
func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	var sup core.Supplier
	if !decodeJSON(w, r, &sup) {
		return
	}
	updated, err := h.svc.UpdateSupplier(r.Context(), id, sup)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, updated)
}

// deleteSupplier handles DELETE /suppliers/{id}.
func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSupplier(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"status": "deleted"})
}
