package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"retail-manager/internal/core"
)

// listProducts handles GET /inventory. ?lowStock=true narrows to items at or
// below their alert threshold.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := core.ProductFilter{
		Search:       r.URL.Query().Get("search"),
		Category:     r.URL.Query().Get("category"),
		Supplier:     r.URL.Query().Get("supplier"),
		LowStockOnly: r.URL.Query().Get("lowStock") == "true",
	}
	result, err := h.svc.ListProducts(r.Context(), filter)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// addProduct handles POST /inventory/add.
func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var p core.Product
	if !decodeJSON(w, r, &p) {
		return
	}
	added, err := h.svc.AddProduct(r.Context(), p)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, added)
}

// updateProduct handles PUT /inventory/{id}.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	var p core.Product
	if !decodeJSON(w, r, &p) {
		return
	}
	updated, err := h.svc.UpdateProduct(r.Context(), id, p)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, updated)
}

// deleteProduct handles DELETE /inventory/{id}.
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"status": "deleted"})
}

// productsByCategory handles GET /inventory/category/{category}.
func (h *Handler) productsByCategory(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListProducts(r.Context(), core.ProductFilter{
		Category: chi.URLParam(r, "category"),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// productsBySupplier handles GET /inventory/supplier/{supplier}.
func (h *Handler) productsBySupplier(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListProducts(r.Context(), core.ProductFilter{
		Supplier: chi.URLParam(r, "supplier"),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// searchProducts handles GET /inventory/search?q=&category=&supplier=&lowStock=.
func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.svc.ListProducts(r.Context(), core.ProductFilter{
		Search:       q.Get("q"),
		Category:     q.Get("category"),
		Supplier:     q.Get("supplier"),
		LowStockOnly: q.Get("lowStock") == "true",
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
