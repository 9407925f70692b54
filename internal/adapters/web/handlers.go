// Package web is the HTTP adapter: a chi router over the application service.
// Handlers translate requests into service calls and service errors into the
// JSON error envelope; no business logic lives here.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"retail-manager/internal/app"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{svc: svc, jwtSecret: jwtSecret}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	// ── Public ────────────────────────────────────────────────────────────────
	r.Get("/health", h.health)
	r.Post("/login", h.login)
	r.Post("/signup", h.signup)

	// ── Protected (401 JSON if unauthenticated) ──────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Get("/me", h.me)

		r.Get("/sales", h.listSales)
		r.Post("/sales", h.recordSale)
		r.Delete("/sales/{id}", h.deleteSale)

		r.Get("/inventory", h.listProducts)
		r.Post("/inventory/add", h.addProduct)
		r.Put("/inventory/{id}", h.updateProduct)
		r.Delete("/inventory/{id}", h.deleteProduct)
		r.Get("/inventory/category/{category}", h.productsByCategory)
		r.Get("/inventory/supplier/{supplier}", h.productsBySupplier)
		r.Get("/inventory/search", h.searchProducts)

		r.Get("/debts", h.listDebts)
		r.Get("/debts/{id}", h.getDebt)
		r.Post("/debts/add", h.addDebt)
		r.Put("/debts/{id}", h.updateDebt)
		r.Post("/debts/{id}/pay", h.payDebt)
		r.Post("/debts/{id}/remind", h.remindDebt)

		r.Get("/suppliers/all", h.listSuppliers)
		r.Get("/suppliers/{id}", h.getSupplier)
		r.Post("/suppliers/add", h.addSupplier)
		r.Put("/suppliers/{id}", h.updateSupplier)
		r.Delete("/suppliers/{id}", h.deleteSupplier)

		r.Get("/reports/generate", h.generateReport)
		r.Get("/dashboard/summary", h.dashboardSummary)
		r.Post("/assistant", h.askAssistant)
	})

	return r
}

// health handles GET /health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// urlParamInt parses the named chi URL parameter as an int. Writes a 400 and
// returns false when the parameter is not numeric.
func urlParamInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, "invalid "+name+" parameter", "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
