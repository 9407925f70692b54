package web

import (
	"net/http"

	"retail-manager/internal/app"
	"retail-manager/internal/core"
)

// listSales handles GET /sales.
func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListSales(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// recordSale handles POST /sales. Two body shapes are accepted: the full cart
// form with an items array, and the short single-product form
// {productId, quantitySold} kept for older clients.
func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []struct {
			ProductID int `json:"productId"`
			Quantity  int `json:"quantity"`
		} `json:"items"`
		PaymentType  string `json:"paymentType"`
		CustomerName string `json:"customerName"`
		DueDate      string `json:"dueDate"`

		// short form
		ProductID    int `json:"productId"`
		QuantitySold int `json:"quantitySold"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	svcReq := app.RecordSaleRequest{
		PaymentType:  core.PaymentType(req.PaymentType),
		CustomerName: req.CustomerName,
		DueDate:      req.DueDate,
	}
	if svcReq.PaymentType == "" {
		svcReq.PaymentType = core.PaymentCash
	}
	for _, item := range req.Items {
		svcReq.Lines = append(svcReq.Lines, app.SaleLineInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if len(svcReq.Lines) == 0 && req.ProductID != 0 {
		svcReq.Lines = []app.SaleLineInput{{ProductID: req.ProductID, Quantity: req.QuantitySold}}
	}

	result, err := h.svc.RecordSale(r.Context(), svcReq)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, result)
}

// deleteSale handles DELETE /sales/{id}.
func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSale(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"status": "deleted"})
}
