// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/asfuyao/outcome/internal/adapters/http/dto"
	"github.com/asfuyao/outcome/internal/ports"
)

// CustomerHandler handles HTTP requests for customer CRUD and notification
// operations.
type CustomerHandler struct {
	svc ports.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler with the given service port.
func NewCustomerHandler(svc ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// ListCustomers handles GET /api/v1/customers.
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCustomerListResponse(customers))
}

// CreateCustomer handles POST /api/v1/customers.
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateCustomer(r.Context(), req.ToCustomer())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCustomerResponse(created))
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCustomerResponse(c))
}

// HeadCustomer handles HEAD /api/v1/customers/{id}. It answers with 200 or
// 404 and no body; existence is the only fact it reports.
func (h *CustomerHandler) HeadCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !h.svc.CustomerExists(r.Context(), id) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// UpdateCustomer handles PATCH /api/v1/customers/{id}. It fetches the current
// entity, overlays the provided fields, and saves the result, so partial
// updates never clobber omitted fields.
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	existing, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	req.ApplyTo(existing)

	updated, err := h.svc.UpdateCustomer(r.Context(), id, existing)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCustomerResponse(updated))
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}.
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NotifyCustomer handles POST /api/v1/customers/{id}/notify. An unknown ID
// still yields 200: the report marks the delivery as suppressed rather than
// the request as failed.
func (h *CustomerHandler) NotifyCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.NotifyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := h.svc.Notify(r.Context(), id, req.ToMessage())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDeliveryReportResponse(report))
}

// BulkNotifyCustomers handles POST /api/v1/customers/notify.
func (h *CustomerHandler) BulkNotifyCustomers(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkNotifyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.BulkNotify(r.Context(), req.CustomerIDs, req.ToMessage())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkNotifyResponse(result))
}
