// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/asfuyao/outcome/internal/domain/customer"
	"github.com/asfuyao/outcome/internal/ports"
)

// CustomerResponse represents a single customer in HTTP responses.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CustomerListResponse represents a list of customers in HTTP responses.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Count     int                `json:"count"`
}

// ToCustomerResponse converts a domain Customer entity to an HTTP response DTO.
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    c.Status.String(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCustomerListResponse converts a slice of domain Customer entities to an
// HTTP list response DTO.
func ToCustomerListResponse(customers []customer.Customer) CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i := range customers {
		items[i] = ToCustomerResponse(&customers[i])
	}
	return CustomerListResponse{
		Customers: items,
		Count:     len(items),
	}
}

// DeliveryReportResponse represents the outcome of a single notification.
type DeliveryReportResponse struct {
	CustomerID int64 `json:"customer_id"`
	Delivered  bool  `json:"delivered"`
	Suppressed bool  `json:"suppressed"`
}

// ToDeliveryReportResponse converts a ports.DeliveryReport to an HTTP
// response DTO.
func ToDeliveryReportResponse(report *ports.DeliveryReport) DeliveryReportResponse {
	return DeliveryReportResponse{
		CustomerID: report.CustomerID,
		Delivered:  report.Delivered,
		Suppressed: report.Suppressed,
	}
}

// BulkNotifyResponse represents the result of a bulk notification.
// It includes both completed deliveries and per-customer errors.
type BulkNotifyResponse struct {
	Reports   []DeliveryReportResponse `json:"reports"`
	Errors    []BulkNotifyErrorItem    `json:"errors"`
	Total     int                      `json:"total"`
	Succeeded int                      `json:"succeeded"`
	Failed    int                      `json:"failed"`
}

// BulkNotifyErrorItem represents a single failed delivery within a bulk
// operation.
type BulkNotifyErrorItem struct {
	CustomerID int64  `json:"customer_id"`
	Message    string `json:"message"`
}

// ToBulkNotifyResponse converts a ports.BulkNotifyResult to an HTTP response
// DTO.
func ToBulkNotifyResponse(result *ports.BulkNotifyResult) BulkNotifyResponse {
	reports := make([]DeliveryReportResponse, len(result.Reports))
	for i := range result.Reports {
		reports[i] = ToDeliveryReportResponse(&result.Reports[i])
	}

	errs := make([]BulkNotifyErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkNotifyErrorItem{
			CustomerID: e.CustomerID,
			Message:    e.Err.Error(),
		}
	}

	total := len(result.Reports) + len(result.Errors)
	return BulkNotifyResponse{
		Reports:   reports,
		Errors:    errs,
		Total:     total,
		Succeeded: len(result.Reports),
		Failed:    len(result.Errors),
	}
}
