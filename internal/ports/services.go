package ports

import (
	"context"

	"github.com/asfuyao/outcome/internal/domain/customer"
)

// CustomerService defines the service port for customer directory and
// notification operations. Implemented by the application layer; called by
// inbound adapters (handlers).
type CustomerService interface {
	// ListCustomers returns all directory entries.
	ListCustomers(ctx context.Context) ([]customer.Customer, error)

	// GetCustomer returns a single customer by ID.
	// Returns a not-found fault if the customer does not exist.
	GetCustomer(ctx context.Context, id int64) (*customer.Customer, error)

	// CreateCustomer validates and creates a new customer, returning the
	// created entity with server-assigned fields (ID, timestamps).
	// Returns an invalid-argument fault if validation fails.
	CreateCustomer(ctx context.Context, c *customer.Customer) (*customer.Customer, error)

	// UpdateCustomer validates and updates an existing customer.
	// Returns a not-found fault if the customer does not exist.
	UpdateCustomer(ctx context.Context, id int64, c *customer.Customer) (*customer.Customer, error)

	// DeleteCustomer removes a customer from the directory.
	// Returns a not-found fault if the customer does not exist.
	DeleteCustomer(ctx context.Context, id int64) error

	// CustomerExists reports whether a directory entry exists for the ID.
	// Try-style convention: the boolean carries no diagnostic detail.
	// Callers that need a reason must use GetCustomer.
	CustomerExists(ctx context.Context, id int64) bool

	// Notify delivers a message to the customer with the given ID.
	// A lookup miss is not an error: the neutral variant absorbs the send
	// and the report marks the delivery as suppressed.
	Notify(ctx context.Context, id int64, msg customer.Message) (*DeliveryReport, error)

	// BulkNotify delivers a message to multiple customers concurrently.
	// Uses partial success semantics: each delivery succeeds or fails
	// independently. Returns a hard error only for request-level failures
	// (message validation). Individual failures are collected in
	// BulkNotifyResult.Errors.
	BulkNotify(ctx context.Context, ids []int64, msg customer.Message) (*BulkNotifyResult, error)
}

// DeliveryReport describes what happened to a single notification.
type DeliveryReport struct {
	CustomerID int64

	// Delivered is true when the message was handed to the mail gateway.
	Delivered bool

	// Suppressed is true when no mail was sent by design: the ID matched
	// no directory entry (neutral variant) or the customer is not active.
	Suppressed bool
}

// BulkNotifyError records a single failed delivery within a bulk operation.
type BulkNotifyError struct {
	CustomerID int64
	Err        error
}

// BulkNotifyResult holds the outcomes of a bulk notification.
// Reports contains completed deliveries (including suppressions);
// Errors contains per-customer failures.
type BulkNotifyResult struct {
	Reports []DeliveryReport
	Errors  []BulkNotifyError
}
