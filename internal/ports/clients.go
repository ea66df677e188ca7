package ports

import (
	"context"

	"github.com/asfuyao/outcome/internal/domain/customer"
)

// Mailer defines the outbound port for the downstream mail gateway.
// Implemented by the mailgw adapter; called by the application layer.
// It satisfies customer.Courier structurally, so domain entities deliver
// through it without importing the adapter.
type Mailer interface {
	// Deliver sends a message to the given address. Gateway failures are
	// reported as fault-backed errors (unavailable gateways surface as
	// invalid-state faults, rejected payloads as invalid-argument faults).
	Deliver(ctx context.Context, to string, msg customer.Message) error
}
