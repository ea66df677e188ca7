package ports

import (
	"context"

	"github.com/asfuyao/outcome"
	"github.com/asfuyao/outcome/internal/domain/customer"
)

// CustomerDirectory defines the outbound storage port for directory entries.
// Implemented by the store adapter; called by the application layer.
//
// Value-producing operations return an outcome.Outcome so failures travel as
// typed fault chains; effect-only operations return a fault-backed error.
type CustomerDirectory interface {
	// List returns all directory entries.
	List(ctx context.Context) outcome.Outcome[[]customer.Customer]

	// Lookup returns the customer for the ID, or a not-found fault.
	Lookup(ctx context.Context, id int64) outcome.Outcome[*customer.Customer]

	// Insert stores a new customer, assigning its ID and timestamps, and
	// returns the stored entity.
	Insert(ctx context.Context, c *customer.Customer) outcome.Outcome[*customer.Customer]

	// Update replaces the mutable fields of an existing customer and
	// returns the updated entity, or a not-found fault.
	Update(ctx context.Context, id int64, c *customer.Customer) outcome.Outcome[*customer.Customer]

	// Remove deletes the entry for the ID. Returns a not-found fault if
	// no entry exists.
	Remove(ctx context.Context, id int64) error
}
