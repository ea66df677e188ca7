// Package customer contains the customer aggregate: the entity, its status
// enum, the Contact capability set shared with the neutral Ghost variant,
// and the message value object delivered to customers.
package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asfuyao/outcome/internal/domain"
)

// Compile-time check that the real entity implements the capability set.
var _ Contact = (*Customer)(nil)

// Customer represents a directory entry that can receive messages.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Customer entity.
// Returns a *domain.ValidationError (wrapping outcome.ErrInvalidArgument)
// with per-field details, or nil if all rules pass.
func (c *Customer) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = domain.MsgRequired
	} else if !strings.Contains(c.Email, "@") {
		fields["email"] = fmt.Sprintf("must be an email address, got %q", c.Email)
	}
	if !c.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", c.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ContactID returns the directory ID.
func (c *Customer) ContactID() int64 {
	return c.ID
}

// DisplayName returns the customer's name.
func (c *Customer) DisplayName() string {
	return c.Name
}

// SendEmail delivers a message to the customer's address through the courier.
// Suspended and closed customers do not receive mail; the delivery is
// skipped without error, mirroring the neutral variant's behavior.
func (c *Customer) SendEmail(ctx context.Context, courier Courier, msg Message) error {
	if c.Status != StatusActive {
		return nil
	}
	return courier.Deliver(ctx, c.Email, msg)
}
