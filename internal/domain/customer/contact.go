package customer

import (
	"context"
	"strings"

	"github.com/asfuyao/outcome/internal/domain"
)

// Message is the value object delivered to a customer.
type Message struct {
	Subject string
	Body    string
}

// Validate checks that the message has a subject and a body.
func (m Message) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.Subject) == "" {
		fields["subject"] = domain.MsgRequired
	}
	if strings.TrimSpace(m.Body) == "" {
		fields["body"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Courier delivers a message to an address. The mail gateway adapter
// satisfies this structurally; the domain never imports the adapter.
type Courier interface {
	Deliver(ctx context.Context, to string, msg Message) error
}

// Contact is the capability set callers need from a directory lookup.
// Both the real Customer and the neutral Ghost implement it, so callers
// invoke capabilities without checking for absence first.
type Contact interface {
	// ContactID returns the directory ID the contact was resolved for.
	ContactID() int64

	// DisplayName returns a human-readable name, empty for the neutral
	// variant.
	DisplayName() string

	// SendEmail delivers a message through the courier. Neutral variants
	// complete without error and without sending anything.
	SendEmail(ctx context.Context, courier Courier, msg Message) error
}
