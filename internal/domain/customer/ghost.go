package customer

import (
	"context"

	"github.com/asfuyao/outcome/nullobj"
)

// Compile-time check that the neutral variant implements the capability set.
var _ Contact = (*Ghost)(nil)

// Ghost is the designated neutral Customer variant, returned by finders when
// no directory entry matches an ID. Every capability is a safe no-op, so
// callers never branch on absence before invoking one. Ghosts are never
// mutated and never stored; ownership stays with the caller that looked
// them up.
type Ghost struct {
	nullobj.Recorder
	id int64
}

// NewGhost creates the neutral variant for the given directory ID.
func NewGhost(id int64) *Ghost {
	return &Ghost{id: id}
}

// ContactID returns the ID the lookup missed on.
func (g *Ghost) ContactID() int64 {
	return g.id
}

// DisplayName returns the neutral variant's empty name.
func (g *Ghost) DisplayName() string {
	return ""
}

// SendEmail completes without error and without sending anything. The
// invocation is recorded so tests can verify the suppression happened.
func (g *Ghost) SendEmail(_ context.Context, _ Courier, _ Message) error {
	g.Record("SendEmail")
	return nil
}
