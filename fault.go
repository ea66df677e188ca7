package outcome

import (
	"errors"
	"fmt"
)

// Fault is an immutable failure descriptor: a kind, a human-readable message,
// and an optional cause forming a chain back to the original failure.
//
// Faults are never mutated after construction. Wrap builds a new node that
// references the receiver as its cause, so a fault used as a cause elsewhere
// is guaranteed to remain unchanged. Because every node is created fresh,
// a chain always terminates and cannot form a cycle.
type Fault struct {
	kind    Kind
	message string
	cause   *Fault
}

// NewFault creates a root fault with no cause.
func NewFault(kind Kind, message string) *Fault {
	return &Fault{kind: kind, message: message}
}

// FaultOf converts a Go error into a *Fault. If err already is (or wraps) a
// *Fault, that fault is returned unchanged, preserving its chain. Otherwise
// a new root fault of the fallback kind is created from the error text.
// Returns nil if err is nil.
func FaultOf(err error, fallback Kind) *Fault {
	if err == nil {
		return nil
	}
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return NewFault(fallback, err.Error())
}

// Kind returns the failure classification of this node.
func (f *Fault) Kind() Kind {
	return f.kind
}

// Message returns this node's message, without the cause chain.
func (f *Fault) Message() string {
	return f.message
}

// Cause returns the fault this node wraps, or nil for a root fault.
func (f *Fault) Cause() *Fault {
	return f.cause
}

// Wrap returns a new fault of the given kind and message with the receiver
// as its cause. The receiver is not modified.
func (f *Fault) Wrap(kind Kind, message string) *Fault {
	return &Fault{kind: kind, message: message, cause: f}
}

// Chain returns the fault chain from this node down to the root, outermost
// first.
func (f *Fault) Chain() []*Fault {
	var chain []*Fault
	for node := f; node != nil; node = node.cause {
		chain = append(chain, node)
	}
	return chain
}

// Root returns the innermost fault in the chain, the original failure.
func (f *Fault) Root() *Fault {
	node := f
	for node.cause != nil {
		node = node.cause
	}
	return node
}

// Error renders the full chain, outermost first:
//
//	"invalid_state: loading directory: data_corrupt: unexpected EOF"
func (f *Fault) Error() string {
	msg := fmt.Sprintf("%s: %s", f.kind, f.message)
	if f.cause != nil {
		return msg + ": " + f.cause.Error()
	}
	return msg
}

// Unwrap exposes the kind's sentinel error and the cause so that errors.Is
// matches both this node's kind and every kind further down the chain.
func (f *Fault) Unwrap() []error {
	errs := []error{f.kind.sentinel()}
	if f.cause != nil {
		errs = append(errs, f.cause)
	}
	return errs
}
