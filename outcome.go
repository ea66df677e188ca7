// Package outcome provides a typed success-or-failure container and the
// error-signaling conventions built around it.
//
// An Outcome holds exactly one of a success value or a failure descriptor
// (Fault). Faults carry a closed Kind taxonomy instead of numeric codes and
// form immutable cause chains, so a failure is either handled where it is
// observed (by branching on Kind) or re-signaled upward with Wrap, never
// silently discarded:
//
//	o := directory.Lookup(ctx, id)
//	if !o.IsSuccess() {
//	    f, _ := o.Fault()
//	    return outcome.FailureOf[Report](f.Wrap(outcome.KindInvalidState, "preparing report"))
//	}
//
// For call sites that only need a boolean branch and no diagnostics, the
// Try adapter converts an Outcome into the (value, ok) convention:
//
//	v, ok := outcome.Try(directory.Lookup(ctx, id))
package outcome

// Outcome is a tagged union holding either a success value or a Fault.
// The zero value is a success holding T's zero value; use the constructors
// to build meaningful instances. Exactly one variant is ever populated.
type Outcome[T any] struct {
	value T
	fault *Fault
}

// Success returns an Outcome holding the given value.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Failure returns an Outcome holding a new root fault of the given kind.
func Failure[T any](kind Kind, message string) Outcome[T] {
	return Outcome[T]{fault: NewFault(kind, message)}
}

// FailureOf returns an Outcome holding an existing fault, preserving its
// cause chain. A nil fault would break the one-variant invariant, so it is
// replaced with an invalid-state fault.
func FailureOf[T any](f *Fault) Outcome[T] {
	if f == nil {
		f = NewFault(KindInvalidState, "failure constructed from nil fault")
	}
	return Outcome[T]{fault: f}
}

// IsSuccess reports whether the Outcome holds a value.
func (o Outcome[T]) IsSuccess() bool {
	return o.fault == nil
}

// Value returns the success value. Called on a failure it returns T's zero
// value and an invalid-state fault; the carried failure is not returned
// here, so it cannot be mistaken for handled.
func (o Outcome[T]) Value() (T, error) {
	if o.fault != nil {
		var zero T
		return zero, NewFault(KindInvalidState, "value read on failed outcome")
	}
	return o.value, nil
}

// Fault returns the failure descriptor. Called on a success it returns an
// invalid-state fault.
func (o Outcome[T]) Fault() (*Fault, error) {
	if o.fault == nil {
		return nil, NewFault(KindInvalidState, "fault read on successful outcome")
	}
	return o.fault, nil
}

// Kind returns the failure's kind. Called on a success it returns an
// invalid-state fault.
func (o Outcome[T]) Kind() (Kind, error) {
	if o.fault == nil {
		return "", NewFault(KindInvalidState, "kind read on successful outcome")
	}
	return o.fault.kind, nil
}

// Message returns the failure's outermost message. Called on a success it
// returns an invalid-state fault.
func (o Outcome[T]) Message() (string, error) {
	if o.fault == nil {
		return "", NewFault(KindInvalidState, "message read on successful outcome")
	}
	return o.fault.message, nil
}

// Err bridges to Go's error convention: nil on success, the fault on
// failure. The explicit nil return avoids a typed-nil error interface.
func (o Outcome[T]) Err() error {
	if o.fault == nil {
		return nil
	}
	return o.fault
}
