package outcome

import "context"

// Try converts an Outcome into the boolean-success calling convention.
// On success it returns the value and true. On failure it returns T's zero
// value and false, deliberately discarding all diagnostic detail: Try is for
// call sites whose logic is a simple branch and does not distinguish failure
// causes. Callers that need a reason must inspect the Outcome instead.
func Try[T any](o Outcome[T]) (T, bool) {
	if o.fault != nil {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Adapt wraps an Outcome-returning operation in the (value, ok) convention.
func Adapt[A, T any](op func(A) Outcome[T]) func(A) (T, bool) {
	return func(in A) (T, bool) {
		return Try(op(in))
	}
}

// AdaptCtx is Adapt for context-aware operations.
func AdaptCtx[A, T any](op func(context.Context, A) Outcome[T]) func(context.Context, A) (T, bool) {
	return func(ctx context.Context, in A) (T, bool) {
		return Try(op(ctx, in))
	}
}
