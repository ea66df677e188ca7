// Package nullobj implements the null-object lookup convention: a finder
// that never reports absence. On a lookup miss it substitutes a neutral
// variant implementing the same capability set as the real entity, so
// callers invoke capabilities without an absence check:
//
//	finder := nullobj.NewFinder(directoryLookup, func(id int64) customer.Contact {
//	    return customer.NewGhost(id)
//	})
//	finder.Find(ctx, 42).SendEmail(ctx, mailer, msg) // safe even when 42 is absent
//
// Neutral variants embed a Recorder so tests can verify that suppressed
// capability invocations actually happened.
package nullobj

import "context"

// Lookup locates the real entity for an ID. The boolean follows the
// try-style convention: false means no entity exists for the ID.
type Lookup[K comparable, E any] func(ctx context.Context, id K) (E, bool)

// Neutral builds the designated neutral variant for an ID that matched
// nothing. The result must implement every capability of the real entity
// as a safe no-op.
type Neutral[K comparable, E any] func(id K) E

// Finder resolves IDs to entities, substituting a neutral variant on miss.
type Finder[K comparable, E any] struct {
	lookup  Lookup[K, E]
	neutral Neutral[K, E]
}

// NewFinder creates a Finder from a lookup and a neutral-variant factory.
func NewFinder[K comparable, E any](lookup Lookup[K, E], neutral Neutral[K, E]) *Finder[K, E] {
	return &Finder[K, E]{lookup: lookup, neutral: neutral}
}

// Find returns the entity for the ID. It always returns a concrete,
// usable value: the real entity on a hit, the neutral variant on a miss.
func (f *Finder[K, E]) Find(ctx context.Context, id K) E {
	if e, ok := f.lookup(ctx, id); ok {
		return e
	}
	return f.neutral(id)
}
