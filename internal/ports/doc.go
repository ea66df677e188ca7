// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Directory and mailer ports are implemented by outbound adapters and called by
// the application layer. Value-producing directory operations use the
// outcome.Outcome container; effect-only operations return a fault-backed error.
package ports
