// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/customer). This root
// package holds validation types and domain-level interfaces (Action,
// WriteStager) shared across all entities. Failure classification comes from
// the outcome package; domain errors carry outcome fault kinds rather than
// a parallel sentinel set.
package domain
