// Package core provides the business logic layer for notr.
//
// This package contains all core functionality separated from UI concerns.
// The [Service] owns the canonical note collection for the lifetime of the
// process: it hydrates once from the store, applies every mutation in
// memory, and mirrors the full collection back to the store after each
// change.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Persistence failures after a mutation are logged, not surfaced; the
//     in-memory collection stays authoritative for the session
//   - UI-specific logic (confirmation prompts, focus handling) belongs in
//     the cli package, not here
package core
